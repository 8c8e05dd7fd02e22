package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/murmurlabs/murmur/internal/api/handlers"
	"github.com/murmurlabs/murmur/internal/api/middleware"
	"github.com/murmurlabs/murmur/internal/config"
	"github.com/rs/cors"
)

// Deps carries everything the router wires together, built once by main.
type Deps struct {
	Auth        *handlers.Auth
	Message     *handlers.Message
	RequireAuth *middleware.RequireAuth
	CorsConfig  cors.Options
}

func SetupRouter(deps Deps) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(deps.CorsConfig)

	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	// ---------- PUBLIC ROUTES ----------
	authMux := http.NewServeMux()
	authMux.Handle("POST /signup", handlers.Handle(deps.Auth.Signup))
	authMux.Handle("POST /login", handlers.Handle(deps.Auth.Login))
	authMux.Handle("POST /logout", handlers.Handle(deps.Auth.Logout))

	// ---------- PROTECTED ROUTES ----------
	authMux.Handle("PUT /update-profile",
		deps.RequireAuth.Handler(handlers.Handle(deps.Auth.UpdateProfile)))
	authMux.Handle("GET /check",
		deps.RequireAuth.Handler(handlers.Handle(deps.Auth.CheckAuth)))

	messageMux := http.NewServeMux()
	messageMux.Handle("GET /users", handlers.Handle(deps.Message.GetUsersForSidebar))

	mainMux.Handle("/api/auth/",
		http.StripPrefix("/api/auth", authMux),
	)
	mainMux.Handle("/api/message/",
		http.StripPrefix(
			"/api/message",
			deps.RequireAuth.Handler(messageMux),
		),
	)

	log.Println("Router initialized")
	handler := c.Handler(middleware.MaxBytes(config.MaxBodyBytes, mainMux))
	handler = middleware.Logger(handler)
	return handler
}
