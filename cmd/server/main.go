package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/murmurlabs/murmur/internal/api"
	"github.com/murmurlabs/murmur/internal/api/handlers"
	"github.com/murmurlabs/murmur/internal/api/middleware"
	"github.com/murmurlabs/murmur/internal/auth"
	"github.com/murmurlabs/murmur/internal/config"
	"github.com/murmurlabs/murmur/internal/media"
	"github.com/murmurlabs/murmur/internal/repositories"
)

func main() {
	cfg := config.Envs

	db, err := repositories.ConnectDatabase(cfg.DB_URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	users := repositories.NewUserRepository(db)
	uploader := media.NewS3Uploader(cfg.Media)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.Environment == "production")

	router := api.SetupRouter(api.Deps{
		Auth:        handlers.NewAuth(users, uploader, tokens),
		Message:     handlers.NewMessage(users),
		RequireAuth: &middleware.RequireAuth{Tokens: tokens, Store: users},
		CorsConfig:  cfg.CorsConfig,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting murmur server on port: %s", cfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
	}
}
