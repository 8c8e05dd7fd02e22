package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/murmurlabs/murmur/internal/auth"
	"github.com/murmurlabs/murmur/internal/models"
	"github.com/murmurlabs/murmur/internal/utils"
)

type contextKey string

const userKey contextKey = "user"

// UserFromContext returns the principal attached by RequireAuth.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// WithUser is used by tests to run protected handlers without a cookie jar.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// RequireAuth verifies the session cookie and resolves the full user record
// before the protected handler runs.
type RequireAuth struct {
	Tokens *auth.TokenManager
	Store  models.UserStore
}

func (a *RequireAuth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(auth.CookieName)
		if err != nil {
			utils.Message(w, http.StatusUnauthorized, "Unauthorized - No Token Provided")
			return
		}

		userID, err := a.Tokens.Parse(cookie.Value)
		if err != nil {
			utils.Message(w, http.StatusUnauthorized, "Unauthorized - Invalid Token")
			return
		}

		user, err := a.Store.FindByID(r.Context(), userID)
		switch {
		case err == nil:
			// token holder still exists
		case errors.Is(err, models.ErrNotFound):
			utils.Message(w, http.StatusNotFound, "User not found")
			return
		default:
			log.Println("Error resolving session user:", err)
			utils.Message(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}
