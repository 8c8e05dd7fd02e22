package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/murmurlabs/murmur/internal/api/middleware"
	"github.com/murmurlabs/murmur/internal/auth"
	"github.com/murmurlabs/murmur/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idOnlyStore resolves exactly one user by id.
type idOnlyStore struct {
	user *models.User
}

func (s *idOnlyStore) Create(context.Context, *models.User) error { return nil }

func (s *idOnlyStore) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, models.ErrNotFound
}

func (s *idOnlyStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, models.ErrNotFound
}

func (s *idOnlyStore) UpdateProfilePic(context.Context, uuid.UUID, string) (*models.User, error) {
	return nil, models.ErrNotFound
}

func (s *idOnlyStore) ListOthers(context.Context, uuid.UUID) ([]models.User, error) {
	return nil, nil
}

func nextHandler(t *testing.T, called *bool, wantUser *models.User) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		user, ok := middleware.UserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUser.ID, user.ID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenManager("test-secret", false)
	user := &models.User{ID: uuid.New(), FullName: "A", Email: "a@x.com"}

	validToken, err := tokens.Generate(user.ID)
	require.NoError(t, err)

	orphanToken, err := tokens.Generate(uuid.New())
	require.NoError(t, err)

	foreignToken, err := auth.NewTokenManager("other-secret", false).Generate(user.ID)
	require.NoError(t, err)

	tests := []struct {
		name       string
		cookie     string
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "no cookie",
			cookie:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token signed with another secret",
			cookie:     foreignToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token for a deleted user",
			cookie:     orphanToken,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "valid token",
			cookie:     validToken,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			mw := &middleware.RequireAuth{Tokens: tokens, Store: &idOnlyStore{user: user}}
			handler := mw.Handler(nextHandler(t, &called, user))

			req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)

			if !tt.wantNext {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestRequireAuth_PassesPreflight(t *testing.T) {
	t.Parallel()

	called := false
	mw := &middleware.RequireAuth{
		Tokens: auth.NewTokenManager("test-secret", false),
		Store:  &idOnlyStore{},
	}
	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/check", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, called)
}
