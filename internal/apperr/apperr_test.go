package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"conflict", Conflict("taken"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("no"), http.StatusUnauthorized},
		{"not found", NotFound("gone"), http.StatusNotFound},
		{"upload", Upload("up", errors.New("x")), http.StatusInternalServerError},
		{"internal", Internal("boom", errors.New("x")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Status())
		})
	}
}

func TestFrom(t *testing.T) {
	t.Parallel()

	typed := Conflict("Email already used!")
	assert.Same(t, typed, From(typed))

	wrapped := fmt.Errorf("handler: %w", typed)
	assert.Same(t, typed, From(wrapped))

	plain := errors.New("pq: connection refused")
	got := From(plain)
	require.NotNil(t, got)
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, http.StatusInternalServerError, got.Status())
	assert.ErrorIs(t, got, plain)
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bad", Validation("bad").Error())
	assert.Equal(t, "up: boom", Upload("up", errors.New("boom")).Error())
}
