package handlers

import (
	"net/http"

	"github.com/murmurlabs/murmur/internal/api/middleware"
	"github.com/murmurlabs/murmur/internal/apperr"
	"github.com/murmurlabs/murmur/internal/models"
	"github.com/murmurlabs/murmur/internal/utils"
)

// Message serves the chat sidebar. Conversation storage lives elsewhere;
// this only lists who the caller can talk to.
type Message struct {
	Store models.UserStore
}

func NewMessage(store models.UserStore) *Message {
	return &Message{Store: store}
}

// GET /api/message/users
func (h *Message) GetUsersForSidebar(w http.ResponseWriter, r *http.Request) error {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		return apperr.Unauthorized("Unauthorized - No Token Provided")
	}

	users, err := h.Store.ListOthers(r.Context(), user.ID)
	if err != nil {
		return apperr.Internal("Database query failed", err)
	}

	utils.JSONResponse(w, http.StatusOK, users)
	return nil
}
