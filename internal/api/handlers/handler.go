package handlers

import (
	"log"
	"net/http"

	"github.com/murmurlabs/murmur/internal/apperr"
	"github.com/murmurlabs/murmur/internal/utils"
)

// HandlerFunc is an http handler that reports failures instead of writing
// them. Handle translates the error taxonomy to statuses in one place.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		ae := apperr.From(err)
		if ae.Status() >= http.StatusInternalServerError {
			// Operator-facing detail stays in the log; clients get the
			// generic message.
			log.Printf("Error in %s %s: %v", r.Method, r.URL.Path, err)
			utils.Message(w, ae.Status(), "Internal Server Error")
			return
		}
		utils.Message(w, ae.Status(), ae.Message)
	}
}
