package utils

import (
	"encoding/json"
	"net/http"
)

type Payload struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSONResponse sends a JSON response with the given status and body.
func JSONResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Message sends the {"message": ...} shape used by every error and
// acknowledgement response.
func Message(w http.ResponseWriter, status int, msg string) {
	JSONResponse(w, status, Payload{Message: msg})
}
