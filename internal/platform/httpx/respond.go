// Package httpx provides HTTP response utilities shared by every handler.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the uniform error payload for all endpoints.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends an error response carrying an "error" field.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// DecodeJSON decodes the JSON request body into the target struct. Unknown
// fields are not rejected: payloads may carry extra fields.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
