package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/snipvault/snipvault/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the standard acknowledgment body.
type messageResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the JSON body for the login endpoint.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateSnippetRequest is the JSON body for the create snippet endpoint.
type CreateSnippetRequest struct {
	Text string `json:"text"`
}

// SnippetResponse is the JSON representation of a snippet.
type SnippetResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toSnippetResponse converts a domain Snippet to its JSON representation.
func toSnippetResponse(s model.Snippet) SnippetResponse {
	return SnippetResponse{
		ID:        s.ID,
		Text:      s.Text,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
