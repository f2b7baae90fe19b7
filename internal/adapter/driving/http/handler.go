// Package httphandler is the HTTP driving adapter: the login endpoint plus
// the token-gated snippet API.
package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/snipvault/snipvault/internal/application"
	"github.com/snipvault/snipvault/internal/domain/port/driven"
)

// Handler serves the REST API.
type Handler struct {
	auth     *application.AuthService
	snippets *application.SnippetService
	logger   *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(auth *application.AuthService, snippets *application.SnippetService, logger *slog.Logger) *Handler {
	return &Handler{
		auth:     auth,
		snippets: snippets,
		logger:   logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with logging and recovery middleware. Every snippet route passes the
// access gate; login and health do not.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", h.Login)
	mux.Handle("GET /api/snippets", h.requireToken(http.HandlerFunc(h.ListSnippets)))
	mux.Handle("POST /api/snippets", h.requireToken(http.HandlerFunc(h.CreateSnippet)))
	mux.Handle("DELETE /api/snippets/{id}", h.requireToken(http.HandlerFunc(h.DeleteSnippet)))
	mux.HandleFunc("GET /api/v1/health", h.Health)

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// Login verifies the operator password and returns a fresh access token.
// A missing password is a client-input error; a wrong one is an
// authentication failure. The response never hints how close a guess was.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, err := h.auth.VerifyPassword(req.Password)
	if errors.Is(err, application.ErrPasswordRequired) {
		writeError(w, http.StatusBadRequest, "password is required")
		return
	}
	if err != nil {
		h.logger.Error("failed to verify password", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.auth.IssueToken()
	if err != nil {
		h.logger.Error("failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// ListSnippets returns all snippets, newest first. No snippets is an empty
// array, never null.
func (h *Handler) ListSnippets(w http.ResponseWriter, r *http.Request) {
	snippets, err := h.snippets.List(r.Context())
	if err != nil {
		h.writeStoreError(w, "list snippets", err)
		return
	}

	resp := make([]SnippetResponse, 0, len(snippets))
	for _, s := range snippets {
		resp = append(resp, toSnippetResponse(s))
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateSnippet stores a new snippet and returns the created record with its
// store-assigned id and creation time.
func (h *Handler) CreateSnippet(w http.ResponseWriter, r *http.Request) {
	var req CreateSnippetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snippet, err := h.snippets.Create(r.Context(), req.Text)
	if errors.Is(err, application.ErrEmptyText) {
		writeError(w, http.StatusBadRequest, "snippet text cannot be empty")
		return
	}
	if err != nil {
		h.writeStoreError(w, "create snippet", err)
		return
	}

	writeJSON(w, http.StatusCreated, toSnippetResponse(snippet))
}

// DeleteSnippet removes a snippet by id. An unknown id is a structured
// not-found, not a server error.
func (h *Handler) DeleteSnippet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.snippets.Delete(r.Context(), id)
	if errors.Is(err, driven.ErrSnippetNotFound) {
		writeError(w, http.StatusNotFound, "snippet not found")
		return
	}
	if err != nil {
		h.writeStoreError(w, "delete snippet", err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "snippet deleted"})
}

// Health is the unauthenticated liveness probe used by cmd/healthcheck.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// writeStoreError maps a failed storage operation to a response: deadline
// exhaustion surfaces as a timeout, everything else as a generic server
// error with detail kept in the logs.
func (h *Handler) writeStoreError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		h.logger.Error("storage operation timed out", "op", op, "error", err)
		writeError(w, http.StatusGatewayTimeout, "storage timeout")
		return
	}

	h.logger.Error("storage operation failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
