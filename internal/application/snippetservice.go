package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/snipvault/snipvault/internal/domain/model"
	"github.com/snipvault/snipvault/internal/domain/port/driven"
)

// ErrEmptyText indicates a create attempt whose text is empty or whitespace.
var ErrEmptyText = errors.New("snippet text cannot be empty")

// SnippetService validates input and applies the bounded store deadline in
// front of the persistence port. Delete passes driven.ErrSnippetNotFound
// through unchanged so the transport layer can surface it as not-found.
type SnippetService struct {
	store        driven.SnippetStore
	storeTimeout time.Duration
}

// NewSnippetService creates a SnippetService. storeTimeout bounds every
// storage operation so no caller can hang on an unresponsive store.
func NewSnippetService(store driven.SnippetStore, storeTimeout time.Duration) *SnippetService {
	return &SnippetService{store: store, storeTimeout: storeTimeout}
}

// List returns all snippets ordered newest-first. No snippets is a normal
// empty result, not an error.
func (s *SnippetService) List(ctx context.Context) ([]model.Snippet, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	snippets, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}

	return snippets, nil
}

// Create stores a new snippet. Text that trims to empty is rejected with
// ErrEmptyText before the store is touched. The returned record carries the
// store-assigned id and creation time.
func (s *SnippetService) Create(ctx context.Context, text string) (model.Snippet, error) {
	if strings.TrimSpace(text) == "" {
		return model.Snippet{}, ErrEmptyText
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	snippet, err := s.store.Create(ctx, text)
	if err != nil {
		return model.Snippet{}, fmt.Errorf("create snippet: %w", err)
	}

	return snippet, nil
}

// Delete removes the snippet with the given id. A nonexistent id returns
// driven.ErrSnippetNotFound, a normal outcome rather than a fault.
func (s *SnippetService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, driven.ErrSnippetNotFound) {
			return err
		}
		return fmt.Errorf("delete snippet %s: %w", id, err)
	}

	return nil
}
