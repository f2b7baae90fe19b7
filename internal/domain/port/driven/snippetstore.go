package driven

import (
	"context"
	"errors"

	"github.com/snipvault/snipvault/internal/domain/model"
)

// ErrSnippetNotFound indicates the requested snippet does not exist.
var ErrSnippetNotFound = errors.New("snippet not found")

// SnippetStore defines the driven port for snippet persistence.
// ListAll returns snippets ordered by creation time, newest first.
// Create assigns the id and creation time and returns the stored record.
// Delete returns ErrSnippetNotFound if no snippet with the id exists.
type SnippetStore interface {
	ListAll(ctx context.Context) ([]model.Snippet, error)
	Create(ctx context.Context, text string) (model.Snippet, error)
	Delete(ctx context.Context, id string) error
}
