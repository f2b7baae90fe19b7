package model

import "time"

// Snippet is a stored text record. ID and CreatedAt are assigned by the
// store at creation time; Text never changes once the record exists.
type Snippet struct {
	ID        string
	Text      string
	CreatedAt time.Time
}
