package models

import (
	"time"
)

// WatchedWord is one membership row in the watch index: one user
// watching one word within one server. A word's entry in the index is
// the set of rows sharing that word, so removing the last row for a
// word removes the word from the index entirely.
type WatchedWord struct {
	ID        string    `db:"id"         json:"id"`
	Word      string    `db:"word"       json:"word"`
	ServerID  string    `db:"server_id"  json:"server_id"`
	UserID    string    `db:"user_id"    json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
