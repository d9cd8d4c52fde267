package services

import (
	"context"

	"github.com/samber/mo"

	"wordwatch/models"
)

// WatchesService defines the interface for watch index operations
type WatchesService interface {
	// RegisterWords subscribes the user to each word within the server.
	// Words the user already watches are skipped. Returns the words
	// actually added, in input order.
	RegisterWords(ctx context.Context, serverID, userID string, words []string) ([]string, error)

	// UnregisterWords removes the user's subscription to each word within
	// the server. Words the user was not watching are skipped. Returns
	// the words actually removed, in input order.
	UnregisterWords(ctx context.Context, serverID, userID string, words []string) ([]string, error)

	// ScanMessage tokenizes the message and resolves it against the watch
	// index for the server. The result maps each user to the watched
	// words that appeared, in message order with duplicate occurrences
	// preserved. The author is never included.
	ScanMessage(ctx context.Context, serverID, authorID, messageText string) (map[string][]string, error)

	// ListWatchedWords returns every word the user watches in the server,
	// in deterministic order. Empty when the user watches nothing there.
	ListWatchedWords(ctx context.Context, serverID, userID string) ([]string, error)
}

// ProfilesService defines the interface for user profile snapshots
type ProfilesService interface {
	// EnsureProfile persists the snapshot unless one already exists for
	// the user. Losing the race to a concurrent first registration is
	// not an error.
	EnsureProfile(ctx context.Context, profile *models.UserProfile) error

	GetProfileByID(ctx context.Context, userID string) (mo.Option[*models.UserProfile], error)
}

// TransactionManager defines the interface for managing database transactions
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
	BeginTransaction(ctx context.Context) (context.Context, error)
	CommitTransaction(ctx context.Context) error
	RollbackTransaction(ctx context.Context) error
}
