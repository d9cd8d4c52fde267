package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	dbtx "wordwatch/db/tx"
	"wordwatch/models"
)

type PostgresWatchesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for watched_words table
var watchedWordsColumns = []string{
	"id",
	"word",
	"server_id",
	"user_id",
	"created_at",
	"updated_at",
}

func NewPostgresWatchesRepository(db *sqlx.DB, schema string) *PostgresWatchesRepository {
	return &PostgresWatchesRepository{db: db, schema: schema}
}

// AddWatchedWord inserts one membership row. Returns false when the user
// already watches the word in that server (the insert is a no-op).
func (r *PostgresWatchesRepository) AddWatchedWord(
	ctx context.Context,
	watch *models.WatchedWord,
) (bool, error) {
	insertColumns := []string{
		"id",
		"word",
		"server_id",
		"user_id",
		"created_at",
		"updated_at",
	}
	columnsStr := strings.Join(insertColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.watched_words (%s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (word, server_id, user_id) DO NOTHING`, r.schema, columnsStr)

	db := dbtx.GetTransactional(ctx, r.db)
	result, err := db.ExecContext(ctx, query, watch.ID, watch.Word, watch.ServerID, watch.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to add watched word: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected > 0, nil
}

// RemoveWatchedWord deletes one membership row. Returns false when the
// user was not watching the word in that server.
func (r *PostgresWatchesRepository) RemoveWatchedWord(
	ctx context.Context,
	serverID, userID, word string,
) (bool, error) {
	query := fmt.Sprintf(
		`DELETE FROM %s.watched_words WHERE server_id = $1 AND user_id = $2 AND word = $3`,
		r.schema,
	)

	db := dbtx.GetTransactional(ctx, r.db)
	result, err := db.ExecContext(ctx, query, serverID, userID, word)
	if err != nil {
		return false, fmt.Errorf("failed to remove watched word: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected > 0, nil
}

// GetWatchedWordsByServerAndUser returns every word a user watches in a
// server, ordered by word for deterministic output.
func (r *PostgresWatchesRepository) GetWatchedWordsByServerAndUser(
	ctx context.Context,
	serverID, userID string,
) ([]*models.WatchedWord, error) {
	columnsStr := strings.Join(watchedWordsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.watched_words
		WHERE server_id = $1 AND user_id = $2
		ORDER BY word ASC`, columnsStr, r.schema)

	db := dbtx.GetTransactional(ctx, r.db)
	var watches []*models.WatchedWord
	err := db.SelectContext(ctx, &watches, query, serverID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get watched words by server and user: %w", err)
	}

	return watches, nil
}

// GetWatchersForWords returns every membership row in the server whose
// word appears in the given set. This is the scan path, served by the
// (server_id, word) index in a single round trip.
func (r *PostgresWatchesRepository) GetWatchersForWords(
	ctx context.Context,
	serverID string,
	words []string,
) ([]*models.WatchedWord, error) {
	if len(words) == 0 {
		return nil, nil
	}

	columnsStr := strings.Join(watchedWordsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.watched_words
		WHERE server_id = $1 AND word = ANY($2)`, columnsStr, r.schema)

	db := dbtx.GetTransactional(ctx, r.db)
	var watches []*models.WatchedWord
	err := db.SelectContext(ctx, &watches, query, serverID, pq.Array(words))
	if err != nil {
		return nil, fmt.Errorf("failed to get watchers for words: %w", err)
	}

	return watches, nil
}
