package txmanager

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordwatch/core"
	"wordwatch/db"
	"wordwatch/models"
	"wordwatch/testutils"
)

func setupTestTransactionManager(t *testing.T) (*TransactionManager, *db.PostgresWatchesRepository, func()) {
	cfg, err := testutils.LoadTestConfig()
	require.NoError(t, err)

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err, "Failed to create database connection")

	watchesRepo := db.NewPostgresWatchesRepository(dbConn, cfg.DatabaseSchema)
	txManager := NewTransactionManager(dbConn)

	cleanup := func() {
		dbConn.Close()
	}

	return txManager, watchesRepo, cleanup
}

func newTestWatch(serverID, userID, word string) *models.WatchedWord {
	return &models.WatchedWord{
		ID:       core.NewID("ww"),
		Word:     word,
		ServerID: serverID,
		UserID:   userID,
	}
}

func TestWithTransactionCommits(t *testing.T) {
	txManager, watchesRepo, cleanup := setupTestTransactionManager(t)
	defer cleanup()
	ctx := context.Background()

	serverID := testutils.NewTestServerID()
	userID := testutils.NewTestUserID()

	err := txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := watchesRepo.AddWatchedWord(txCtx, newTestWatch(serverID, userID, "alpha")); err != nil {
			return err
		}
		_, err := watchesRepo.AddWatchedWord(txCtx, newTestWatch(serverID, userID, "beta"))
		return err
	})
	require.NoError(t, err)

	watches, err := watchesRepo.GetWatchedWordsByServerAndUser(ctx, serverID, userID)
	require.NoError(t, err)
	assert.Len(t, watches, 2)
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	txManager, watchesRepo, cleanup := setupTestTransactionManager(t)
	defer cleanup()
	ctx := context.Background()

	serverID := testutils.NewTestServerID()
	userID := testutils.NewTestUserID()

	err := txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := watchesRepo.AddWatchedWord(txCtx, newTestWatch(serverID, userID, "alpha")); err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	// The insert inside the failed transaction must not be visible
	watches, err := watchesRepo.GetWatchedWordsByServerAndUser(ctx, serverID, userID)
	require.NoError(t, err)
	assert.Empty(t, watches)
}

func TestWithTransactionSupportsNesting(t *testing.T) {
	txManager, watchesRepo, cleanup := setupTestTransactionManager(t)
	defer cleanup()
	ctx := context.Background()

	serverID := testutils.NewTestServerID()
	userID := testutils.NewTestUserID()

	err := txManager.WithTransaction(ctx, func(outerCtx context.Context) error {
		return txManager.WithTransaction(outerCtx, func(innerCtx context.Context) error {
			_, err := watchesRepo.AddWatchedWord(innerCtx, newTestWatch(serverID, userID, "nested"))
			return err
		})
	})
	require.NoError(t, err)

	watches, err := watchesRepo.GetWatchedWordsByServerAndUser(ctx, serverID, userID)
	require.NoError(t, err)
	assert.Len(t, watches, 1)
}

func TestManualTransactionLifecycle(t *testing.T) {
	txManager, watchesRepo, cleanup := setupTestTransactionManager(t)
	defer cleanup()
	ctx := context.Background()

	serverID := testutils.NewTestServerID()
	userID := testutils.NewTestUserID()

	txCtx, err := txManager.BeginTransaction(ctx)
	require.NoError(t, err)

	_, err = watchesRepo.AddWatchedWord(txCtx, newTestWatch(serverID, userID, "manual"))
	require.NoError(t, err)
	require.NoError(t, txManager.CommitTransaction(txCtx))

	watches, err := watchesRepo.GetWatchedWordsByServerAndUser(ctx, serverID, userID)
	require.NoError(t, err)
	assert.Len(t, watches, 1)

	// Commit without a transaction in the context fails
	assert.Error(t, txManager.CommitTransaction(ctx))
	assert.Error(t, txManager.RollbackTransaction(ctx))
}
