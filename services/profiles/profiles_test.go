package profiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordwatch/db"
	"wordwatch/models"
	"wordwatch/testutils"
)

func setupTestProfilesService(t *testing.T) (*ProfilesService, func()) {
	cfg, err := testutils.LoadTestConfig()
	require.NoError(t, err)

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err, "Failed to create database connection")

	profilesRepo := db.NewPostgresProfilesRepository(dbConn, cfg.DatabaseSchema)
	service := NewProfilesService(profilesRepo)

	cleanup := func() {
		dbConn.Close()
	}

	return service, cleanup
}

func TestEnsureProfileKeepsFirstSnapshot(t *testing.T) {
	service, cleanup := setupTestProfilesService(t)
	defer cleanup()
	ctx := context.Background()

	profile := testutils.NewTestProfile(t)
	require.NoError(t, service.EnsureProfile(ctx, profile))

	// A later ensure with different metadata must not refresh the snapshot
	changed := &models.UserProfile{
		ID:            profile.ID,
		DisplayName:   "Renamed User",
		Discriminator: "9999",
		AvatarURL:     "https://cdn.example.com/avatars/new.png",
	}
	require.NoError(t, service.EnsureProfile(ctx, changed))

	maybeStored, err := service.GetProfileByID(ctx, profile.ID)
	require.NoError(t, err)
	require.True(t, maybeStored.IsPresent())

	stored := maybeStored.MustGet()
	assert.Equal(t, profile.DisplayName, stored.DisplayName)
	assert.Equal(t, profile.Discriminator, stored.Discriminator)
	assert.Equal(t, profile.AvatarURL, stored.AvatarURL)
}

func TestGetProfileByIDAbsent(t *testing.T) {
	service, cleanup := setupTestProfilesService(t)
	defer cleanup()
	ctx := context.Background()

	maybeProfile, err := service.GetProfileByID(ctx, testutils.NewTestUserID())
	require.NoError(t, err)
	assert.False(t, maybeProfile.IsPresent())
}

func TestProfileValidation(t *testing.T) {
	service, cleanup := setupTestProfilesService(t)
	defer cleanup()
	ctx := context.Background()

	assert.Error(t, service.EnsureProfile(ctx, nil))
	assert.Error(t, service.EnsureProfile(ctx, &models.UserProfile{}))

	_, err := service.GetProfileByID(ctx, "")
	assert.Error(t, err)
}
