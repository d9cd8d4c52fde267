package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	dbtx "wordwatch/db/tx"
	"wordwatch/models"
)

type PostgresProfilesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for user_profiles table
var userProfilesColumns = []string{
	"id",
	"display_name",
	"discriminator",
	"avatar_url",
	"created_at",
	"updated_at",
}

func NewPostgresProfilesRepository(db *sqlx.DB, schema string) *PostgresProfilesRepository {
	return &PostgresProfilesRepository{db: db, schema: schema}
}

// CreateProfileIfAbsent inserts the profile snapshot unless one already
// exists for the user. A conflicting concurrent insert is not an error.
// Returns false when a snapshot was already present.
func (r *PostgresProfilesRepository) CreateProfileIfAbsent(
	ctx context.Context,
	profile *models.UserProfile,
) (bool, error) {
	insertColumns := []string{
		"id",
		"display_name",
		"discriminator",
		"avatar_url",
		"created_at",
		"updated_at",
	}
	columnsStr := strings.Join(insertColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.user_profiles (%s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (id) DO NOTHING`, r.schema, columnsStr)

	db := dbtx.GetTransactional(ctx, r.db)
	result, err := db.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.DisplayName,
		profile.Discriminator,
		profile.AvatarURL,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create user profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *PostgresProfilesRepository) GetProfileByID(
	ctx context.Context,
	userID string,
) (mo.Option[*models.UserProfile], error) {
	if userID == "" {
		return mo.None[*models.UserProfile](), fmt.Errorf("user ID cannot be empty")
	}

	columnsStr := strings.Join(userProfilesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.user_profiles
		WHERE id = $1`, columnsStr, r.schema)

	db := dbtx.GetTransactional(ctx, r.db)
	var profile models.UserProfile
	err := db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.UserProfile](), nil
		}
		return mo.None[*models.UserProfile](), fmt.Errorf("failed to get user profile by ID: %w", err)
	}

	return mo.Some(&profile), nil
}
