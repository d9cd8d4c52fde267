package profiles

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"wordwatch/models"
)

// ProfilesRepository defines the interface for profile snapshot repository operations
type ProfilesRepository interface {
	CreateProfileIfAbsent(ctx context.Context, profile *models.UserProfile) (bool, error)
	GetProfileByID(ctx context.Context, userID string) (mo.Option[*models.UserProfile], error)
}

type ProfilesService struct {
	profilesRepo ProfilesRepository
}

func NewProfilesService(repo ProfilesRepository) *ProfilesService {
	return &ProfilesService{profilesRepo: repo}
}

// EnsureProfile captures the user's display snapshot on first contact.
// An existing snapshot is kept as-is, including when a concurrent call
// wins the insert race.
func (s *ProfilesService) EnsureProfile(ctx context.Context, profile *models.UserProfile) error {
	if profile == nil {
		return fmt.Errorf("profile cannot be nil")
	}
	if profile.ID == "" {
		return fmt.Errorf("profile user ID cannot be empty")
	}

	created, err := s.profilesRepo.CreateProfileIfAbsent(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to ensure profile for user %s: %w", profile.ID, err)
	}

	if created {
		log.Printf("✅ Captured profile snapshot for user %s (%s)", profile.ID, profile.DisplayName)
	}
	return nil
}

func (s *ProfilesService) GetProfileByID(
	ctx context.Context,
	userID string,
) (mo.Option[*models.UserProfile], error) {
	if userID == "" {
		return mo.None[*models.UserProfile](), fmt.Errorf("user ID cannot be empty")
	}

	maybeProfile, err := s.profilesRepo.GetProfileByID(ctx, userID)
	if err != nil {
		return mo.None[*models.UserProfile](), fmt.Errorf("failed to get profile: %w", err)
	}
	return maybeProfile, nil
}
