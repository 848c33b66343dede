package ports

import (
	"context"

	"github.com/devlink/social-api/internal/core/domain"
)

// ProfileRepository defines persistence for profile documents. Experience
// and education mutations are conditional updates keyed on the owning user;
// there is no auto-create on push.
type ProfileRepository interface {
	// Upsert creates the profile when absent, otherwise replaces the
	// settable fields, and returns the stored document.
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	FindByUser(ctx context.Context, userID string) (*domain.Profile, error)
	ListAll(ctx context.Context) ([]*domain.Profile, error)
	DeleteByUser(ctx context.Context, userID string) error

	// PushExperience prepends the entry. Fails with
	// domain.ErrProfileNotFound when the profile does not exist.
	PushExperience(ctx context.Context, userID string, entry domain.Experience) (*domain.Profile, error)
	// PullExperience removes the entry by id. Fails with
	// domain.ErrProfileNotFound or domain.ErrEntryNotFound.
	PullExperience(ctx context.Context, userID, entryID string) (*domain.Profile, error)
	PushEducation(ctx context.Context, userID string, entry domain.Education) (*domain.Profile, error)
	PullEducation(ctx context.Context, userID, entryID string) (*domain.Profile, error)
}
