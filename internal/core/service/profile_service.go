package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devlink/social-api/internal/core/domain"
	"github.com/devlink/social-api/internal/core/ports"
)

// ProfileService implements profile use cases plus the account-wide
// cascade delete.
type ProfileService struct {
	profiles ports.ProfileRepository
	posts    ports.PostRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewProfileService(
	profiles ports.ProfileRepository,
	posts ports.PostRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{profiles: profiles, posts: posts, users: users, logger: logger}
}

// Upsert creates or replaces the settable profile fields for userID.
func (s *ProfileService) Upsert(ctx context.Context, userID string, input ports.UpsertProfileInput) (*domain.Profile, error) {
	profile := &domain.Profile{
		User:           userID,
		Company:        input.Company,
		Website:        normalizeURL(input.Website),
		Location:       input.Location,
		Status:         input.Status,
		Skills:         normalizeSkills(input.Skills, input.SkillsCSV),
		Bio:            input.Bio,
		GithubUsername: input.GithubUsername,
		Social: domain.Social{
			Youtube:   normalizeURL(input.Youtube),
			Twitter:   normalizeURL(input.Twitter),
			Facebook:  normalizeURL(input.Facebook),
			Linkedin:  normalizeURL(input.Linkedin),
			Instagram: normalizeURL(input.Instagram),
		},
		UpdatedAt: time.Now().UTC(),
	}

	return s.profiles.Upsert(ctx, profile)
}

func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.FindByUser(ctx, userID)
}

func (s *ProfileService) ListAll(ctx context.Context) ([]*domain.Profile, error) {
	return s.profiles.ListAll(ctx)
}

// DeleteCascade removes the user's posts, profile and account record. The
// three deletions are independent and sequential; a failure aborts the rest
// and may leave partial state. Likes and comments the user left on other
// users' posts are not cleaned up.
func (s *ProfileService) DeleteCascade(ctx context.Context, userID string) error {
	if err := s.posts.DeleteByAuthor(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user", userID).Msg("cascade: failed to delete posts")
		return err
	}
	if err := s.profiles.DeleteByUser(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user", userID).Msg("cascade: failed to delete profile")
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user", userID).Msg("cascade: failed to delete user")
		return err
	}

	s.logger.Info().Str("user", userID).Msg("account deleted")
	return nil
}

// AddExperience prepends a work history entry with a fresh id. The profile
// must already exist; there is no auto-create.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, input ports.ExperienceInput) (*domain.Profile, error) {
	entry := domain.Experience{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
	return s.profiles.PushExperience(ctx, userID, entry)
}

func (s *ProfileService) RemoveExperience(ctx context.Context, userID, entryID string) (*domain.Profile, error) {
	return s.profiles.PullExperience(ctx, userID, entryID)
}

func (s *ProfileService) AddEducation(ctx context.Context, userID string, input ports.EducationInput) (*domain.Profile, error) {
	entry := domain.Education{
		ID:           uuid.NewString(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
	return s.profiles.PushEducation(ctx, userID, entry)
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID, entryID string) (*domain.Profile, error) {
	return s.profiles.PullEducation(ctx, userID, entryID)
}

// normalizeSkills resolves the two accepted skills encodings. A list is
// stored verbatim. A comma-separated string is split on commas and every
// entry is stored with a single leading space ("js, node" becomes " js",
// " node"); existing clients render these values as-is, so the leading
// space is observable behavior and must not change.
func normalizeSkills(list []string, csv string) []string {
	if list != nil {
		return list
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, " "+strings.TrimSpace(p))
	}
	return out
}

// normalizeURL forces a canonical https form. Empty values stay empty.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") {
		return "https://" + strings.TrimPrefix(raw, "http://")
	}
	if !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}
