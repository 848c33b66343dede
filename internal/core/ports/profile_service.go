package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/devlink/social-api/internal/core/domain"
)

// UpsertProfileInput carries the settable profile fields. Exactly one of
// Skills and SkillsCSV is populated by the transport layer: clients may send
// the skills either as an already-split list or as one comma-separated
// string.
type UpsertProfileInput struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         []string
	SkillsCSV      string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// ExperienceInput carries a new work history entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// EducationInput carries a new education history entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ProfileService defines use-case operations for profiles, including the
// account-wide cascade delete and the GitHub repository proxy.
type ProfileService interface {
	Upsert(ctx context.Context, userID string, input UpsertProfileInput) (*domain.Profile, error)
	GetByUser(ctx context.Context, userID string) (*domain.Profile, error)
	ListAll(ctx context.Context) ([]*domain.Profile, error)
	// DeleteCascade removes the user's posts, profile and account, in that
	// order. The three deletions are independent; there is no transaction.
	DeleteCascade(ctx context.Context, userID string) error
	AddExperience(ctx context.Context, userID string, input ExperienceInput) (*domain.Profile, error)
	RemoveExperience(ctx context.Context, userID, entryID string) (*domain.Profile, error)
	AddEducation(ctx context.Context, userID string, input EducationInput) (*domain.Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID string) (*domain.Profile, error)
}

// GithubService lists a user's public repositories through the GitHub API.
type GithubService interface {
	Repos(ctx context.Context, username string) (json.RawMessage, error)
}
