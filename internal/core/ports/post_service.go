package ports

import (
	"context"

	"github.com/devlink/social-api/internal/core/domain"
)

// PostService defines use-case operations for the post feed.
type PostService interface {
	Create(ctx context.Context, authorID, text string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	// Delete removes a post. Fails with domain.ErrForbidden when
	// requesterID is not the author.
	Delete(ctx context.Context, id, requesterID string) error
	Like(ctx context.Context, id, userID string) ([]domain.Like, error)
	Unlike(ctx context.Context, id, userID string) ([]domain.Like, error)
	AddComment(ctx context.Context, id, userID, text string) ([]domain.Comment, error)
	// DeleteComment removes a comment by its own id, never by requester id.
	// Fails with domain.ErrForbidden when requesterID did not write it.
	DeleteComment(ctx context.Context, id, commentID, requesterID string) ([]domain.Comment, error)
}
