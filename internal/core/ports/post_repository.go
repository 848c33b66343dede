package ports

import (
	"context"

	"github.com/devlink/social-api/internal/core/domain"
)

// PostRepository defines persistence for posts and their embedded likes and
// comments. Every mutation with a precondition (like/unlike/comment removal)
// is a single conditional update: the precondition is part of the store
// filter, so concurrent requests cannot double-apply it.
type PostRepository interface {
	Insert(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// ListAll returns all posts sorted by creation date descending.
	ListAll(ctx context.Context) ([]*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	DeleteByAuthor(ctx context.Context, userID string) error

	// PushLike prepends a like entry if userID is not already present.
	// Fails with domain.ErrPostNotFound or domain.ErrAlreadyLiked.
	PushLike(ctx context.Context, id, userID string) ([]domain.Like, error)
	// PullLike removes the like entry for userID.
	// Fails with domain.ErrPostNotFound or domain.ErrNotLiked.
	PullLike(ctx context.Context, id, userID string) ([]domain.Like, error)
	// PushComment prepends the comment. Fails with domain.ErrPostNotFound.
	PushComment(ctx context.Context, id string, comment domain.Comment) ([]domain.Comment, error)
	// PullComment removes exactly the comment with commentID.
	// Fails with domain.ErrPostNotFound or domain.ErrCommentNotFound.
	PullComment(ctx context.Context, id, commentID string) ([]domain.Comment, error)
}
