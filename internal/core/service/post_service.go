package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devlink/social-api/internal/api/metrics"
	"github.com/devlink/social-api/internal/core/domain"
	"github.com/devlink/social-api/internal/core/ports"
)

// PostService implements the post feed use cases.
type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, logger: logger}
}

// Create stores a new post, snapshotting the author's current name and
// avatar. The snapshot is never updated afterwards.
func (s *PostService) Create(ctx context.Context, authorID, text string) (*domain.Post, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		User:     authorID,
		Text:     text,
		Name:     author.Name,
		Avatar:   author.Avatar,
		Likes:    []domain.Like{},
		Comments: []domain.Comment{},
		Date:     time.Now().UTC(),
	}

	created, err := s.posts.Insert(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("user", authorID).Msg("failed to create post")
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.logger.Info().Str("post", created.ID).Str("user", authorID).Msg("post created")
	return created, nil
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.ListAll(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// Delete removes a post after checking ownership.
func (s *PostService) Delete(ctx context.Context, id, requesterID string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.User != requesterID {
		return domain.ErrForbidden
	}
	return s.posts.Delete(ctx, id)
}

// Like prepends a like entry for userID. A second like by the same user is
// rejected with domain.ErrAlreadyLiked, not treated as a no-op.
func (s *PostService) Like(ctx context.Context, id, userID string) ([]domain.Like, error) {
	likes, err := s.posts.PushLike(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	metrics.PostLikesTotal.WithLabelValues("like").Inc()
	return likes, nil
}

// Unlike removes exactly the one like entry for userID.
func (s *PostService) Unlike(ctx context.Context, id, userID string) ([]domain.Like, error) {
	likes, err := s.posts.PullLike(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	metrics.PostLikesTotal.WithLabelValues("unlike").Inc()
	return likes, nil
}

// AddComment prepends a comment with a fresh id and a snapshot of the
// commenter's name and avatar.
func (s *PostService) AddComment(ctx context.Context, id, userID, text string) ([]domain.Comment, error) {
	commenter, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:     uuid.NewString(),
		User:   userID,
		Text:   text,
		Name:   commenter.Name,
		Avatar: commenter.Avatar,
		Date:   time.Now().UTC(),
	}

	comments, err := s.posts.PushComment(ctx, id, comment)
	if err != nil {
		return nil, err
	}
	metrics.CommentsTotal.WithLabelValues("add").Inc()
	return comments, nil
}

// DeleteComment removes a comment by its id after checking that requesterID
// wrote it. Removal is keyed on the comment id itself so a user with several
// comments on one post never loses the wrong one.
func (s *PostService) DeleteComment(ctx context.Context, id, commentID, requesterID string) ([]domain.Comment, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment := post.CommentByID(commentID)
	if comment == nil {
		return nil, domain.ErrCommentNotFound
	}
	if comment.User != requesterID {
		return nil, domain.ErrForbidden
	}

	comments, err := s.posts.PullComment(ctx, id, commentID)
	if err != nil {
		return nil, err
	}
	metrics.CommentsTotal.WithLabelValues("delete").Inc()
	return comments, nil
}
