package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/devlink/social-api/internal/core/domain"
)

type stubPostService struct {
	createFn        func(ctx context.Context, authorID, text string) (*domain.Post, error)
	listFn          func(ctx context.Context) ([]*domain.Post, error)
	getFn           func(ctx context.Context, id string) (*domain.Post, error)
	deleteFn        func(ctx context.Context, id, requesterID string) error
	likeFn          func(ctx context.Context, id, userID string) ([]domain.Like, error)
	unlikeFn        func(ctx context.Context, id, userID string) ([]domain.Like, error)
	addCommentFn    func(ctx context.Context, id, userID, text string) ([]domain.Comment, error)
	deleteCommentFn func(ctx context.Context, id, commentID, requesterID string) ([]domain.Comment, error)
}

func (s *stubPostService) Create(ctx context.Context, authorID, text string) (*domain.Post, error) {
	return s.createFn(ctx, authorID, text)
}

func (s *stubPostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.listFn(ctx)
}

func (s *stubPostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.getFn(ctx, id)
}

func (s *stubPostService) Delete(ctx context.Context, id, requesterID string) error {
	return s.deleteFn(ctx, id, requesterID)
}

func (s *stubPostService) Like(ctx context.Context, id, userID string) ([]domain.Like, error) {
	return s.likeFn(ctx, id, userID)
}

func (s *stubPostService) Unlike(ctx context.Context, id, userID string) ([]domain.Like, error) {
	return s.unlikeFn(ctx, id, userID)
}

func (s *stubPostService) AddComment(ctx context.Context, id, userID, text string) ([]domain.Comment, error) {
	return s.addCommentFn(ctx, id, userID, text)
}

func (s *stubPostService) DeleteComment(ctx context.Context, id, commentID, requesterID string) ([]domain.Comment, error) {
	return s.deleteCommentFn(ctx, id, commentID, requesterID)
}

func TestPostHandler_Create_Success(t *testing.T) {
	stub := &stubPostService{
		createFn: func(_ context.Context, authorID, text string) (*domain.Post, error) {
			if authorID != "user_1" || text != "hello" {
				t.Fatalf("unexpected args: %s %q", authorID, text)
			}
			return &domain.Post{ID: "post_1", User: "user_1", Text: text, Date: time.Now()}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/posts", `{"text":"hello"}`)
	c.Set("user_id", "user_1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["text"] != "hello" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPostHandler_Create_MissingText(t *testing.T) {
	stub := &stubPostService{
		createFn: func(_ context.Context, _, _ string) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/posts", `{}`)
	c.Set("user_id", "user_1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPostHandler_Get_MissingPostIs400(t *testing.T) {
	stub := &stubPostService{
		getFn: func(_ context.Context, _ string) (*domain.Post, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/posts/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPostHandler_Delete_MissingPostIs400(t *testing.T) {
	stub := &stubPostService{
		deleteFn: func(_ context.Context, _, _ string) error {
			return domain.ErrPostNotFound
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/posts/ghost", "")
	c.Set("user_id", "user_1")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPostHandler_Delete_ForbiddenPropagates(t *testing.T) {
	stub := &stubPostService{
		deleteFn: func(_ context.Context, _, _ string) error {
			return domain.ErrForbidden
		},
	}
	h := NewPostHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/posts/post_1", "")
	c.Set("user_id", "user_2")
	c.SetParamNames("id")
	c.SetParamValues("post_1")

	if err := h.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPostHandler_Like_ErrorsPropagate(t *testing.T) {
	for _, want := range []error{domain.ErrPostNotFound, domain.ErrAlreadyLiked} {
		stub := &stubPostService{
			likeFn: func(_ context.Context, _, _ string) ([]domain.Like, error) {
				return nil, want
			},
		}
		h := NewPostHandler(stub)

		c, _ := newTestContext(t, http.MethodPut, "/api/posts/like/post_1", "")
		c.Set("user_id", "user_1")
		c.SetParamNames("id")
		c.SetParamValues("post_1")

		if err := h.Like(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestPostHandler_Like_ReturnsLikeList(t *testing.T) {
	stub := &stubPostService{
		likeFn: func(_ context.Context, id, userID string) ([]domain.Like, error) {
			if id != "post_1" || userID != "user_1" {
				t.Fatalf("unexpected args: %s %s", id, userID)
			}
			return []domain.Like{{User: "user_1"}}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/posts/like/post_1", "")
	c.Set("user_id", "user_1")
	c.SetParamNames("id")
	c.SetParamValues("post_1")

	if err := h.Like(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var likes []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &likes); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(likes) != 1 || likes[0]["user"] != "user_1" {
		t.Fatalf("unexpected like list: %+v", likes)
	}
}

func TestPostHandler_AddComment_MissingPostIs400(t *testing.T) {
	stub := &stubPostService{
		addCommentFn: func(_ context.Context, _, _, _ string) ([]domain.Comment, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/posts/comment/ghost", `{"text":"hi"}`)
	c.Set("user_id", "user_1")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.AddComment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPostHandler_DeleteComment_PassesCommentID(t *testing.T) {
	stub := &stubPostService{
		deleteCommentFn: func(_ context.Context, id, commentID, requesterID string) ([]domain.Comment, error) {
			if id != "post_1" || commentID != "comment_9" || requesterID != "user_1" {
				t.Fatalf("unexpected args: %s %s %s", id, commentID, requesterID)
			}
			return []domain.Comment{}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/posts/comment/post_1/comment_9", "")
	c.Set("user_id", "user_1")
	c.SetParamNames("id", "commentId")
	c.SetParamValues("post_1", "comment_9")

	if err := h.DeleteComment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPostHandler_DeleteComment_ForbiddenPropagates(t *testing.T) {
	stub := &stubPostService{
		deleteCommentFn: func(_ context.Context, _, _, _ string) ([]domain.Comment, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewPostHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/posts/comment/post_1/comment_9", "")
	c.Set("user_id", "user_2")
	c.SetParamNames("id", "commentId")
	c.SetParamValues("post_1", "comment_9")

	if err := h.DeleteComment(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
