package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devlink/social-api/internal/core/domain"
	"github.com/devlink/social-api/internal/core/ports"
)

// PostHandler handles the post feed, likes and comments. Status codes are
// route-specific for client compatibility: a missing post is 400 on
// get/delete and comment creation but 404 on like/unlike and comment
// deletion, and ownership failures are 401.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create stores a new post for the authenticated user.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string             true  "Bearer token"
// @Param        body          body    createPostRequest  true  "Post text"
// @Success      200  {object}  domain.Post
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	post, err := h.service.Create(c.Request().Context(), userID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// List returns all posts, newest first.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Param        x-auth-token  header  string  true  "Bearer token"
// @Success      200  {array}   domain.Post
// @Failure      401  {object}  errorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get returns a single post by id.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        x-auth-token  header  string  true  "Bearer token"
// @Param        id            path    string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      400  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "post not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete removes a post owned by the authenticated user.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        x-auth-token  header  string  true  "Bearer token"
// @Param        id            path    string  true  "Post id"
// @Success      200  {object}  removedResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "post not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, removedResponse{Msg: "post removed"})
}

// Like adds the authenticated user's like to a post. Liking twice is an
// error, not a no-op.
//
// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Param        x-auth-token  header  string  true  "Bearer token"
// @Param        id            path    string  true  "Post id"
// @Success      200  {array}   domain.Like
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/like/{id} [put]
func (h *PostHandler) Like(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	likes, err := h.service.Like(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likes)
}

// Unlike removes the authenticated user's like from a post.
//
// @Summary      Unlike a post
// @Tags         posts
// @Produce      json
// @Param        x-auth-token  header  string  true  "Bearer token"
// @Param        id            path    string  true  "Post id"
// @Success      200  {array}   domain.Like
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/unlike/{id} [put]
func (h *PostHandler) Unlike(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	likes, err := h.service.Unlike(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likes)
}

// AddComment appends a comment to a post and returns the updated list.
//
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string          true  "Bearer token"
// @Param        id            path    string          true  "Post id"
// @Param        body          body    commentRequest  true  "Comment text"
// @Success      200  {array}   domain.Comment
// @Failure      400  {object}  errorResponse
// @Router       /posts/comment/{id} [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	comments, err := h.service.AddComment(c.Request().Context(), c.Param("id"), userID, req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "post not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// DeleteComment removes one of the authenticated user's comments by its id
// and returns the updated list.
//
// @Summary      Delete a comment
// @Tags         posts
// @Produce      json
// @Param        x-auth-token  header  string  true  "Bearer token"
// @Param        id            path    string  true  "Post id"
// @Param        commentId     path    string  true  "Comment id"
// @Success      200  {array}   domain.Comment
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/comment/{id}/{commentId} [delete]
func (h *PostHandler) DeleteComment(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	comments, err := h.service.DeleteComment(c.Request().Context(), c.Param("id"), c.Param("commentId"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}
