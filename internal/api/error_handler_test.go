package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devlink/social-api/internal/core/domain"
	"github.com/devlink/social-api/internal/core/ports"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid credentials"},
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "user already exists"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "token is not valid"},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized, "token is not valid"},
		{"forbidden", domain.ErrForbidden, http.StatusUnauthorized, "user not authorized"},
		{"post not found", domain.ErrPostNotFound, http.StatusNotFound, "post not found"},
		{"comment not found", domain.ErrCommentNotFound, http.StatusNotFound, "comment does not exist"},
		{"already liked", domain.ErrAlreadyLiked, http.StatusBadRequest, "post already liked"},
		{"not liked", domain.ErrNotLiked, http.StatusBadRequest, "post has not been liked"},
		{"profile not found", domain.ErrProfileNotFound, http.StatusBadRequest, "profile not found"},
		{"entry not found", domain.ErrEntryNotFound, http.StatusNotFound, "entry not found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"github upstream", ports.ErrUpstream, http.StatusInternalServerError, "server error"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "server error"},
	}

	handle := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handle(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["error"] != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, resp["error"])
			}
		})
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	handle := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handle(echo.NewHTTPError(http.StatusUnauthorized, "no token, authorization denied"), c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "no token, authorization denied" {
		t.Fatalf("unexpected message: %q", resp["error"])
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	handle := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.JSON(http.StatusOK, map[string]string{"msg": "done"}); err != nil {
		t.Fatalf("write response: %v", err)
	}
	handle(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response overwritten: %d", rec.Code)
	}
}
