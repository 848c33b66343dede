package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devlink/social-api/internal/core/domain"
	"github.com/devlink/social-api/internal/core/ports"
)

// profileMutationError maps errors from experience/education mutations.
// These routes report a missing profile as 404 while the profile read
// routes return 400 for the same condition.
func profileMutationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "profile not found"})
	case errors.Is(err, domain.ErrEntryNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "entry not found"})
	}
	return err
}

// ProfileHandler handles profile documents, their embedded experience and
// education lists, the account cascade delete, and the GitHub repo proxy.
type ProfileHandler struct {
	service ports.ProfileService
	github  ports.GithubService
}

func NewProfileHandler(service ports.ProfileService, github ports.GithubService) *ProfileHandler {
	return &ProfileHandler{service: service, github: github}
}

// Me returns the authenticated user's profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Param        x-auth-token  header  string  true  "Bearer token"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  errorResponse
// @Router       /profile/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.GetByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Upsert creates or updates the authenticated user's profile.
//
// @Summary      Create or update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string                true  "Bearer token"
// @Param        body          body    upsertProfileRequest  true  "Profile fields"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  errorResponse
// @Router       /profile [post]
func (h *ProfileHandler) Upsert(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	var req upsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	if !req.Skills.set {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "skills is required"})
	}

	profile, err := h.service.Upsert(c.Request().Context(), userID, toUpsertInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// List returns all profiles. Public.
//
// @Summary      List all profiles
// @Tags         profile
// @Produce      json
// @Success      200  {array}  domain.Profile
// @Router       /profile [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetByUser returns the profile for a user id. Public.
//
// @Summary      Get a profile by user id
// @Tags         profile
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  errorResponse
// @Router       /profile/user/{id} [get]
func (h *ProfileHandler) GetByUser(c echo.Context) error {
	profile, err := h.service.GetByUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteAccount removes the authenticated user's posts, profile and account.
//
// @Summary      Delete own account, profile and posts
// @Tags         profile
// @Produce      json
// @Param        x-auth-token  header  string  true  "Bearer token"
// @Success      200  {object}  removedResponse
// @Failure      401  {object}  errorResponse
// @Router       /profile [delete]
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCascade(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, removedResponse{Msg: "user deleted"})
}

// AddExperience prepends a work history entry. The profile must exist.
//
// @Summary      Add a profile experience entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string             true  "Bearer token"
// @Param        body          body    experienceRequest  true  "Experience entry"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile/experience [put]
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	profile, err := h.service.AddExperience(c.Request().Context(), userID, toExperienceInput(req))
	if err != nil {
		return profileMutationError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveExperience deletes a work history entry by id.
//
// @Summary      Remove a profile experience entry
// @Tags         profile
// @Produce      json
// @Param        x-auth-token  header  string  true  "Bearer token"
// @Param        id            path    string  true  "Entry id"
// @Success      200  {object}  domain.Profile
// @Failure      404  {object}  errorResponse
// @Router       /profile/experience/{id} [delete]
func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.RemoveExperience(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return profileMutationError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// AddEducation prepends an education entry. The profile must exist.
//
// @Summary      Add a profile education entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string            true  "Bearer token"
// @Param        body          body    educationRequest  true  "Education entry"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile/education [put]
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	var req educationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	profile, err := h.service.AddEducation(c.Request().Context(), userID, toEducationInput(req))
	if err != nil {
		return profileMutationError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveEducation deletes an education entry by id.
//
// @Summary      Remove a profile education entry
// @Tags         profile
// @Produce      json
// @Param        x-auth-token  header  string  true  "Bearer token"
// @Param        id            path    string  true  "Entry id"
// @Success      200  {object}  domain.Profile
// @Failure      404  {object}  errorResponse
// @Router       /profile/education/{id} [delete]
func (h *ProfileHandler) RemoveEducation(c echo.Context) error {
	userID, err := UserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.RemoveEducation(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return profileMutationError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// GithubRepos proxies the user's five most recently created public
// repositories from the GitHub API. Public.
//
// @Summary      List a user's GitHub repositories
// @Tags         profile
// @Produce      json
// @Param        username  path  string  true  "GitHub username"
// @Success      200  {array}   object
// @Failure      500  {object}  errorResponse
// @Router       /profile/github/{username} [get]
func (h *ProfileHandler) GithubRepos(c echo.Context) error {
	repos, err := h.github.Repos(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, repos)
}
