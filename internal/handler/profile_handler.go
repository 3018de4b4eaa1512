package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devconnector/internal/errors"
	"devconnector/internal/service"
	"devconnector/internal/validation"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Current godoc
// @Summary Get the authenticated user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 404 {object} map[string]string
// @Router /profile [get]
func (h *ProfileHandler) Current(c echo.Context) error {
	profile, err := h.profileService.Current(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// All godoc
// @Summary List all profiles
// @Tags profile
// @Produce json
// @Success 200 {array} model.Profile
// @Router /profile/all [get]
func (h *ProfileHandler) All(c echo.Context) error {
	profiles, err := h.profileService.All(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, profiles)
}

// ByHandle godoc
// @Summary Get a profile by handle
// @Tags profile
// @Produce json
// @Param handle path string true "Profile handle"
// @Success 200 {object} model.Profile
// @Failure 404 {object} map[string]string
// @Router /profile/handle/{handle} [get]
func (h *ProfileHandler) ByHandle(c echo.Context) error {
	profile, err := h.profileService.ByHandle(c.Request().Context(), c.Param("handle"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// ByUserID godoc
// @Summary Get a profile by user id
// @Tags profile
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} map[string]string
// @Router /profile/user/{userId} [get]
func (h *ProfileHandler) ByUserID(c echo.Context) error {
	profile, err := h.profileService.ByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// CreateOrUpdate godoc
// @Summary Create or update the authenticated user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.ProfileInput true "Profile data"
// @Success 200 {object} model.Profile
// @Failure 400 {object} map[string]string
// @Router /profile [post]
func (h *ProfileHandler) CreateOrUpdate(c echo.Context) error {
	var in validation.ProfileInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if errs, ok := validation.ValidateProfileInput(in); !ok {
		return c.JSON(http.StatusBadRequest, errs)
	}

	profile, err := h.profileService.CreateOrUpdate(c.Request().Context(), currentUser(c).ID, in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// AddExperience godoc
// @Summary Add an experience entry
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.ExperienceInput true "Experience data"
// @Success 200 {object} model.Profile
// @Failure 400 {object} map[string]string
// @Router /profile/experience [post]
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	var in validation.ExperienceInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if errs, ok := validation.ValidateExperienceInput(in); !ok {
		return c.JSON(http.StatusBadRequest, errs)
	}

	profile, err := h.profileService.AddExperience(c.Request().Context(), currentUser(c).ID, in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteExperience godoc
// @Summary Remove an experience entry
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param expId path string true "Experience ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} map[string]string
// @Router /profile/experience/{expId} [delete]
func (h *ProfileHandler) DeleteExperience(c echo.Context) error {
	profile, err := h.profileService.DeleteExperience(c.Request().Context(), currentUser(c).ID, c.Param("expId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// AddEducation godoc
// @Summary Add an education entry
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.EducationInput true "Education data"
// @Success 200 {object} model.Profile
// @Failure 400 {object} map[string]string
// @Router /profile/education [post]
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	var in validation.EducationInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if errs, ok := validation.ValidateEducationInput(in); !ok {
		return c.JSON(http.StatusBadRequest, errs)
	}

	profile, err := h.profileService.AddEducation(c.Request().Context(), currentUser(c).ID, in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteEducation godoc
// @Summary Remove an education entry
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param eduId path string true "Education ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} map[string]string
// @Router /profile/education/{eduId} [delete]
func (h *ProfileHandler) DeleteEducation(c echo.Context) error {
	profile, err := h.profileService.DeleteEducation(c.Request().Context(), currentUser(c).ID, c.Param("eduId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteAccount godoc
// @Summary Delete the authenticated user's profile and account
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /profile [delete]
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	if err := h.profileService.DeleteAccount(c.Request().Context(), currentUser(c).ID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "User deleted"})
}
