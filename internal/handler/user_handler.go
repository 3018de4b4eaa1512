package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devconnector/internal/auth"
	"devconnector/internal/errors"
	"devconnector/internal/model"
	"devconnector/internal/service"
	"devconnector/internal/validation"
)

// UserHandler handles registration and authentication endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// TokenResponse carries the bearer-prefixed token returned on login.
type TokenResponse struct {
	Token string `json:"token"`
}

// currentUser returns the user the auth middleware resolved for this request.
func currentUser(c echo.Context) *model.User {
	user, _ := c.Get(auth.ContextUserKey).(*model.User)
	return user
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body validation.RegisterInput true "Registration data"
// @Success 200 {object} model.User
// @Failure 400 {object} map[string]string
// @Router /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var in validation.RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if errs, ok := validation.ValidateRegisterInput(in); !ok {
		return c.JSON(http.StatusBadRequest, errs)
	}

	user, err := h.userService.Register(c.Request().Context(), in.Name, in.Email, in.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}

	return c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary Login and receive a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body validation.LoginInput true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var in validation.LoginInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if errs, ok := validation.ValidateLoginInput(in); !ok {
		return c.JSON(http.StatusBadRequest, errs)
	}

	token, err := h.userService.Login(c.Request().Context(), in.Email, in.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Current godoc
// @Summary Return the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} map[string]string
// @Router /users/current [get]
func (h *UserHandler) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}
