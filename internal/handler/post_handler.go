package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devconnector/internal/errors"
	"devconnector/internal/service"
	"devconnector/internal/validation"
)

// PostHandler handles feed endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// All godoc
// @Summary List all posts, newest first
// @Tags posts
// @Produce json
// @Success 200 {array} model.Post
// @Router /posts [get]
func (h *PostHandler) All(c echo.Context) error {
	posts, err := h.postService.All(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, posts)
}

// ByID godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} map[string]string
// @Router /posts/{id} [get]
func (h *PostHandler) ByID(c echo.Context) error {
	post, err := h.postService.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, post)
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.PostInput true "Post data"
// @Success 200 {object} model.Post
// @Failure 400 {object} map[string]string
// @Router /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var in validation.PostInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if errs, ok := validation.ValidatePostInput(in); !ok {
		return c.JSON(http.StatusBadRequest, errs)
	}

	post, err := h.postService.Create(c.Request().Context(), currentUser(c).ID, in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete an owned post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.postService.Delete(c.Request().Context(), currentUser(c).ID, c.Param("id")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"success": "Post deleted"})
}

// Like godoc
// @Summary Like a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/like/{id} [post]
func (h *PostHandler) Like(c echo.Context) error {
	post, err := h.postService.Like(c.Request().Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, post)
}

// Unlike godoc
// @Summary Remove a like from a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/unlike/{id} [post]
func (h *PostHandler) Unlike(c echo.Context) error {
	post, err := h.postService.Unlike(c.Request().Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, post)
}

// Comment godoc
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body validation.PostInput true "Comment data"
// @Success 200 {object} model.Post
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/comment/{id} [post]
func (h *PostHandler) Comment(c echo.Context) error {
	var in validation.PostInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if errs, ok := validation.ValidatePostInput(in); !ok {
		return c.JSON(http.StatusBadRequest, errs)
	}

	post, err := h.postService.Comment(c.Request().Context(), currentUser(c).ID, c.Param("id"), in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, post)
}

// DeleteComment godoc
// @Summary Remove a comment from a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} map[string]string
// @Router /posts/comment/{id}/{commentId} [delete]
func (h *PostHandler) DeleteComment(c echo.Context) error {
	post, err := h.postService.DeleteComment(c.Request().Context(), c.Param("id"), c.Param("commentId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, post)
}
