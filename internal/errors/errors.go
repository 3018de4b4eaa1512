package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("Email already exists")
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("Authentication failed")
	// ErrProfileNotFound is returned when no profile exists for a lookup.
	ErrProfileNotFound = errors.New("There is no profile for this user")
	// ErrHandleTaken is returned when a profile handle is already in use.
	ErrHandleTaken = errors.New("That handle already exists")
	// ErrExperienceNotFound is returned when removing an experience entry by an unknown id.
	ErrExperienceNotFound = errors.New("Experience entry does not exist")
	// ErrEducationNotFound is returned when removing an education entry by an unknown id.
	ErrEducationNotFound = errors.New("Education entry does not exist")
	// ErrPostNotFound is returned when a post lookup fails.
	ErrPostNotFound = errors.New("Post not found")
	// ErrNotAuthorized is returned when a user acts on a post they do not own.
	ErrNotAuthorized = errors.New("User not authorized")
	// ErrAlreadyLiked is returned when a user likes a post twice.
	ErrAlreadyLiked = errors.New("User already liked this post")
	// ErrNotLiked is returned when unliking a post without a prior like.
	ErrNotLiked = errors.New("You have not yet liked this post")
	// ErrCommentNotFound is returned when removing a comment by an unknown id.
	ErrCommentNotFound = errors.New("Comment does not exist")
)

// HTTPError is a field-scoped HTTP error. The response body is a single-entry
// map of field name to message, matching the API's validation error shape.
type HTTPError struct {
	StatusCode int
	Field      string
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error scoped to a field.
func NewHTTPError(statusCode int, field, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Field:      field,
		Message:    message,
	}
}

// ToResponse converts an HTTPError to its response body.
func (e *HTTPError) ToResponse() map[string]string {
	return map[string]string{e.Field: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrEmailTaken:
		return NewHTTPError(http.StatusBadRequest, "email", err.Error())
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusBadRequest, "auth", err.Error())
	case ErrProfileNotFound:
		return NewHTTPError(http.StatusNotFound, "noprofile", err.Error())
	case ErrHandleTaken:
		return NewHTTPError(http.StatusBadRequest, "handle", err.Error())
	case ErrExperienceNotFound:
		return NewHTTPError(http.StatusNotFound, "experience", err.Error())
	case ErrEducationNotFound:
		return NewHTTPError(http.StatusNotFound, "education", err.Error())
	case ErrPostNotFound:
		return NewHTTPError(http.StatusNotFound, "post", err.Error())
	case ErrNotAuthorized:
		return NewHTTPError(http.StatusUnauthorized, "authorization", err.Error())
	case ErrAlreadyLiked, ErrNotLiked:
		return NewHTTPError(http.StatusBadRequest, "like", err.Error())
	case ErrCommentNotFound:
		return NewHTTPError(http.StatusNotFound, "comment", err.Error())
	default:
		return NewHTTPError(http.StatusBadRequest, "error", err.Error())
	}
}
