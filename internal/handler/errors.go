package handler

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/BloggingApp/blog-api/internal/dto"
	"github.com/BloggingApp/blog-api/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	errNotAuthorized = errors.New("user is not authorized")
	errNotAdmin      = errors.New("access denied, you are not admin")
	errInvalidID     = errors.New("provided an invalid ID")
)

// respondError is the single place an error becomes an HTTP response.
// Every failure, whatever layer produced it, goes out in the same shape.
func (h *Handler) respondError(c *gin.Context, err error) {
	resp := dto.ErrorResponse{
		Message: err.Error(),
		Status: "failed",
	}
	if gin.IsDebugging() {
		resp.Stack = string(debug.Stack())
	}

	c.AbortWithStatusJSON(statusCodeFor(err), resp)
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errNotAuthorized),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, errNotAdmin),
		errors.Is(err, service.ErrAccountBlocked),
		errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrInvalidPassword):
		return http.StatusForbidden
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyViewed),
		errors.Is(err, service.ErrAlreadyFollowing),
		errors.Is(err, service.ErrAlreadyUnfollowed),
		errors.Is(err, service.ErrAlreadyBlocked),
		errors.Is(err, service.ErrNotBlocked):
		return http.StatusConflict
	case errors.Is(err, service.ErrInternal):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
