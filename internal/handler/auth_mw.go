package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		h.respondError(c, errNotAuthorized)
		return
	}

	accessToken := strings.TrimPrefix(header, "Bearer ")
	if accessToken == "" {
		h.respondError(c, errNotAuthorized)
		return
	}

	user, err := h.getUserDataFromAccessTokenClaims(c.Request.Context(), accessToken)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Set("user", *user)

	c.Next()
}

func (h *Handler) adminMiddleware(c *gin.Context) {
	user := h.getUser(c)
	if user == nil {
		h.respondError(c, errNotAuthorized)
		return
	}

	if !user.IsAdmin {
		h.respondError(c, errNotAdmin)
		return
	}

	c.Next()
}
