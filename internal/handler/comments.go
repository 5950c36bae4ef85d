package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-api/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsCreate(c *gin.Context) {
	user := h.getUser(c)

	postID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, err)
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), user.ID, postID, input.Description)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "comment added successfully",
		"comment": comment,
	})
}

func (h *Handler) commentsUpdate(c *gin.Context) {
	user := h.getUser(c)

	id, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var input dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, err)
		return
	}

	comment, err := h.services.Comment.Update(c.Request.Context(), user.ID, id, input.Description)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "comment updated successfully",
		"comment": comment,
	})
}

func (h *Handler) commentsDelete(c *gin.Context) {
	user := h.getUser(c)

	id, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	comment, err := h.services.Comment.Delete(c.Request.Context(), user.ID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "comment deleted successfully",
		"comment": comment,
	})
}
