package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-api/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) categoriesGetAll(c *gin.Context) {
	categories, err := h.services.Category.FindAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count": len(categories),
		"categories": categories,
	})
}

func (h *Handler) categoriesGetByID(c *gin.Context) {
	id, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	category, err := h.services.Category.FindByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"category": category,
	})
}

func (h *Handler) categoriesCreate(c *gin.Context) {
	user := h.getUser(c)

	var input dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, err)
		return
	}

	category, err := h.services.Category.Create(c.Request.Context(), user.ID, input.Title)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "category created successfully",
		"category": category,
	})
}

func (h *Handler) categoriesUpdate(c *gin.Context) {
	user := h.getUser(c)

	id, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var input dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, err)
		return
	}

	category, err := h.services.Category.Update(c.Request.Context(), user.ID, id, input.Title)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "category updated successfully",
		"category": category,
	})
}

func (h *Handler) categoriesDelete(c *gin.Context) {
	user := h.getUser(c)

	id, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	category, err := h.services.Category.Delete(c.Request.Context(), user.ID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "category deleted successfully",
		"category": category,
	})
}
