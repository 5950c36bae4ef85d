package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-api/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsGetAll(c *gin.Context) {
	user := h.getUser(c)

	posts, err := h.services.Post.FindAllFor(c.Request.Context(), user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count": len(posts),
		"posts": posts,
	})
}

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getUser(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBind(&input); err != nil {
		h.respondError(c, err)
		return
	}

	// The image is optional; a missing file is not an error.
	fileHeader, err := c.FormFile("image")
	if err != nil {
		fileHeader = nil
	}

	post, err := h.services.Post.Create(c.Request.Context(), user.ID, input, fileHeader)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "post created successfully",
		"post": post,
	})
}

func (h *Handler) postsGetByID(c *gin.Context) {
	user := h.getUser(c)

	postID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	post, err := h.services.Post.GetByID(c.Request.Context(), user.ID, postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post": post,
	})
}

func (h *Handler) postsUpdate(c *gin.Context) {
	user := h.getUser(c)

	postID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var input dto.UpdatePostRequest
	if err := c.ShouldBind(&input); err != nil {
		h.respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		fileHeader = nil
	}

	post, err := h.services.Post.Update(c.Request.Context(), user.ID, postID, input, fileHeader)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "post updated successfully",
		"post": post,
	})
}

func (h *Handler) postsDelete(c *gin.Context) {
	user := h.getUser(c)

	postID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), user.ID, postID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "post deleted successfully"))
}

func (h *Handler) postsLike(c *gin.Context) {
	user := h.getUser(c)

	postID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	post, err := h.services.Post.ToggleLike(c.Request.Context(), user.ID, postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post": post,
	})
}

func (h *Handler) postsDislike(c *gin.Context) {
	user := h.getUser(c)

	postID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	post, err := h.services.Post.ToggleDislike(c.Request.Context(), user.ID, postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post": post,
	})
}
