package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-api/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) usersRegister(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.services.User.Register(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "user registered successfully",
		"user": user,
	})
}

func (h *Handler) usersLogin(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, err)
		return
	}

	user, jwtPair, err := h.services.User.Login(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "login successfully",
		Data: dto.AuthData{
			Firstname: user.Firstname,
			Lastname: user.Lastname,
			Email: user.Email,
			IsAdmin: user.IsAdmin,
			AccessToken: jwtPair.AccessToken,
			RefreshToken: jwtPair.RefreshToken,
		},
	})
}

func (h *Handler) usersRefresh(c *gin.Context) {
	var input dto.RefreshRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, err)
		return
	}

	jwtPair, err := h.services.User.RefreshTokens(c.Request.Context(), input.RefreshToken)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		Success: true,
		AccessToken: jwtPair.AccessToken,
		RefreshToken: jwtPair.RefreshToken,
	})
}

func (h *Handler) usersGetAll(c *gin.Context) {
	users, err := h.services.User.FindAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count": len(users),
		"users": users,
	})
}

func (h *Handler) usersProfile(c *gin.Context) {
	user := h.getUser(c)

	profile, err := h.services.User.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": profile,
	})
}

func (h *Handler) usersUpdate(c *gin.Context) {
	user := h.getUser(c)

	var input dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, err)
		return
	}

	updated, err := h.services.User.Update(c.Request.Context(), user.ID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "updated successfully",
		"user": updated,
	})
}

func (h *Handler) usersUpdatePassword(c *gin.Context) {
	user := h.getUser(c)

	var input dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.services.User.UpdatePassword(c.Request.Context(), user.ID, input.Password); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "password updated successfully"))
}

func (h *Handler) usersDelete(c *gin.Context) {
	user := h.getUser(c)

	deleted, err := h.services.User.Delete(c.Request.Context(), user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "user " + deleted.Firstname + " " + deleted.Lastname + " account deleted",
	})
}

func (h *Handler) usersProfilePhotoUpload(c *gin.Context) {
	user := h.getUser(c)

	fileHeader, err := c.FormFile("profile")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.services.User.SetProfilePhoto(c.Request.Context(), user.ID, fileHeader); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "profile photo updated successfully"))
}

func (h *Handler) usersViewProfile(c *gin.Context) {
	viewer := h.getUser(c)

	targetID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.services.User.ViewProfile(c.Request.Context(), viewer.ID, targetID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "you have successfully viewed this profile"))
}

func (h *Handler) usersFollow(c *gin.Context) {
	follower := h.getUser(c)

	targetID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.services.User.Follow(c.Request.Context(), follower.ID, targetID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "you are now following this user"))
}

func (h *Handler) usersUnfollow(c *gin.Context) {
	follower := h.getUser(c)

	targetID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.services.User.Unfollow(c.Request.Context(), follower.ID, targetID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "you have unfollowed this user"))
}

func (h *Handler) usersBlock(c *gin.Context) {
	blocker := h.getUser(c)

	targetID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.services.User.Block(c.Request.Context(), blocker.ID, targetID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "you have blocked this user"))
}

func (h *Handler) usersUnblock(c *gin.Context) {
	blocker := h.getUser(c)

	targetID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.services.User.Unblock(c.Request.Context(), blocker.ID, targetID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "you have unblocked this user"))
}

func (h *Handler) usersAdminBlock(c *gin.Context) {
	targetID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.services.User.SetBlockedByAdmin(c.Request.Context(), targetID, true); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "admin has blocked this user"))
}

func (h *Handler) usersAdminUnblock(c *gin.Context) {
	targetID, err := h.paramID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.services.User.SetBlockedByAdmin(c.Request.Context(), targetID, false); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "admin has unblocked this user"))
}
