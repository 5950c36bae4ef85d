package handler

import (
	"context"
	"os"

	"github.com/BloggingApp/blog-api/internal/model"
	"github.com/BloggingApp/blog-api/internal/service"
	"github.com/BloggingApp/blog-api/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{viper.GetString("client.origin")},
		AllowMethods: []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/register", h.usersRegister)
			users.POST("/login", h.usersLogin)
			users.POST("/refresh", h.usersRefresh)

			users.GET("", h.usersGetAll)
			users.GET("/profile", h.authMiddleware, h.usersProfile)

			users.PUT("/update-user", h.authMiddleware, h.usersUpdate)
			users.PUT("/update-password", h.authMiddleware, h.usersUpdatePassword)
			users.DELETE("/delete-user", h.authMiddleware, h.usersDelete)

			users.POST("/profile-photo-upload", h.authMiddleware, h.usersProfilePhotoUpload)

			users.GET("/profile-viewers/:id", h.authMiddleware, h.usersViewProfile)
			users.GET("/following-user/:id", h.authMiddleware, h.usersFollow)
			users.GET("/unfollowing-user/:id", h.authMiddleware, h.usersUnfollow)
			users.GET("/block-user/:id", h.authMiddleware, h.usersBlock)
			users.GET("/unblock-user/:id", h.authMiddleware, h.usersUnblock)

			users.PUT("/admin-block-user/:id", h.authMiddleware, h.adminMiddleware, h.usersAdminBlock)
			users.PUT("/admin-unblock-user/:id", h.authMiddleware, h.adminMiddleware, h.usersAdminUnblock)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("", h.authMiddleware, h.postsGetAll)
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.GET("/:id", h.authMiddleware, h.postsGetByID)
			posts.PUT("/update-post/:id", h.authMiddleware, h.postsUpdate)
			posts.DELETE("/delete-post/:id", h.authMiddleware, h.postsDelete)
			posts.GET("/likes-posts/:id", h.authMiddleware, h.postsLike)
			posts.GET("/dislikes-posts/:id", h.authMiddleware, h.postsDislike)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", h.categoriesGetAll)
			categories.GET("/:id", h.categoriesGetByID)
			categories.POST("", h.authMiddleware, h.categoriesCreate)
			categories.PUT("/:id", h.authMiddleware, h.categoriesUpdate)
			categories.DELETE("/:id", h.authMiddleware, h.categoriesDelete)
		}

		comments := v1.Group("/comments")
		{
			comments.POST("/:id", h.authMiddleware, h.commentsCreate)
			comments.PUT("/update-comment/:id", h.authMiddleware, h.commentsUpdate)
			comments.DELETE("/delete-comment/:id", h.authMiddleware, h.commentsDelete)
		}
	}

	return r
}

func (h *Handler) getUserDataFromAccessTokenClaims(ctx context.Context, accessToken string) (*model.User, error) {
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, errNotAuthorized
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}
	id, err := primitive.ObjectIDFromHex(idString)
	if err != nil {
		return nil, errNotAuthorized
	}

	user, err := h.services.User.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (h *Handler) getUser(c *gin.Context) *model.User {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.User)
	if !ok {
		return nil
	}

	return &user
}

func (h *Handler) paramID(c *gin.Context) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return primitive.NilObjectID, errInvalidID
	}
	return id, nil
}
