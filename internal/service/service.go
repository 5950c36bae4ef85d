package service

import (
	"context"
	"mime/multipart"

	"github.com/BloggingApp/blog-api/internal/dto"
	"github.com/BloggingApp/blog-api/internal/model"
	"github.com/BloggingApp/blog-api/internal/repository"
	"github.com/BloggingApp/blog-api/internal/storage"
	"github.com/BloggingApp/blog-api/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Publisher is the slice of rabbitmq.MQConn the services need.
type Publisher interface {
	Publish(queue string, body []byte) error
}

type User interface {
	Register(ctx context.Context, input dto.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, input dto.LoginRequest) (*model.User, *utils.JWTPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*utils.JWTPair, error)
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetProfile(ctx context.Context, id primitive.ObjectID) (*dto.UserProfile, error)
	Update(ctx context.Context, id primitive.ObjectID, input dto.UpdateUserRequest) (*model.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, password string) error
	Delete(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	SetProfilePhoto(ctx context.Context, id primitive.ObjectID, fileHeader *multipart.FileHeader) error
	ViewProfile(ctx context.Context, viewerID, targetID primitive.ObjectID) error
	Follow(ctx context.Context, followerID, targetID primitive.ObjectID) error
	Unfollow(ctx context.Context, followerID, targetID primitive.ObjectID) error
	Block(ctx context.Context, blockerID, targetID primitive.ObjectID) error
	Unblock(ctx context.Context, blockerID, targetID primitive.ObjectID) error
	SetBlockedByAdmin(ctx context.Context, id primitive.ObjectID, blocked bool) error
}

type Post interface {
	Create(ctx context.Context, authorID primitive.ObjectID, input dto.CreatePostRequest, fileHeader *multipart.FileHeader) (*model.Post, error)
	FindAllFor(ctx context.Context, requesterID primitive.ObjectID) ([]*dto.PostView, error)
	GetByID(ctx context.Context, viewerID, postID primitive.ObjectID) (*dto.PostView, error)
	Update(ctx context.Context, requesterID, postID primitive.ObjectID, input dto.UpdatePostRequest, fileHeader *multipart.FileHeader) (*dto.PostView, error)
	Delete(ctx context.Context, requesterID, postID primitive.ObjectID) error
	ToggleLike(ctx context.Context, userID, postID primitive.ObjectID) (*dto.PostView, error)
	ToggleDislike(ctx context.Context, userID, postID primitive.ObjectID) (*dto.PostView, error)
}

type Category interface {
	Create(ctx context.Context, userID primitive.ObjectID, title string) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	Update(ctx context.Context, requesterID, id primitive.ObjectID, title string) (*model.Category, error)
	Delete(ctx context.Context, requesterID, id primitive.ObjectID) (*model.Category, error)
}

type Comment interface {
	Create(ctx context.Context, userID, postID primitive.ObjectID, description string) (*model.Comment, error)
	Update(ctx context.Context, requesterID, id primitive.ObjectID, description string) (*model.Comment, error)
	Delete(ctx context.Context, requesterID, id primitive.ObjectID) (*model.Comment, error)
}

type Service struct {
	User     User
	Post     Post
	Category Category
	Comment  Comment
}

func New(logger *zap.Logger, repo *repository.Repository, mq Publisher, uploader storage.Uploader) *Service {
	return &Service{
		User:     newUserService(logger, repo, mq, uploader),
		Post:     newPostService(logger, repo, mq, uploader),
		Category: newCategoryService(logger, repo),
		Comment:  newCommentService(logger, repo),
	}
}
