package service

import (
	"context"

	"github.com/BloggingApp/blog-api/internal/model"
	"github.com/BloggingApp/blog-api/internal/repository"
	"github.com/BloggingApp/blog-api/internal/repository/redisrepo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo: repo,
	}
}

// Create attaches the comment to both the post and the commenting user.
func (s *commentService) Create(ctx context.Context, userID, postID primitive.ObjectID, description string) (*model.Comment, error) {
	post, err := s.repo.Mongo.Post.FindByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to get post(%s) from mongo: %s", postID.Hex(), err.Error())
		return nil, ErrInternal
	}

	comment, err := s.repo.Mongo.Comment.Create(ctx, model.Comment{
		Post: post.ID,
		User: userID,
		Description: description,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create comment in mongo: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Mongo.Post.AddToSet(ctx, post.ID, "comments", comment.ID); err != nil {
		s.logger.Sugar().Errorf("failed to add comment(%s) to post(%s): %s", comment.ID.Hex(), post.ID.Hex(), err.Error())
		return nil, ErrInternal
	}
	if err := s.repo.Mongo.User.AddToSet(ctx, userID, "comments", comment.ID); err != nil {
		s.logger.Sugar().Errorf("failed to add comment(%s) to user(%s): %s", comment.ID.Hex(), userID.Hex(), err.Error())
		return nil, ErrInternal
	}
	s.invalidateUserCache(ctx, userID)

	return comment, nil
}

func (s *commentService) Update(ctx context.Context, requesterID, id primitive.ObjectID, description string) (*model.Comment, error) {
	comment, err := s.findComment(ctx, id)
	if err != nil {
		return nil, err
	}

	if comment.User != requesterID {
		return nil, ErrNotOwner
	}

	if err := s.repo.Mongo.Comment.UpdateByID(ctx, id, bson.M{"description": description}); err != nil {
		s.logger.Sugar().Errorf("failed to update comment(%s) in mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}

	comment.Description = description
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, requesterID, id primitive.ObjectID) (*model.Comment, error) {
	comment, err := s.findComment(ctx, id)
	if err != nil {
		return nil, err
	}

	if comment.User != requesterID {
		return nil, ErrNotOwner
	}

	if err := s.repo.Mongo.Comment.DeleteByID(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete comment(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}
	if err := s.repo.Mongo.Post.PullFromSet(ctx, comment.Post, "comments", id); err != nil {
		s.logger.Sugar().Errorf("failed to pull comment(%s) from post(%s): %s", id.Hex(), comment.Post.Hex(), err.Error())
		return nil, ErrInternal
	}
	if err := s.repo.Mongo.User.PullFromSet(ctx, comment.User, "comments", id); err != nil {
		s.logger.Sugar().Errorf("failed to pull comment(%s) from user(%s): %s", id.Hex(), comment.User.Hex(), err.Error())
		return nil, ErrInternal
	}
	s.invalidateUserCache(ctx, comment.User)

	return comment, nil
}

func (s *commentService) findComment(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	comment, err := s.repo.Mongo.Comment.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCommentNotFound
		}

		s.logger.Sugar().Errorf("failed to get comment(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}
	return comment, nil
}

func (s *commentService) invalidateUserCache(ctx context.Context, id primitive.ObjectID) {
	if err := s.repo.Redis.Del(ctx, redisrepo.UserKey(id.Hex())).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate user cache key(%s): %s", id.Hex(), err.Error())
	}
}
