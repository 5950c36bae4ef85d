package service

import (
	"context"
	"time"

	"github.com/BloggingApp/blog-api/internal/model"
	"github.com/BloggingApp/blog-api/internal/repository"
	"github.com/BloggingApp/blog-api/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const categoriesCacheTTL = time.Minute * 10

type categoryService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCategoryService(logger *zap.Logger, repo *repository.Repository) Category {
	return &categoryService{
		logger: logger,
		repo: repo,
	}
}

func (s *categoryService) Create(ctx context.Context, userID primitive.ObjectID, title string) (*model.Category, error) {
	category, err := s.repo.Mongo.Category.Create(ctx, model.Category{
		Title: title,
		User: userID,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create category in mongo: %s", err.Error())
		return nil, ErrInternal
	}
	s.invalidateListCache(ctx)

	return category, nil
}

func (s *categoryService) FindAll(ctx context.Context) ([]model.Category, error) {
	cached, err := redisrepo.GetMany[model.Category](s.repo.Redis.Default, ctx, redisrepo.CategoriesKey())
	if err == nil && cached != nil {
		categories := make([]model.Category, 0, len(cached))
		for _, category := range cached {
			categories = append(categories, *category)
		}
		return categories, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get categories from redis: %s", err.Error())
	}

	categories, err := s.repo.Mongo.Category.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get categories from mongo: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.SetJSON(ctx, redisrepo.CategoriesKey(), categories, categoriesCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to cache categories in redis: %s", err.Error())
	}

	return categories, nil
}

func (s *categoryService) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	category, err := s.repo.Mongo.Category.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCategoryNotFound
		}

		s.logger.Sugar().Errorf("failed to get category(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, requesterID, id primitive.ObjectID, title string) (*model.Category, error) {
	category, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if category.User != requesterID {
		return nil, ErrNotOwner
	}

	if err := s.repo.Mongo.Category.UpdateByID(ctx, id, bson.M{"title": title}); err != nil {
		s.logger.Sugar().Errorf("failed to update category(%s) in mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}
	s.invalidateListCache(ctx)

	category.Title = title
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, requesterID, id primitive.ObjectID) (*model.Category, error) {
	category, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if category.User != requesterID {
		return nil, ErrNotOwner
	}

	if err := s.repo.Mongo.Category.DeleteByID(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete category(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}
	s.invalidateListCache(ctx)

	return category, nil
}

func (s *categoryService) invalidateListCache(ctx context.Context) {
	if err := s.repo.Redis.Del(ctx, redisrepo.CategoriesKey()).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate categories cache: %s", err.Error())
	}
}
