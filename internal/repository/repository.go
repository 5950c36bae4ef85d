package repository

import (
	"github.com/BloggingApp/blog-api/internal/repository/mongodb"
	"github.com/BloggingApp/blog-api/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository struct {
	Mongo *mongodb.MongoRepository
	Redis *redisrepo.RedisRepository
}

func New(db *mongo.Database, rdb *redis.Client) *Repository {
	return &Repository{
		Mongo: mongodb.New(db),
		Redis: redisrepo.New(rdb),
	}
}
