package main

import (
	"context"
	"os"
	"time"

	"github.com/BloggingApp/blog-api/internal/handler"
	"github.com/BloggingApp/blog-api/internal/rabbitmq"
	"github.com/BloggingApp/blog-api/internal/repository"
	"github.com/BloggingApp/blog-api/internal/service"
	"github.com/BloggingApp/blog-api/internal/storage"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := initEnv(); err != nil {
		logger.Sugar().Fatalf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Fatalf("failed to initialize yaml config: %s", err.Error())
	}

	ctx := context.Background()

	db, err := connectMongo(ctx)
	if err != nil {
		logger.Sugar().Fatalf("failed to connect to mongo: %s", err.Error())
	}
	defer db.Client().Disconnect(ctx)

	rdb := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Sugar().Fatalf("failed to connect to redis: %s", err.Error())
	}
	defer rdb.Close()

	mq, err := rabbitmq.Connect(os.Getenv("RABBITMQ_URL"))
	if err != nil {
		logger.Sugar().Fatalf("failed to connect to rabbitmq: %s", err.Error())
	}
	defer mq.Close()

	uploader, err := storage.NewCloudinary(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		logger.Sugar().Fatalf("failed to initialize cloudinary: %s", err.Error())
	}

	repo := repository.New(db, rdb)
	services := service.New(logger, repo, mq, uploader)
	handlers := handler.New(services)

	addr := ":" + viper.GetString("port")
	logger.Sugar().Infof("starting server on %s", addr)
	if err := handlers.InitRoutes().Run(addr); err != nil {
		logger.Sugar().Fatalf("failed to run server: %s", err.Error())
	}
}

func initEnv() error {
	return godotenv.Load(".env")
}

func initConfig() error {
	viper.AddConfigPath("./")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}

func connectMongo(ctx context.Context) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(os.Getenv("MONGO_URL")))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, err
	}

	return client.Database(viper.GetString("mongo.database")), nil
}
