package mongodb

import (
	"context"
	"time"

	"github.com/BloggingApp/blog-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Category interface {
	Create(ctx context.Context, category model.Category) (*model.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

type categoryRepo struct {
	coll *mongo.Collection
}

func newCategoryRepo(coll *mongo.Collection) Category {
	return &categoryRepo{
		coll: coll,
	}
}

func (r *categoryRepo) Create(ctx context.Context, category model.Category) (*model.Category, error) {
	category.ID = primitive.NewObjectID()
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, category)
	return &category, err
}

func (r *categoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	var category model.Category
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) FindAll(ctx context.Context) ([]model.Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updated_at"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *categoryRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *categoryRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"user": userID})
	return err
}
