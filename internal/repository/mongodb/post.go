package mongodb

import (
	"context"
	"time"

	"github.com/BloggingApp/blog-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	FindAll(ctx context.Context) ([]model.Post, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Post, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	AddToSet(ctx context.Context, id primitive.ObjectID, field string, member primitive.ObjectID) error
	PullFromSet(ctx context.Context, id primitive.ObjectID, field string, member primitive.ObjectID) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

type postRepo struct {
	coll *mongo.Collection
}

func newPostRepo(coll *mongo.Collection) Post {
	return &postRepo{
		coll: coll,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	post.ID = primitive.NewObjectID()
	post.NumViews = []primitive.ObjectID{}
	post.Likes = []primitive.ObjectID{}
	post.DisLikes = []primitive.ObjectID{}
	post.Comments = []primitive.ObjectID{}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, post)
	return &post, err
}

func (r *postRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepo) FindAll(ctx context.Context) ([]model.Post, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Post, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
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

func (r *postRepo) AddToSet(ctx context.Context, id primitive.ObjectID, field string, member primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{field: member}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *postRepo) PullFromSet(ctx context.Context, id primitive.ObjectID, field string, member primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{field: member}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *postRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *postRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"user": userID})
	return err
}
