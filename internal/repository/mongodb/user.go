package mongodb

import (
	"context"
	"time"

	"github.com/BloggingApp/blog-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type User interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	AddToSet(ctx context.Context, id primitive.ObjectID, field string, member primitive.ObjectID) error
	PullFromSet(ctx context.Context, id primitive.ObjectID, field string, member primitive.ObjectID) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type userRepo struct {
	coll *mongo.Collection
}

func newUserRepo(coll *mongo.Collection) User {
	return &userRepo{
		coll: coll,
	}
}

func (r *userRepo) Create(ctx context.Context, user model.User) (*model.User, error) {
	user.ID = primitive.NewObjectID()
	user.Role = model.RoleGuest
	user.Plan = model.PlanFree
	user.UserAward = model.AwardBronze
	user.Viewers = []primitive.ObjectID{}
	user.Followers = []primitive.ObjectID{}
	user.Following = []primitive.ObjectID{}
	user.Blocked = []primitive.ObjectID{}
	user.Posts = []primitive.ObjectID{}
	user.Comments = []primitive.ObjectID{}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, user)
	return &user, err
}

func (r *userRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindAll(ctx context.Context) ([]model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
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

// AddToSet inserts member into the named id set iff it is absent.
// The update is atomic on the document, so concurrent adds cannot
// lose each other or duplicate the member.
func (r *userRepo) AddToSet(ctx context.Context, id primitive.ObjectID, field string, member primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{field: member}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *userRepo) PullFromSet(ctx context.Context, id primitive.ObjectID, field string, member primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{field: member}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *userRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
