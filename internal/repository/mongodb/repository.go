package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	usersCollection      = "users"
	postsCollection      = "posts"
	categoriesCollection = "categories"
	commentsCollection   = "comments"
)

type MongoRepository struct {
	User     User
	Post     Post
	Category Category
	Comment  Comment
}

func New(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		User:     newUserRepo(db.Collection(usersCollection)),
		Post:     newPostRepo(db.Collection(postsCollection)),
		Category: newCategoryRepo(db.Collection(categoriesCollection)),
		Comment:  newCommentRepo(db.Collection(commentsCollection)),
	}
}
