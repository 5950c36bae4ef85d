package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id"`
	Title       string               `json:"title" bson:"title"`
	Description string               `json:"description" bson:"description"`
	Category    primitive.ObjectID   `json:"category" bson:"category"`
	User        primitive.ObjectID   `json:"user" bson:"user"`
	Photo       string               `json:"photo" bson:"photo"`
	NumViews    []primitive.ObjectID `json:"num_views" bson:"num_views"`
	Likes       []primitive.ObjectID `json:"likes" bson:"likes"`
	DisLikes    []primitive.ObjectID `json:"dis_likes" bson:"dis_likes"`
	Comments    []primitive.ObjectID `json:"comments" bson:"comments"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" bson:"updated_at"`
}

func (p *Post) ViewedBy(userID primitive.ObjectID) bool {
	return ContainsID(p.NumViews, userID)
}

func (p *Post) LikedBy(userID primitive.ObjectID) bool {
	return ContainsID(p.Likes, userID)
}

func (p *Post) DislikedBy(userID primitive.ObjectID) bool {
	return ContainsID(p.DisLikes, userID)
}
