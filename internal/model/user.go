package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin  = "Admin"
	RoleGuest  = "Guest"
	RoleEditor = "Editor"

	PlanFree    = "Free"
	PlanPremium = "Premium"
	PlanPro     = "Pro"

	AwardBronze = "Bronze"
	AwardSilver = "Silver"
	AwardGold   = "Gold"
)

type User struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id"`
	Firstname    string               `json:"firstname" bson:"firstname"`
	Lastname     string               `json:"lastname" bson:"lastname"`
	Email        string               `json:"email" bson:"email"`
	PasswordHash string               `json:"-" bson:"password_hash"`
	ProfilePhoto string               `json:"profile_photo" bson:"profile_photo"`
	IsBlocked    bool                 `json:"is_blocked" bson:"is_blocked"`
	IsAdmin      bool                 `json:"is_admin" bson:"is_admin"`
	Role         string               `json:"role" bson:"role"`
	Plan         string               `json:"plan" bson:"plan"`
	UserAward    string               `json:"user_award" bson:"user_award"`
	Viewers      []primitive.ObjectID `json:"viewers" bson:"viewers"`
	Followers    []primitive.ObjectID `json:"followers" bson:"followers"`
	Following    []primitive.ObjectID `json:"following" bson:"following"`
	Blocked      []primitive.ObjectID `json:"blocked" bson:"blocked"`
	Posts        []primitive.ObjectID `json:"posts" bson:"posts"`
	Comments     []primitive.ObjectID `json:"comments" bson:"comments"`
	CreatedAt    time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at" bson:"updated_at"`
}

// HasBlocked reports whether targetID is in the user's blocked set.
func (u *User) HasBlocked(targetID primitive.ObjectID) bool {
	return ContainsID(u.Blocked, targetID)
}

func (u *User) HasFollower(followerID primitive.ObjectID) bool {
	return ContainsID(u.Followers, followerID)
}

func (u *User) HasViewer(viewerID primitive.ObjectID) bool {
	return ContainsID(u.Viewers, viewerID)
}

func ContainsID(set []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, member := range set {
		if member == id {
			return true
		}
	}
	return false
}
