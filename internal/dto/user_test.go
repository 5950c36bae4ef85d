package dto

import (
	"testing"

	"github.com/BloggingApp/blog-api/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewUserProfile(t *testing.T) {
	user := model.User{
		Firstname: "Ada",
		Lastname: "Lovelace",
		Viewers: []primitive.ObjectID{primitive.NewObjectID()},
		Followers: []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()},
		Following: []primitive.ObjectID{},
		Blocked: []primitive.ObjectID{},
		Posts: []primitive.ObjectID{primitive.NewObjectID()},
	}

	profile := NewUserProfile(user)

	if profile.Fullname != "Ada Lovelace" {
		t.Fatalf("expected fullname %q, got %q", "Ada Lovelace", profile.Fullname)
	}
	if profile.Initials != "AL" {
		t.Fatalf("expected initials %q, got %q", "AL", profile.Initials)
	}
	if profile.PostCount != 1 || profile.ViewerCount != 1 || profile.FollowerCount != 2 {
		t.Fatalf("unexpected counters: posts=%d viewers=%d followers=%d",
			profile.PostCount, profile.ViewerCount, profile.FollowerCount)
	}
}

func TestNewUserProfileNoNames(t *testing.T) {
	profile := NewUserProfile(model.User{Firstname: "Ada"})
	if profile.Initials != "" {
		t.Fatalf("expected empty initials without both names, got %q", profile.Initials)
	}
}
