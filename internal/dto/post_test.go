package dto

import (
	"testing"
	"time"

	"github.com/BloggingApp/blog-api/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDaysAgo(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		created time.Time
		want    string
	}{
		{"just now", now.Add(-time.Minute), "Today"},
		{"earlier today", now.Add(-10 * time.Hour), "Today"},
		{"yesterday", now.Add(-36 * time.Hour), "Yesterday"},
		{"three days", now.Add(-3 * 24 * time.Hour), "3 Days Ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysAgo(tt.created, now); got != tt.want {
				t.Fatalf("daysAgo = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewPostViewCounters(t *testing.T) {
	post := model.Post{
		ID: primitive.NewObjectID(),
		Title: "counting",
		NumViews: []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()},
		Likes: []primitive.ObjectID{primitive.NewObjectID()},
		DisLikes: []primitive.ObjectID{},
		CreatedAt: time.Now(),
	}

	view := NewPostView(post)

	if view.ViewsCount != 2 {
		t.Fatalf("expected 2 views, got %d", view.ViewsCount)
	}
	if view.LikesCount != 1 {
		t.Fatalf("expected 1 like, got %d", view.LikesCount)
	}
	if view.DisLikesCount != 0 {
		t.Fatalf("expected 0 dislikes, got %d", view.DisLikesCount)
	}
	if view.DaysAgo != "Today" {
		t.Fatalf("expected DaysAgo %q, got %q", "Today", view.DaysAgo)
	}
}
