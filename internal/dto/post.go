package dto

import (
	"fmt"
	"time"

	"github.com/BloggingApp/blog-api/internal/model"
)

// PostView is a post document plus its derived counters.
type PostView struct {
	model.Post

	ViewsCount    int    `json:"views_count"`
	LikesCount    int    `json:"likes_count"`
	DisLikesCount int    `json:"dis_likes_count"`
	DaysAgo       string `json:"days_ago"`
}

func NewPostView(post model.Post) *PostView {
	return &PostView{
		Post:          post,
		ViewsCount:    len(post.NumViews),
		LikesCount:    len(post.Likes),
		DisLikesCount: len(post.DisLikes),
		DaysAgo:       daysAgo(post.CreatedAt, time.Now()),
	}
}

func NewPostViews(posts []model.Post) []*PostView {
	views := make([]*PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, NewPostView(post))
	}
	return views
}

func daysAgo(createdAt time.Time, now time.Time) string {
	days := int(now.Sub(createdAt).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d Days Ago", days)
	}
}
