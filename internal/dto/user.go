package dto

import (
	"fmt"

	"github.com/BloggingApp/blog-api/internal/model"
)

// UserProfile is a user document plus the derived display fields the old
// schema exposed as virtuals. Derived fields are computed once per fetch
// and never persisted.
type UserProfile struct {
	model.User

	Fullname       string `json:"fullname"`
	Initials       string `json:"initials"`
	PostCount      int    `json:"post_count"`
	ViewerCount    int    `json:"viewer_count"`
	FollowerCount  int    `json:"follower_count"`
	FollowingCount int    `json:"following_count"`
	BlockedCount   int    `json:"blocked_count"`
	LastPostDate   string `json:"last_post_date"`
	IsInactive     bool   `json:"is_inactive"`
	LastActive     string `json:"last_active"`
}

func NewUserProfile(user model.User) *UserProfile {
	profile := UserProfile{
		User:           user,
		Fullname:       fmt.Sprintf("%s %s", user.Firstname, user.Lastname),
		PostCount:      len(user.Posts),
		ViewerCount:    len(user.Viewers),
		FollowerCount:  len(user.Followers),
		FollowingCount: len(user.Following),
		BlockedCount:   len(user.Blocked),
	}
	if user.Firstname != "" && user.Lastname != "" {
		profile.Initials = fmt.Sprintf("%c%c", user.Firstname[0], user.Lastname[0])
	}
	return &profile
}
