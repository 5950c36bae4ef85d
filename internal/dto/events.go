package dto

// FollowEvent is published to the follows queue when a follow edge is
// created; the notification service consumes it elsewhere.
type FollowEvent struct {
	FollowerID string `json:"follower_id"`
	UserID     string `json:"user_id"`
}

type NewPostEvent struct {
	PostID   string `json:"post_id"`
	AuthorID string `json:"author_id"`
	Title    string `json:"title"`
}
