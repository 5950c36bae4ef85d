package rabbitmq

const (
	FOLLOWS_QUEUE   = "follows"
	NEW_POSTS_QUEUE = "posts.new"
)
