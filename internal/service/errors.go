package service

import "errors"

var (
	ErrInternal = errors.New("internal server error")

	ErrUserNotFound     = errors.New("user not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCommentNotFound  = errors.New("comment not found")

	ErrEmailTaken         = errors.New("user/email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid/expired token, please login again")
	ErrInvalidPassword    = errors.New("please enter a valid password")

	ErrAccountBlocked = errors.New("action not allowed, your account is blocked")
	ErrNotOwner       = errors.New("access denied, you do not own this resource")

	ErrAlreadyViewed     = errors.New("you have already viewed this profile")
	ErrAlreadyFollowing  = errors.New("you have already followed this user")
	ErrAlreadyUnfollowed = errors.New("you have already unfollowed this user")
	ErrAlreadyBlocked    = errors.New("you have already blocked this user")
	ErrNotBlocked        = errors.New("you have not blocked this user")
)
