package models

import "errors"

// Sentinel errors surfaced by model methods so controllers can pick the
// right status code without string matching.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrPostNotFound   = errors.New("post not found")
	ErrFollowNotFound = errors.New("follow request not found")

	ErrSelfFollow      = errors.New("cannot follow yourself")
	ErrFollowExists    = errors.New("follow already exists")
	ErrNotFollowTarget = errors.New("only the requested user can act on this follow request")
	ErrAlreadyAccepted = errors.New("follow request already accepted")
	ErrNotPending      = errors.New("follow request is not pending")

	ErrAlreadyLiked = errors.New("double like")
)
