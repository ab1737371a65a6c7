package controllers

import "time"

// Request bodies. Every endpoint binds an explicit schema; nothing is
// read out of loose maps.

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PostCreateRequest struct {
	Content string `json:"content"`
}

type CommentCreateRequest struct {
	Content string `json:"content"`
}

type ProfileUpdateRequest struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Response shapes.

type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// FollowUserDTO is the public slice of a profile shown in follower,
// following, pending, and suggestion lists.
type FollowUserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type FollowDTO struct {
	ID         uint      `json:"id"`
	FollowerID uint      `json:"follower_id"`
	FollowedID uint      `json:"followed_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowEdgeDTO is a follower/following/pending list entry: the edge
// plus the counterpart's public profile.
type FollowEdgeDTO struct {
	FollowID  uint          `json:"follow_id"`
	User      FollowUserDTO `json:"user"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedPostDTO is the annotated post shape shared by the global,
// personal, and per-user feeds.
type FeedPostDTO struct {
	ID         uint         `json:"id"`
	Content    string       `json:"content"`
	Author     string       `json:"author"`
	LikesCount int          `json:"likesCount"`
	Comments   []CommentDTO `json:"comments"`
	CreatedAt  time.Time    `json:"createdAt"`
}

type ProfileDTO struct {
	ID       uint          `json:"id"`
	Username string        `json:"username"`
	Avatar   string        `json:"avatar"`
	Posts    []FeedPostDTO `json:"posts"`
}
