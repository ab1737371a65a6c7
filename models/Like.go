package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Like is a (user, post) edge. The composite unique index keeps the
// pair unique even when two duplicate requests race past the existence
// check.
type Like struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_unique" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_unique" json:"post_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (l *Like) SaveLike(db *gorm.DB) (*Like, error) {
	// Check if the auth user has liked this post before:
	err := db.Where("post_id = ? AND user_id = ?", l.PostID, l.UserID).Take(&l).Error
	if err == nil {
		return nil, ErrAlreadyLiked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := db.Create(&l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Like) GetLikesInfo(db *gorm.DB, pid uint) (*[]Like, error) {
	likes := []Like{}
	err := db.Where("post_id = ?", pid).Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return &likes, nil
}
