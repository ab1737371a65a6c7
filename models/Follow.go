package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	FollowStatusPending  = "pending"
	FollowStatusAccepted = "accepted"
)

// Follow is a directed edge between two users. An edge is created in
// pending status by the follower and only becomes accepted when the
// followed user approves it. The ordered (follower, followed) pair is
// unique, so a pair can hold at most one edge per direction.
type Follow struct {
	ID         uint      `gorm:"primary_key;autoIncrement" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follows_unique" json:"follower_id"`
	FollowedID uint      `gorm:"not null;index;uniqueIndex:idx_follows_unique" json:"followed_id"`
	Status     string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Follower   User      `gorm:"foreignKey:FollowerID" json:"follower"`
	Followed   User      `gorm:"foreignKey:FollowedID" json:"followed"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// FollowCounts holds accepted-edge counts for one user.
type FollowCounts struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// RequestFollow creates a pending edge follower -> followed. Any
// existing edge for the ordered pair, whatever its status, blocks a
// new request; the unique index backs this under concurrent requests.
func (f *Follow) RequestFollow(db *gorm.DB, followerID, followedID uint) (*Follow, error) {
	if followerID == followedID {
		return nil, ErrSelfFollow
	}

	var existing Follow
	err := db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Take(&existing).Error
	if err == nil {
		return nil, ErrFollowExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	f.FollowerID = followerID
	f.FollowedID = followedID
	f.Status = FollowStatusPending
	if err := db.Create(&f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// AcceptFollow transitions a pending edge to accepted. Only the
// followed user may accept; the state machine has no transition out of
// accepted, so accepting twice is a conflict.
func (f *Follow) AcceptFollow(db *gorm.DB, followID, actingUserID uint) (*Follow, error) {
	err := db.Where("id = ?", followID).Take(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFollowNotFound
		}
		return nil, err
	}
	if f.FollowedID != actingUserID {
		return nil, ErrNotFollowTarget
	}
	if f.Status == FollowStatusAccepted {
		return nil, ErrAlreadyAccepted
	}

	err = db.Model(&f).Updates(map[string]interface{}{
		"status":     FollowStatusAccepted,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	f.Status = FollowStatusAccepted
	return f, nil
}

// RejectFollow deletes a pending edge. Rejection only applies while
// the request is pending; an accepted edge goes away via Unfollow.
func (f *Follow) RejectFollow(db *gorm.DB, followID, actingUserID uint) error {
	err := db.Where("id = ?", followID).Take(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFollowNotFound
		}
		return err
	}
	if f.FollowedID != actingUserID {
		return ErrNotFollowTarget
	}
	if f.Status != FollowStatusPending {
		return ErrNotPending
	}

	return db.Where("id = ?", f.ID).Delete(&Follow{}).Error
}

// Unfollow removes the edge follower -> followed, pending or accepted.
// Only the follower's own outgoing edge is touched; the reverse edge,
// if any, is someone else's relationship and stays.
func (f *Follow) Unfollow(db *gorm.DB, followerID, followedID uint) error {
	result := db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

// FollowersOf lists accepted incoming edges with the follower profile
// preloaded.
func (f *Follow) FollowersOf(db *gorm.DB, userID uint) (*[]Follow, error) {
	follows := []Follow{}
	err := db.Preload("Follower").
		Where("followed_id = ? AND status = ?", userID, FollowStatusAccepted).
		Order("created_at desc").Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return &follows, nil
}

// FollowingOf lists accepted outgoing edges with the followed profile
// preloaded.
func (f *Follow) FollowingOf(db *gorm.DB, userID uint) (*[]Follow, error) {
	follows := []Follow{}
	err := db.Preload("Followed").
		Where("follower_id = ? AND status = ?", userID, FollowStatusAccepted).
		Order("created_at desc").Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return &follows, nil
}

// PendingFor lists incoming requests still awaiting a decision by
// userID, with the requester profile preloaded.
func (f *Follow) PendingFor(db *gorm.DB, userID uint) (*[]Follow, error) {
	follows := []Follow{}
	err := db.Preload("Follower").
		Where("followed_id = ? AND status = ?", userID, FollowStatusPending).
		Order("created_at desc").Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return &follows, nil
}

// CountRelationships counts accepted edges in both directions.
func (f *Follow) CountRelationships(db *gorm.DB, userID uint) (*FollowCounts, error) {
	counts := FollowCounts{}
	err := db.Model(&Follow{}).
		Where("followed_id = ? AND status = ?", userID, FollowStatusAccepted).
		Count(&counts.Followers).Error
	if err != nil {
		return nil, err
	}
	err = db.Model(&Follow{}).
		Where("follower_id = ? AND status = ?", userID, FollowStatusAccepted).
		Count(&counts.Following).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

// AcceptedFollowedIDs resolves the set of users whose posts belong in
// userID's personal feed, the user included.
func (f *Follow) AcceptedFollowedIDs(db *gorm.DB, userID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&Follow{}).
		Where("follower_id = ? AND status = ?", userID, FollowStatusAccepted).
		Pluck("followed_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return append(ids, userID), nil
}

// SuggestedUsers returns users the caller has no relationship with in
// either direction, pending requests included, self excluded.
func (f *Follow) SuggestedUsers(db *gorm.DB, userID uint) (*[]User, error) {
	users := []User{}
	err := db.Where("id != ?", userID).
		Where("id NOT IN (?)", db.Model(&Follow{}).Select("followed_id").Where("follower_id = ?", userID)).
		Where("id NOT IN (?)", db.Model(&Follow{}).Select("follower_id").Where("followed_id = ?", userID)).
		Order("username asc").Limit(100).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return &users, nil
}
