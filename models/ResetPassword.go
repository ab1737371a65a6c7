package models

import (
	"strings"
	"time"

	"github.com/twinj/uuid"
	"gorm.io/gorm"
)

// ResetPassword is a one-time token row created by the forgot-password
// flow and consumed by the reset endpoint.
type ResetPassword struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Email     string    `gorm:"size:100;not null;" json:"email"`
	Token     string    `gorm:"size:255;not null;uniqueIndex" json:"token"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (rp *ResetPassword) Prepare() {
	rp.Token = uuid.NewV4().String()
	rp.Email = strings.ToLower(strings.TrimSpace(rp.Email))
	rp.CreatedAt = time.Now()
}

func (rp *ResetPassword) Validate() map[string]string {
	var errorMessages = make(map[string]string)
	if rp.Email == "" {
		errorMessages["Required_email"] = "Required Email"
	}
	return errorMessages
}

func (rp *ResetPassword) SaveDetails(db *gorm.DB) (*ResetPassword, error) {
	err := db.Create(&rp).Error
	if err != nil {
		return nil, err
	}
	return rp, nil
}

func (rp *ResetPassword) DeleteDetails(db *gorm.DB) (int64, error) {
	result := db.Where("id = ?", rp.ID).Delete(&ResetPassword{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
