package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"github.com/twinj/uuid"
	"gorm.io/gorm"
)

// Post is a short text update. Posts are immutable once created; there
// is no edit or delete surface.
type Post struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	PublicID  string    `gorm:"type:uuid;uniqueIndex;column:public_id" json:"public_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Author    User      `gorm:"foreignKey:UserID" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Likes     []Like    `gorm:"foreignKey:PostID" json:"likes"`
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(p.PublicID) == "" {
		p.PublicID = uuid.NewV4().String()
	}
	return nil
}

func (p *Post) Prepare() {
	p.ID = 0
	p.Content = html.EscapeString(strings.TrimSpace(p.Content))
	p.Author = User{}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
}

func (p *Post) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if p.Content == "" {
		errorMessages["Required_content"] = "Content is required"
	}
	if p.UserID == 0 {
		errorMessages["Required_author"] = "Author is required"
	}
	return errorMessages
}

func (p *Post) SavePost(db *gorm.DB) (*Post, error) {
	err := db.Create(&p).Error
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Post) FindPostByID(db *gorm.DB, pid uint) (*Post, error) {
	var post Post
	err := feedQuery(db).Where("posts.id = ?", pid).Take(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GlobalFeed returns every post with its author, likes, and comments
// loaded, newest first. The ordering is explicit; callers must not
// rely on storage order.
func (p *Post) GlobalFeed(db *gorm.DB) (*[]Post, error) {
	posts := []Post{}
	err := feedQuery(db).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return &posts, nil
}

// PersonalFeed returns posts authored by any of authorIDs, newest
// first. The caller resolves the author set from the follow graph.
func (p *Post) PersonalFeed(db *gorm.DB, authorIDs []uint) (*[]Post, error) {
	posts := []Post{}
	err := feedQuery(db).Where("user_id IN ?", authorIDs).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return &posts, nil
}

// PostsByUser returns one user's posts, newest first, same shape as
// the feeds.
func (p *Post) PostsByUser(db *gorm.DB, uid uint) (*[]Post, error) {
	posts := []Post{}
	err := feedQuery(db).Where("user_id = ?", uid).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return &posts, nil
}

func feedQuery(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").
		Preload("Likes").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("comments.created_at asc")
		}).
		Preload("Comments.Author").
		Order("created_at desc, id desc")
}
