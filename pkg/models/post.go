package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MaxPostLength    = 280
	MaxCommentLength = 280
)

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

type MediaItem struct {
	Path      string    `json:"path"`
	MediaType MediaKind `json:"mediaType"`
}

type Post struct {
	ID           string                         `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID     string                         `gorm:"type:uuid;not null;index" json:"authorId"`
	Author       User                           `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Content      string                         `gorm:"type:varchar(280);not null" json:"content"`
	Image        *string                        `gorm:"type:varchar(500)" json:"image"`
	Media        datatypes.JSONSlice[MediaItem] `gorm:"type:jsonb" json:"media"`
	ParentPostID *string                        `gorm:"type:uuid;index" json:"parentPost"`
	Likes        []Like                         `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	Comments     []Comment                      `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Replies      []Post                         `gorm:"foreignKey:ParentPostID" json:"replies,omitempty"`
	CreatedAt    time.Time                      `json:"createdAt"`
	UpdatedAt    time.Time                      `gorm:"index" json:"updatedAt"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type Comment struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;index" json:"postId"`
	AuthorID  string    `gorm:"type:uuid;not null" json:"authorId"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Content   string    `gorm:"type:varchar(280);not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// Like is a member of a post's liker set. The composite key keeps the set
// free of duplicates.
type Like struct {
	PostID    string    `gorm:"type:uuid;primaryKey" json:"postId"`
	UserID    string    `gorm:"type:uuid;primaryKey;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
