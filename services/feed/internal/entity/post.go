package entity

import (
	"time"

	"socialhub/pkg/models"
)

type Profile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

type Post struct {
	ID            string             `json:"id"`
	Author        Profile            `json:"author"`
	Content       string             `json:"content"`
	Image         *string            `json:"image"`
	Media         []models.MediaItem `json:"media"`
	ParentPostID  *string            `json:"parentPost"`
	Likes         []Profile          `json:"likes"`
	CommentsCount int64              `json:"commentsCount"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// Feed is what gets cached per user.
type Feed struct {
	Posts        []Post `json:"posts"`
	HasFollowing bool   `json:"hasFollowing"`
}
