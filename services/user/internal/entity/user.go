package entity

import (
	"time"

	"socialhub/pkg/models"
)

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Profile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
	Bio            string `json:"bio,omitempty"`
}

// Summary is the card shown in search results and suggestions.
type Summary struct {
	Profile
	FollowersCount int64 `json:"followersCount"`
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

type ProfilePage struct {
	User      User      `json:"user"`
	Followers []Profile `json:"followers"`
	Following []Profile `json:"following"`
	Posts     []Post    `json:"posts"`
}

type ProfileUpdate struct {
	Bio            *string
	ProfilePicture *string
}
