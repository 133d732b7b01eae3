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

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    Profile   `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Post struct {
	ID           string             `json:"id"`
	Author       Profile            `json:"author"`
	Content      string             `json:"content"`
	Image        *string            `json:"image"`
	Media        []models.MediaItem `json:"media"`
	ParentPostID *string            `json:"parentPost"`
	Likes        []Profile          `json:"likes"`
	Comments     []Comment          `json:"comments"`
	Replies      []Post             `json:"replies"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// LikedBy reports whether userID is in the post's liker set.
func (p *Post) LikedBy(userID string) bool {
	for _, liker := range p.Likes {
		if liker.ID == userID {
			return true
		}
	}
	return false
}

type PostRef struct {
	ID           string
	AuthorID     string
	ParentPostID *string
}

// Draft is a validated post waiting to be stored.
type Draft struct {
	AuthorID     string
	Content      string
	Image        *string
	Media        []models.MediaItem
	ParentPostID *string
}
