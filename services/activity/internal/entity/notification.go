package entity

import "time"

type Kind string

const (
	KindLike    Kind = "like"
	KindComment Kind = "comment"
	KindFollow  Kind = "follow"
)

func (k Kind) Valid() bool {
	switch k {
	case KindLike, KindComment, KindFollow:
		return true
	}
	return false
}

type Profile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// Notification is derived on every read and never stored.
type Notification struct {
	Key         string    `json:"key"`
	Type        Kind      `json:"type"`
	Actor       Profile   `json:"actor"`
	PostID      *string   `json:"postId"`
	PostContent string    `json:"postContent"`
	CommentText string    `json:"commentText,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
