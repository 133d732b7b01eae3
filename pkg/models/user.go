package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	Username       string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	Bio            string    `gorm:"type:varchar(160);default:''" json:"bio"`
	ProfilePicture string    `gorm:"type:varchar(500);default:''" json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// Follow is one edge of the follow graph. A user's followers and followees
// are both read from this table, so the two lists cannot disagree.
type Follow struct {
	FollowerID string    `gorm:"type:uuid;primaryKey" json:"followerId"`
	FolloweeID string    `gorm:"type:uuid;primaryKey;index" json:"followeeId"`
	Follower   User      `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followee   User      `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}
