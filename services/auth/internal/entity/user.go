package entity

import "time"

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Profile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// UserDetails is a user with both sides of the follow graph resolved.
type UserDetails struct {
	User
	Followers []Profile `json:"followers"`
	Following []Profile `json:"following"`
}
