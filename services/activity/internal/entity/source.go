package entity

import "time"

// Subject is the user whose activity is being read.
type Subject struct {
	ID        string
	UpdatedAt time.Time
}

type Liker struct {
	Profile
	LikedAt time.Time
}

type Comment struct {
	ID        string
	Author    Profile
	Content   string
	CreatedAt time.Time
}

// Post is an authored post with likers in like order and comments in
// creation order.
type Post struct {
	ID        string
	Content   string
	UpdatedAt time.Time
	Likers    []Liker
	Comments  []Comment
}

// Follower is listed in follow order.
type Follower struct {
	Profile
	FollowedAt time.Time
}
