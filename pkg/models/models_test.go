package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_BeforeCreate(t *testing.T) {
	user := &User{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password",
	}

	// BeforeCreate should set ID if empty
	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestUser_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	user := &User{
		ID:       existingID,
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, existingID, user.ID)
}

func TestUser_PasswordNotSerialized(t *testing.T) {
	user := &User{ID: "u1", Username: "alice", Password: "hash"}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
	assert.Contains(t, string(data), `"profilePicture"`)
}

func TestPost_BeforeCreate(t *testing.T) {
	post := &Post{
		AuthorID: "author-123",
		Content:  "hello",
	}

	err := post.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, post.ID)
}

func TestPost_BeforeCreate_WithID(t *testing.T) {
	post := &Post{ID: "existing-post-id", AuthorID: "author-123", Content: "hello"}

	err := post.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, "existing-post-id", post.ID)
}

func TestComment_BeforeCreate(t *testing.T) {
	comment := &Comment{PostID: "post-123", AuthorID: "user-123", Content: "nice"}

	err := comment.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
}

func TestMediaKind_Constants(t *testing.T) {
	assert.Equal(t, MediaKind("image"), MediaImage)
	assert.Equal(t, MediaKind("video"), MediaVideo)
}
