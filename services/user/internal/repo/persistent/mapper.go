package persistent

import (
	"socialhub/pkg/models"
	"socialhub/services/user/internal/entity"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:             m.ID,
		Username:       m.Username,
		Email:          m.Email,
		Bio:            m.Bio,
		ProfilePicture: m.ProfilePicture,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToProfileEntity(m *models.User, withBio bool) entity.Profile {
	profile := entity.Profile{
		ID:             m.ID,
		Username:       m.Username,
		ProfilePicture: m.ProfilePicture,
	}
	if withBio {
		profile.Bio = m.Bio
	}
	return profile
}

func toProfiles(users []models.User) []entity.Profile {
	profiles := make([]entity.Profile, len(users))
	for i := range users {
		profiles[i] = ToProfileEntity(&users[i], true)
	}
	return profiles
}

func ToPostEntity(m *models.Post, commentsCount int64) entity.Post {
	post := entity.Post{
		ID:            m.ID,
		Author:        ToProfileEntity(&m.Author, false),
		Content:       m.Content,
		Image:         m.Image,
		Media:         []models.MediaItem(m.Media),
		ParentPostID:  m.ParentPostID,
		Likes:         make([]entity.Profile, len(m.Likes)),
		CommentsCount: commentsCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if post.Media == nil {
		post.Media = []models.MediaItem{}
	}
	for i := range m.Likes {
		post.Likes[i] = ToProfileEntity(&m.Likes[i].User, false)
	}
	return post
}
