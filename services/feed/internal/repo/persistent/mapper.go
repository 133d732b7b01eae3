package persistent

import (
	"socialhub/pkg/models"
	"socialhub/services/feed/internal/entity"
)

func toProfile(m *models.User) entity.Profile {
	return entity.Profile{
		ID:             m.ID,
		Username:       m.Username,
		ProfilePicture: m.ProfilePicture,
	}
}

func ToPostEntity(m *models.Post, commentsCount int64) entity.Post {
	post := entity.Post{
		ID:            m.ID,
		Author:        toProfile(&m.Author),
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
		post.Likes[i] = toProfile(&m.Likes[i].User)
	}
	return post
}
