package persistent

import (
	"socialhub/pkg/models"
	"socialhub/services/post/internal/entity"

	"gorm.io/datatypes"
)

func ToProfileEntity(m *models.User) entity.Profile {
	return entity.Profile{
		ID:             m.ID,
		Username:       m.Username,
		ProfilePicture: m.ProfilePicture,
	}
}

func ToCommentEntity(m *models.Comment) entity.Comment {
	return entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		Author:    ToProfileEntity(&m.Author),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// ToPostEntity maps a post and whichever associations were preloaded.
// Collections are never nil so they encode as [].
func ToPostEntity(m *models.Post) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:           m.ID,
		Author:       ToProfileEntity(&m.Author),
		Content:      m.Content,
		Image:        m.Image,
		Media:        []models.MediaItem(m.Media),
		ParentPostID: m.ParentPostID,
		Likes:        make([]entity.Profile, len(m.Likes)),
		Comments:     make([]entity.Comment, len(m.Comments)),
		Replies:      make([]entity.Post, len(m.Replies)),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if post.Media == nil {
		post.Media = []models.MediaItem{}
	}
	for i := range m.Likes {
		post.Likes[i] = ToProfileEntity(&m.Likes[i].User)
	}
	for i := range m.Comments {
		post.Comments[i] = ToCommentEntity(&m.Comments[i])
	}
	for i := range m.Replies {
		post.Replies[i] = *ToPostEntity(&m.Replies[i])
	}
	return post
}

func ToPostModel(d *entity.Draft) *models.Post {
	media := d.Media
	if media == nil {
		media = []models.MediaItem{}
	}
	return &models.Post{
		AuthorID:     d.AuthorID,
		Content:      d.Content,
		Image:        d.Image,
		Media:        datatypes.JSONSlice[models.MediaItem](media),
		ParentPostID: d.ParentPostID,
	}
}
