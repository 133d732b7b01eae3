package persistent

import (
	"socialhub/pkg/models"
	"socialhub/services/activity/internal/entity"
)

func ToProfileEntity(m *models.User) entity.Profile {
	if m == nil {
		return entity.Profile{}
	}
	return entity.Profile{
		ID:             m.ID,
		Username:       m.Username,
		ProfilePicture: m.ProfilePicture,
	}
}

func ToPostEntity(m *models.Post) entity.Post {
	post := entity.Post{
		ID:        m.ID,
		Content:   m.Content,
		UpdatedAt: m.UpdatedAt,
	}

	if len(m.Likes) > 0 {
		post.Likers = make([]entity.Liker, len(m.Likes))
		for i, like := range m.Likes {
			post.Likers[i] = entity.Liker{
				Profile: ToProfileEntity(&like.User),
				LikedAt: like.CreatedAt,
			}
		}
	}

	if len(m.Comments) > 0 {
		post.Comments = make([]entity.Comment, len(m.Comments))
		for i, comment := range m.Comments {
			post.Comments[i] = entity.Comment{
				ID:        comment.ID,
				Author:    ToProfileEntity(&comment.Author),
				Content:   comment.Content,
				CreatedAt: comment.CreatedAt,
			}
		}
	}

	return post
}

func ToFollowerEntity(m *models.Follow) entity.Follower {
	return entity.Follower{
		Profile:    ToProfileEntity(&m.Follower),
		FollowedAt: m.CreatedAt,
	}
}
