package persistent

import (
	"context"
	"errors"

	"socialhub/pkg/apperr"
	"socialhub/pkg/models"
	"socialhub/services/feed/internal/entity"

	"gorm.io/gorm"
)

var ErrUserNotFound = apperr.New(apperr.ErrNotFound, "User not found")

type FeedRepository interface {
	GetFollowingIDs(ctx context.Context, userID string) ([]string, error)
	GetPostsByAuthors(ctx context.Context, authorIDs []string, limit int) ([]entity.Post, error)
}

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

// GetFollowingIDs returns ErrUserNotFound when userID does not exist.
func (r *feedRepository) GetFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	db := r.db.WithContext(ctx)

	var user models.User
	if err := db.Select("id").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var ids []string
	err := db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error
	return ids, err
}

func (r *feedRepository) GetPostsByAuthors(ctx context.Context, authorIDs []string, limit int) ([]entity.Post, error) {
	if len(authorIDs) == 0 {
		return []entity.Post{}, nil
	}

	db := r.db.WithContext(ctx)

	var postModels []models.Post
	err := db.
		Preload("Author").
		Preload("Likes.User").
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}
	if len(postModels) == 0 {
		return []entity.Post{}, nil
	}

	postIDs := make([]string, len(postModels))
	for i := range postModels {
		postIDs[i] = postModels[i].ID
	}

	var rows []struct {
		PostID string
		Count  int64
	}
	err = db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}

	posts := make([]entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i], counts[postModels[i].ID])
	}
	return posts, nil
}
