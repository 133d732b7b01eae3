package persistent

import (
	"context"
	"errors"

	"socialhub/pkg/apperr"
	"socialhub/pkg/models"
	"socialhub/services/activity/internal/entity"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	GetSubject(ctx context.Context, userID string) (*entity.Subject, error)
	GetRecentPosts(ctx context.Context, authorID string, limit int) ([]entity.Post, error)
	GetFollowers(ctx context.Context, userID string) ([]entity.Follower, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) GetSubject(ctx context.Context, userID string) (*entity.Subject, error) {
	var user models.User
	err := r.db.WithContext(ctx).Select("id", "updated_at").Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.ErrNotFound, "User not found")
	}
	if err != nil {
		return nil, err
	}
	return &entity.Subject{ID: user.ID, UpdatedAt: user.UpdatedAt}, nil
}

// GetRecentPosts returns the author's most recently updated posts with
// likers oldest first and comments in creation order.
func (r *activityRepository) GetRecentPosts(ctx context.Context, authorID string, limit int) ([]entity.Post, error) {
	var postModels []models.Post
	err := r.db.WithContext(ctx).
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("likes.created_at ASC")
		}).
		Preload("Likes.User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Where("author_id = ?", authorID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *activityRepository) GetFollowers(ctx context.Context, userID string) ([]entity.Follower, error) {
	var follows []models.Follow
	err := r.db.WithContext(ctx).
		Preload("Follower").
		Where("followee_id = ?", userID).
		Order("created_at ASC").
		Find(&follows).Error
	if err != nil {
		return nil, err
	}

	followers := make([]entity.Follower, len(follows))
	for i := range follows {
		followers[i] = ToFollowerEntity(&follows[i])
	}
	return followers, nil
}
