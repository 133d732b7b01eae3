package persistent

import (
	"context"
	"errors"
	"strings"
	"time"

	"socialhub/pkg/apperr"
	"socialhub/pkg/models"
	"socialhub/services/user/internal/entity"

	"gorm.io/gorm"
)

const (
	SuggestionLimit = 10
	SearchLimit     = 10
)

var ErrUserNotFound = apperr.New(apperr.ErrNotFound, "User not found")

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, id string, update entity.ProfileUpdate) (*entity.User, error)
	Suggestions(ctx context.Context, userID string, limit int) ([]entity.Summary, error)
	Search(ctx context.Context, query string, limit int) ([]entity.Summary, error)
	GetFollowers(ctx context.Context, userID string) ([]entity.Profile, error)
	GetFollowing(ctx context.Context, userID string) ([]entity.Profile, error)
	GetPostsByAuthor(ctx context.Context, authorID string) ([]entity.Post, error)
	// ToggleFollow flips the follow edge and reports whether it now exists.
	ToggleFollow(ctx context.Context, followerID, followeeID string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(ctx context.Context, id string, update entity.ProfileUpdate) (*entity.User, error) {
	updates := map[string]interface{}{}
	if update.Bio != nil {
		updates["bio"] = *update.Bio
	}
	if update.ProfilePicture != nil {
		updates["profile_picture"] = *update.ProfilePicture
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrUserNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *userRepository) summaries(query *gorm.DB) ([]entity.Summary, error) {
	var rows []struct {
		models.User
		FollowersCount int64
	}
	err := query.
		Select("users.*, (SELECT COUNT(*) FROM follows WHERE follows.followee_id = users.id) AS followers_count").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]entity.Summary, len(rows))
	for i := range rows {
		summaries[i] = entity.Summary{
			Profile:        ToProfileEntity(&rows[i].User, true),
			FollowersCount: rows[i].FollowersCount,
		}
	}
	return summaries, nil
}

func (r *userRepository) Suggestions(ctx context.Context, userID string, limit int) ([]entity.Summary, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).
		Where("users.id <> ?", userID).
		Where("users.id NOT IN (?)", r.db.Model(&models.Follow{}).Select("followee_id").Where("follower_id = ?", userID)).
		Order("users.created_at DESC").
		Limit(limit)
	return r.summaries(query)
}

func (r *userRepository) Search(ctx context.Context, query string, limit int) ([]entity.Summary, error) {
	pattern := "%" + escapeLike(query) + "%"
	q := r.db.WithContext(ctx).Model(&models.User{}).
		Where("users.username ILIKE ?", pattern).
		Order("users.username ASC").
		Limit(limit)
	return r.summaries(q)
}

func (r *userRepository) GetFollowers(ctx context.Context, userID string) ([]entity.Profile, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("follows.created_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return toProfiles(users), nil
}

func (r *userRepository) GetFollowing(ctx context.Context, userID string) ([]entity.Profile, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return toProfiles(users), nil
}

func (r *userRepository) GetPostsByAuthor(ctx context.Context, authorID string) ([]entity.Post, error) {
	var postModels []models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("likes.created_at ASC")
		}).
		Preload("Likes.User").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	counts, err := r.commentCounts(ctx, postModels)
	if err != nil {
		return nil, err
	}

	posts := make([]entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i], counts[postModels[i].ID])
	}
	return posts, nil
}

func (r *userRepository) commentCounts(ctx context.Context, posts []models.Post) (map[string]int64, error) {
	counts := make(map[string]int64, len(posts))
	if len(posts) == 0 {
		return counts, nil
	}

	ids := make([]string, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	var rows []struct {
		PostID string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

func (r *userRepository) ToggleFollow(ctx context.Context, followerID, followeeID string) (bool, error) {
	var following bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id IN ?", []string{followerID, followeeID}).Count(&count).Error; err != nil {
			return err
		}
		if count != 2 {
			return ErrUserNotFound
		}

		result := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Delete(&models.Follow{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			if err := tx.Create(&models.Follow{FollowerID: followerID, FolloweeID: followeeID}).Error; err != nil {
				return err
			}
			following = true
		}

		// a follow change counts as an update to both users
		return tx.Model(&models.User{}).
			Where("id IN ?", []string{followerID, followeeID}).
			Update("updated_at", time.Now()).Error
	})
	return following, err
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
