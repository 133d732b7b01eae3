package persistent

import (
	"context"
	"errors"

	"socialhub/pkg/apperr"
	"socialhub/pkg/models"
	"socialhub/services/auth/internal/entity"

	"gorm.io/gorm"
)

var ErrDuplicateUser = apperr.New(apperr.ErrInvalidInput, "Email or username already exists")

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	GetFollowers(ctx context.Context, userID string) ([]entity.Profile, error)
	GetFollowing(ctx context.Context, userID string) ([]entity.Profile, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, notFound(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, notFound(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
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

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.ErrNotFound, "User not found")
	}
	return err
}
