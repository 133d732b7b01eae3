package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"socialhub/pkg/apperr"
	"socialhub/pkg/cache"
	"socialhub/pkg/logger"
	"socialhub/services/user/internal/entity"
	"socialhub/services/user/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const MaxBioLength = 160

type UserUseCase interface {
	GetSuggestions(ctx context.Context, userID string) ([]entity.Summary, error)
	Search(ctx context.Context, query string) ([]entity.Summary, error)
	GetProfile(ctx context.Context, userID string) (*entity.ProfilePage, error)
	UpdateProfile(ctx context.Context, callerID, userID string, update entity.ProfileUpdate) (*entity.User, error)
	ToggleFollow(ctx context.Context, callerID, userID, targetID string) (bool, error)
	GetFollowers(ctx context.Context, userID string) ([]entity.Profile, error)
	GetFollowing(ctx context.Context, userID string) ([]entity.Profile, error)
}

type userUseCase struct {
	userRepo    persistent.UserRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, redisClient *redis.Client, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo:    userRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *userUseCase) GetSuggestions(ctx context.Context, userID string) ([]entity.Summary, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return uc.userRepo.Suggestions(ctx, userID, persistent.SuggestionLimit)
}

func (uc *userUseCase) Search(ctx context.Context, query string) ([]entity.Summary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.Summary{}, nil
	}
	return uc.userRepo.Search(ctx, query, persistent.SearchLimit)
}

func (uc *userUseCase) GetProfile(ctx context.Context, userID string) (*entity.ProfilePage, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	page := &entity.ProfilePage{User: *user}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page.Followers, err = uc.userRepo.GetFollowers(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		page.Following, err = uc.userRepo.GetFollowing(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		page.Posts, err = uc.userRepo.GetPostsByAuthor(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return page, nil
}

func (uc *userUseCase) UpdateProfile(ctx context.Context, callerID, userID string, update entity.ProfileUpdate) (*entity.User, error) {
	if callerID != userID {
		return nil, apperr.New(apperr.ErrForbidden, "Not authorized to update this profile")
	}
	if update.Bio != nil && utf8.RuneCountInString(*update.Bio) > MaxBioLength {
		return nil, apperr.New(apperr.ErrInvalidInput, fmt.Sprintf("Bio cannot exceed %d characters", MaxBioLength))
	}

	return uc.userRepo.Update(ctx, userID, update)
}

func (uc *userUseCase) ToggleFollow(ctx context.Context, callerID, userID, targetID string) (bool, error) {
	if callerID != userID {
		return false, apperr.New(apperr.ErrForbidden, "Not authorized to follow on behalf of this user")
	}
	if userID == targetID {
		return false, apperr.New(apperr.ErrInvalidInput, "You cannot follow yourself")
	}

	following, err := uc.userRepo.ToggleFollow(ctx, userID, targetID)
	if err != nil {
		return false, err
	}

	if err := cache.Invalidate(ctx, uc.redisClient, cache.FeedKey(userID)); err != nil {
		uc.logger.Warn("Failed to invalidate feed cache for %s: %v", userID, err)
	}
	return following, nil
}

func (uc *userUseCase) GetFollowers(ctx context.Context, userID string) ([]entity.Profile, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return uc.userRepo.GetFollowers(ctx, userID)
}

func (uc *userUseCase) GetFollowing(ctx context.Context, userID string) ([]entity.Profile, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return uc.userRepo.GetFollowing(ctx, userID)
}
