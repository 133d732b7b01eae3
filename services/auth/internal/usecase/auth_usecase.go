package usecase

import (
	"context"
	"fmt"

	"socialhub/pkg/apperr"
	"socialhub/pkg/jwt"
	"socialhub/pkg/logger"
	"socialhub/services/auth/internal/entity"
	"socialhub/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidCredentials = apperr.New(apperr.ErrUnauthorized, "Invalid credentials")

type AuthUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	GetUser(ctx context.Context, userID string) (*entity.UserDetails, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, username, email, password string) (*entity.User, string, error) {
	exists, err := uc.userRepo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, "", persistent.ErrDuplicateUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration: %w", err)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}

	// the unique indexes still catch a concurrent registration
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if !apperr.IsInternal(err) {
			return nil, "", err
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperr.IsInternal(err) {
			return nil, "", err
		}
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(ctx context.Context, userID string) (*entity.UserDetails, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""

	details := &entity.UserDetails{User: *user}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details.Followers, err = uc.userRepo.GetFollowers(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		details.Following, err = uc.userRepo.GetFollowing(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load connections: %w", err)
	}

	return details, nil
}
