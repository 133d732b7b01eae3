package usecase

import (
	"context"
	"fmt"

	"socialhub/pkg/apperr"
	"socialhub/pkg/logger"
	"socialhub/services/activity/internal/entity"
	"socialhub/services/activity/internal/repo/cache"
	"socialhub/services/activity/internal/repo/persistent"

	"golang.org/x/sync/errgroup"
)

type ActivityUseCase interface {
	// GetActivity derives the subject's notifications from current state.
	GetActivity(ctx context.Context, subjectID string) ([]entity.Notification, error)
	// ListActivity is GetActivity minus dismissed events, optionally
	// restricted to one kind.
	ListActivity(ctx context.Context, subjectID string, kind entity.Kind) ([]entity.Notification, error)
	Dismiss(ctx context.Context, subjectID string, keys []string) (int64, error)
	ClearDismissed(ctx context.Context, subjectID string) error
}

type activityUseCase struct {
	repo      persistent.ActivityRepository
	dismissed cache.DismissedStore
	policy    TimestampPolicy
	logger    *logger.Logger
}

func NewActivityUseCase(
	repo persistent.ActivityRepository,
	dismissed cache.DismissedStore,
	policy TimestampPolicy,
	logger *logger.Logger,
) ActivityUseCase {
	return &activityUseCase{
		repo:      repo,
		dismissed: dismissed,
		policy:    policy,
		logger:    logger,
	}
}

func (uc *activityUseCase) GetActivity(ctx context.Context, subjectID string) ([]entity.Notification, error) {
	subject, err := uc.repo.GetSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	var (
		posts     []entity.Post
		followers []entity.Follower
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = uc.repo.GetRecentPosts(gctx, subject.ID, ActivityPostLimit)
		if err != nil {
			return fmt.Errorf("failed to load posts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		followers, err = uc.repo.GetFollowers(gctx, subject.ID)
		if err != nil {
			return fmt.Errorf("failed to load followers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Aggregate(*subject, posts, followers, uc.policy), nil
}

func (uc *activityUseCase) ListActivity(ctx context.Context, subjectID string, kind entity.Kind) ([]entity.Notification, error) {
	if kind != "" && !kind.Valid() {
		return nil, apperr.New(apperr.ErrInvalidInput, "Invalid activity type")
	}

	events, err := uc.GetActivity(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	if kind != "" {
		events = filterKind(events, kind)
	}

	dismissed, err := uc.dismissed.Members(ctx, subjectID)
	if err != nil {
		uc.logger.Warn("Failed to load dismissed notifications for %s: %v", subjectID, err)
		return events, nil
	}
	if len(dismissed) == 0 {
		return events, nil
	}

	visible := make([]entity.Notification, 0, len(events))
	for _, e := range events {
		if _, hidden := dismissed[e.Key]; !hidden {
			visible = append(visible, e)
		}
	}
	return visible, nil
}

func (uc *activityUseCase) Dismiss(ctx context.Context, subjectID string, keys []string) (int64, error) {
	if len(keys) == 0 {
		return 0, apperr.New(apperr.ErrInvalidInput, "At least one key is required")
	}

	added, err := uc.dismissed.Add(ctx, subjectID, keys)
	if err != nil {
		uc.logger.Error("Failed to dismiss notifications for %s: %v", subjectID, err)
		return 0, fmt.Errorf("failed to dismiss notifications: %w", err)
	}
	return added, nil
}

func (uc *activityUseCase) ClearDismissed(ctx context.Context, subjectID string) error {
	if err := uc.dismissed.Clear(ctx, subjectID); err != nil {
		uc.logger.Error("Failed to clear dismissed notifications for %s: %v", subjectID, err)
		return fmt.Errorf("failed to clear dismissed notifications: %w", err)
	}
	return nil
}
