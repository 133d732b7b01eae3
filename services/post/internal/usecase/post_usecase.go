package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"socialhub/pkg/apperr"
	"socialhub/pkg/cache"
	"socialhub/pkg/logger"
	"socialhub/pkg/models"
	"socialhub/services/post/internal/entity"
	"socialhub/services/post/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const PostCacheTTL = 10 * time.Minute

var (
	ErrContentRequired        = apperr.New(apperr.ErrInvalidInput, "Content is required")
	ErrCommentContentRequired = apperr.New(apperr.ErrInvalidInput, "Comment content is required")
)

type CreatePostInput struct {
	Content string
	Image   *string
	Media   []models.MediaItem
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID string, input CreatePostInput) (*entity.Post, error)
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
	ToggleLike(ctx context.Context, userID, postID string) (*entity.Post, bool, error)
	Reply(ctx context.Context, authorID, parentID string, input CreatePostInput) (*entity.Post, error)
	AddComment(ctx context.Context, authorID, postID, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, callerID, postID, commentID string) error
	DeletePost(ctx context.Context, callerID, postID string) error
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, redisClient *redis.Client, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func validateContent(content string, missing error, max int) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", missing
	}
	if utf8.RuneCountInString(content) > max {
		return "", apperr.New(apperr.ErrInvalidInput, fmt.Sprintf("Content cannot exceed %d characters", max))
	}
	return content, nil
}

// normalizeMedia defaults an empty media type to image and rejects unknown ones.
func normalizeMedia(items []models.MediaItem) ([]models.MediaItem, error) {
	media := make([]models.MediaItem, 0, len(items))
	for _, item := range items {
		if item.Path == "" {
			return nil, apperr.New(apperr.ErrInvalidInput, "Media path is required")
		}
		switch item.MediaType {
		case "":
			item.MediaType = models.MediaImage
		case models.MediaImage, models.MediaVideo:
		default:
			return nil, apperr.New(apperr.ErrInvalidInput, "Invalid media type")
		}
		media = append(media, item)
	}
	return media, nil
}

func newDraft(authorID string, input CreatePostInput) (*entity.Draft, error) {
	content, err := validateContent(input.Content, ErrContentRequired, models.MaxPostLength)
	if err != nil {
		return nil, err
	}
	media, err := normalizeMedia(input.Media)
	if err != nil {
		return nil, err
	}

	image := input.Image
	if image != nil && *image == "" {
		image = nil
	}

	return &entity.Draft{AuthorID: authorID, Content: content, Image: image, Media: media}, nil
}

func (uc *postUseCase) CreatePost(ctx context.Context, authorID string, input CreatePostInput) (*entity.Post, error) {
	draft, err := newDraft(authorID, input)
	if err != nil {
		return nil, err
	}

	post, err := uc.postRepo.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (uc *postUseCase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	key := cache.PostKey(postID)

	var cached entity.Post
	hit, err := cache.GetJSON(ctx, uc.redisClient, key, &cached)
	if err != nil {
		uc.logger.Warn("Failed to read post cache %s: %v", key, err)
	}
	if hit {
		return &cached, nil
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, uc.redisClient, key, post, PostCacheTTL); err != nil {
		uc.logger.Warn("Failed to write post cache %s: %v", key, err)
	}
	return post, nil
}

func (uc *postUseCase) ToggleLike(ctx context.Context, userID, postID string) (*entity.Post, bool, error) {
	liked, err := uc.postRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, false, err
	}
	uc.invalidate(ctx, postID)

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	return post, liked, nil
}

func (uc *postUseCase) Reply(ctx context.Context, authorID, parentID string, input CreatePostInput) (*entity.Post, error) {
	draft, err := newDraft(authorID, input)
	if err != nil {
		return nil, err
	}
	draft.ParentPostID = &parentID

	reply, err := uc.postRepo.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, parentID)
	return reply, nil
}

func (uc *postUseCase) AddComment(ctx context.Context, authorID, postID, content string) (*entity.Comment, error) {
	content, err := validateContent(content, ErrCommentContentRequired, models.MaxCommentLength)
	if err != nil {
		return nil, err
	}

	comment, err := uc.postRepo.AddComment(ctx, postID, authorID, content)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, postID)
	return comment, nil
}

func (uc *postUseCase) DeleteComment(ctx context.Context, callerID, postID, commentID string) error {
	if _, err := uc.postRepo.GetRef(ctx, postID); err != nil {
		return err
	}

	comment, err := uc.postRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if comment.Author.ID != callerID {
		return apperr.New(apperr.ErrForbidden, "Not authorized to delete this comment")
	}

	if err := uc.postRepo.DeleteComment(ctx, postID, commentID); err != nil {
		return err
	}
	uc.invalidate(ctx, postID)
	return nil
}

func (uc *postUseCase) DeletePost(ctx context.Context, callerID, postID string) error {
	ref, err := uc.postRepo.GetRef(ctx, postID)
	if err != nil {
		return err
	}
	if ref.AuthorID != callerID {
		return apperr.New(apperr.ErrForbidden, "Not authorized to delete this post")
	}

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	uc.invalidate(ctx, postID)
	if ref.ParentPostID != nil {
		uc.invalidate(ctx, *ref.ParentPostID)
	}
	return nil
}

func (uc *postUseCase) invalidate(ctx context.Context, postID string) {
	if err := cache.Invalidate(ctx, uc.redisClient, cache.PostKey(postID)); err != nil {
		uc.logger.Warn("Failed to invalidate post cache for %s: %v", postID, err)
	}
}
