package persistent

import (
	"context"
	"errors"
	"time"

	"socialhub/pkg/apperr"
	"socialhub/pkg/models"
	"socialhub/services/post/internal/entity"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound    = apperr.New(apperr.ErrNotFound, "Post not found")
	ErrCommentNotFound = apperr.New(apperr.ErrNotFound, "Comment not found")
)

type PostRepository interface {
	Create(ctx context.Context, draft *entity.Draft) (*entity.Post, error)
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	// GetRef loads only the ownership columns of the post.
	GetRef(ctx context.Context, id string) (*entity.PostRef, error)
	Delete(ctx context.Context, id string) error
	// ToggleLike flips userID in the liker set and reports whether it is now a member.
	ToggleLike(ctx context.Context, postID, userID string) (bool, error)
	AddComment(ctx context.Context, postID, authorID, content string) (*entity.Comment, error)
	GetComment(ctx context.Context, postID, commentID string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("likes.created_at ASC")
		}).
		Preload("Likes.User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("posts.created_at DESC")
		}).
		Preload("Replies.Author")
}

// touch bumps the post's updated_at inside tx. Likes, comments and replies
// count as updates to the post.
func touch(tx *gorm.DB, postID string) error {
	result := tx.Model(&models.Post{}).Where("id = ?", postID).Update("updated_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Create(ctx context.Context, draft *entity.Draft) (*entity.Post, error) {
	postModel := ToPostModel(draft)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if draft.ParentPostID != nil {
			if err := touch(tx, *draft.ParentPostID); err != nil {
				return err
			}
		}
		return tx.Create(postModel).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, postModel.ID)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel models.Post
	if err := withDetails(r.db.WithContext(ctx)).Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) GetRef(ctx context.Context, id string) (*entity.PostRef, error) {
	var postModel models.Post
	err := r.db.WithContext(ctx).
		Select("id", "author_id", "parent_post_id").
		Where("id = ?", id).
		First(&postModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &entity.PostRef{ID: postModel.ID, AuthorID: postModel.AuthorID, ParentPostID: postModel.ParentPostID}, nil
}

// Delete removes the post. Likes and comments cascade; replies are detached.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *postRepository) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := touch(tx, postID); err != nil {
			return err
		}

		result := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		if err := tx.Create(&models.Like{PostID: postID, UserID: userID}).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

func (r *postRepository) AddComment(ctx context.Context, postID, authorID, content string) (*entity.Comment, error) {
	commentModel := &models.Comment{PostID: postID, AuthorID: authorID, Content: content}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := touch(tx, postID); err != nil {
			return err
		}
		if err := tx.Create(commentModel).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", authorID).First(&commentModel.Author).Error
	})
	if err != nil {
		return nil, err
	}

	comment := ToCommentEntity(commentModel)
	return &comment, nil
}

func (r *postRepository) GetComment(ctx context.Context, postID, commentID string) (*entity.Comment, error) {
	var commentModel models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND post_id = ?", commentID, postID).
		First(&commentModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	comment := ToCommentEntity(&commentModel)
	return &comment, nil
}

func (r *postRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND post_id = ?", commentID, postID).Delete(&models.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCommentNotFound
		}
		return touch(tx, postID)
	})
}
