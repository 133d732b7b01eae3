package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"socialhub/pkg/apperr"
	"socialhub/pkg/logger"
	"socialhub/pkg/models"
	"socialhub/services/post/internal/entity"
	"socialhub/services/post/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, draft *entity.Draft) (*entity.Post, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) GetRef(ctx context.Context, id string) (*entity.PostRef, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostRef), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) AddComment(ctx context.Context, postID, authorID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, postID, authorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockPostRepository) GetComment(ctx context.Context, postID, commentID string) (*entity.Comment, error) {
	args := m.Called(ctx, postID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockPostRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

func newTestUseCase(repo *MockPostRepository) PostUseCase {
	return NewPostUseCase(repo, nil, logger.New())
}

func TestCreatePost_DefaultsMediaType(t *testing.T) {
	repo := new(MockPostRepository)
	uc := newTestUseCase(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *entity.Draft) bool {
		return d.AuthorID == "u1" &&
			d.Content == "hello" &&
			len(d.Media) == 2 &&
			d.Media[0].MediaType == models.MediaImage &&
			d.Media[1].MediaType == models.MediaVideo &&
			d.ParentPostID == nil
	})).Return(&entity.Post{ID: "p1", Content: "hello"}, nil)

	post, err := uc.CreatePost(context.Background(), "u1", CreatePostInput{
		Content: "hello",
		Media: []models.MediaItem{
			{Path: "/uploads/a.png"},
			{Path: "/uploads/b.mp4", MediaType: models.MediaVideo},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "p1", post.ID)
	repo.AssertExpectations(t)
}

func TestCreatePost_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input CreatePostInput
		msg   string
	}{
		{"empty", CreatePostInput{}, "Content is required"},
		{"blank", CreatePostInput{Content: "   "}, "Content is required"},
		{"too long", CreatePostInput{Content: strings.Repeat("x", models.MaxPostLength+1)}, "Content cannot exceed 280 characters"},
		{"bad media", CreatePostInput{Content: "hi", Media: []models.MediaItem{{Path: "a", MediaType: "gif"}}}, "Invalid media type"},
		{"no path", CreatePostInput{Content: "hi", Media: []models.MediaItem{{MediaType: models.MediaImage}}}, "Media path is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockPostRepository)
			uc := newTestUseCase(repo)

			_, err := uc.CreatePost(context.Background(), "u1", tc.input)

			assert.ErrorIs(t, err, apperr.ErrInvalidInput)
			assert.Equal(t, tc.msg, err.Error())
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreatePost_MaxLengthCountsRunes(t *testing.T) {
	repo := new(MockPostRepository)
	uc := newTestUseCase(repo)
	content := strings.Repeat("é", models.MaxPostLength)

	repo.On("Create", mock.Anything, mock.Anything).Return(&entity.Post{ID: "p1"}, nil)

	_, err := uc.CreatePost(context.Background(), "u1", CreatePostInput{Content: content})

	assert.NoError(t, err)
}

func TestGetPost_NilCacheFallsThrough(t *testing.T) {
	repo := new(MockPostRepository)
	uc := newTestUseCase(repo)

	repo.On("GetByID", mock.Anything, "p1").Return(&entity.Post{ID: "p1"}, nil)

	post, err := uc.GetPost(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", post.ID)
}

func TestGetPost_NotFound(t *testing.T) {
	repo := new(MockPostRepository)
	uc := newTestUseCase(repo)

	repo.On("GetByID", mock.Anything, "ghost").Return(nil, persistent.ErrPostNotFound)

	_, err := uc.GetPost(context.Background(), "ghost")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestToggleLike(t *testing.T) {
	repo := new(MockPostRepository)
	uc := newTestUseCase(repo)

	repo.On("ToggleLike", mock.Anything, "p1", "u1").Return(true, nil)
	repo.On("GetByID", mock.Anything, "p1").Return(&entity.Post{
		ID:    "p1",
		Likes: []entity.Profile{{ID: "u1"}},
	}, nil)

	post, liked, err := uc.ToggleLike(context.Background(), "u1", "p1")

	require.NoError(t, err)
	assert.True(t, liked)
	assert.True(t, post.LikedBy("u1"))
}

func TestToggleLike_MissingPost(t *testing.T) {
	repo := new(MockPostRepository)
	uc := newTestUseCase(repo)

	repo.On("ToggleLike", mock.Anything, "ghost", "u1").Return(false, persistent.ErrPostNotFound)

	_, _, err := uc.ToggleLike(context.Background(), "u1", "ghost")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestReply_SetsParent(t *testing.T) {
	repo := new(MockPostRepository)
	uc := newTestUseCase(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *entity.Draft) bool {
		return d.ParentPostID != nil && *d.ParentPostID == "p1"
	})).Return(&entity.Post{ID: "r1"}, nil)

	reply, err := uc.Reply(context.Background(), "u2", "p1", CreatePostInput{Content: "agreed"})

	require.NoError(t, err)
	assert.Equal(t, "r1", reply.ID)
}

func TestReply_MissingParent(t *testing.T) {
	repo := new(MockPostRepository)
	uc := newTestUseCase(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil, persistent.ErrPostNotFound)

	_, err := uc.Reply(context.Background(), "u2", "ghost", CreatePostInput{Content: "agreed"})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAddComment(t *testing.T) {
	repo := new(MockPostRepository)
	uc := newTestUseCase(repo)

	repo.On("AddComment", mock.Anything, "p1", "u2", "nice").Return(&entity.Comment{ID: "c1", Content: "nice"}, nil)

	comment, err := uc.AddComment(context.Background(), "u2", "p1", "nice")

	require.NoError(t, err)
	assert.Equal(t, "c1", comment.ID)
}

func TestAddComment_Empty(t *testing.T) {
	uc := newTestUseCase(new(MockPostRepository))

	_, err := uc.AddComment(context.Background(), "u2", "p1", "")

	assert.Equal(t, ErrCommentContentRequired, err)
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()

	t.Run("author", func(t *testing.T) {
		repo := new(MockPostRepository)
		uc := newTestUseCase(repo)
		repo.On("GetRef", ctx, "p1").Return(&entity.PostRef{ID: "p1", AuthorID: "u1"}, nil)
		repo.On("GetComment", ctx, "p1", "c1").Return(&entity.Comment{ID: "c1", Author: entity.Profile{ID: "u2"}}, nil)
		repo.On("DeleteComment", ctx, "p1", "c1").Return(nil)

		assert.NoError(t, uc.DeleteComment(ctx, "u2", "p1", "c1"))
		repo.AssertExpectations(t)
	})

	t.Run("post author is not comment author", func(t *testing.T) {
		repo := new(MockPostRepository)
		uc := newTestUseCase(repo)
		repo.On("GetRef", ctx, "p1").Return(&entity.PostRef{ID: "p1", AuthorID: "u1"}, nil)
		repo.On("GetComment", ctx, "p1", "c1").Return(&entity.Comment{ID: "c1", Author: entity.Profile{ID: "u2"}}, nil)

		err := uc.DeleteComment(ctx, "u1", "p1", "c1")

		assert.ErrorIs(t, err, apperr.ErrForbidden)
		repo.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing post", func(t *testing.T) {
		repo := new(MockPostRepository)
		uc := newTestUseCase(repo)
		repo.On("GetRef", ctx, "ghost").Return(nil, persistent.ErrPostNotFound)

		err := uc.DeleteComment(ctx, "u2", "ghost", "c1")

		assert.Equal(t, "Post not found", err.Error())
	})

	t.Run("missing comment", func(t *testing.T) {
		repo := new(MockPostRepository)
		uc := newTestUseCase(repo)
		repo.On("GetRef", ctx, "p1").Return(&entity.PostRef{ID: "p1", AuthorID: "u1"}, nil)
		repo.On("GetComment", ctx, "p1", "ghost").Return(nil, persistent.ErrCommentNotFound)

		err := uc.DeleteComment(ctx, "u2", "p1", "ghost")

		assert.Equal(t, "Comment not found", err.Error())
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	parent := "p0"

	repo := new(MockPostRepository)
	uc := newTestUseCase(repo)
	repo.On("GetRef", ctx, "p1").Return(&entity.PostRef{ID: "p1", AuthorID: "u1", ParentPostID: &parent}, nil)
	repo.On("Delete", ctx, "p1").Return(nil)

	assert.NoError(t, uc.DeletePost(ctx, "u1", "p1"))

	err := uc.DeletePost(ctx, "u2", "p1")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.Equal(t, "Not authorized to delete this post", err.Error())
	repo.AssertNumberOfCalls(t, "Delete", 1)
}

func TestDeletePost_StoreError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPostRepository)
	uc := newTestUseCase(repo)
	repo.On("GetRef", ctx, "p1").Return(&entity.PostRef{ID: "p1", AuthorID: "u1"}, nil)
	repo.On("Delete", ctx, "p1").Return(errors.New("deadlock detected"))

	err := uc.DeletePost(ctx, "u1", "p1")

	assert.True(t, apperr.IsInternal(err))
}
