package services

import (
	"testing"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postFixture struct {
	service     *PostService
	postRepo    *mockPostRepo
	commentRepo *mockCommentRepo
	tagRepo     *mockTagRepo
	userRepo    *mockUserRepo
	author      *models.User
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()
	postRepo := newMockPostRepo()
	commentRepo := newMockCommentRepo()
	tagRepo := newMockTagRepo()
	userRepo := newMockUserRepo()

	author := &models.User{Username: "rhett", DisplayName: "Rhett"}
	require.NoError(t, userRepo.Create(author))

	return &postFixture{
		service:     NewPostService(postRepo, commentRepo, tagRepo, userRepo, testLogger),
		postRepo:    postRepo,
		commentRepo: commentRepo,
		tagRepo:     tagRepo,
		userRepo:    userRepo,
		author:      author,
	}
}

func TestCreatePost(t *testing.T) {
	t.Run("valid post with ordered tags", func(t *testing.T) {
		f := newPostFixture(t)
		post := &models.Post{Title: "First Post", Content: "hello", AuthorID: f.author.ID}

		err := f.service.CreatePost(post, []string{"go", "databases"})

		require.NoError(t, err)
		assert.NotZero(t, post.ID)
		assert.False(t, post.PubDate.IsZero())
		require.Len(t, post.Tags, 2)
		assert.Equal(t, "Go", post.Tags[0].Name)
		assert.Equal(t, "Databases", post.Tags[1].Name)
		assert.Equal(t, "Go", post.PrimaryCategory())
		require.NotNil(t, post.Author)
		assert.Equal(t, "Rhett", post.Author.DisplayName)
	})

	t.Run("reuses existing tags and drops duplicates", func(t *testing.T) {
		f := newPostFixture(t)
		existing, err := f.tagRepo.GetOrCreate("Go")
		require.NoError(t, err)

		post := &models.Post{Title: "Second Post", Content: "hello", AuthorID: f.author.ID}
		err = f.service.CreatePost(post, []string{"go", "", "  ", "GO", "web"})

		require.NoError(t, err)
		require.Len(t, post.TagIDs, 2)
		assert.Equal(t, existing.ID, post.TagIDs[0])
	})

	t.Run("invalid post rejected", func(t *testing.T) {
		f := newPostFixture(t)
		post := &models.Post{Title: "", Content: "hello", AuthorID: f.author.ID}

		err := f.service.CreatePost(post, nil)

		assert.Error(t, err)
		assert.Zero(t, post.ID)
	})

	t.Run("unknown author rejected", func(t *testing.T) {
		f := newPostFixture(t)
		post := &models.Post{Title: "Orphan", Content: "hello", AuthorID: 999}

		err := f.service.CreatePost(post, nil)

		assert.ErrorContains(t, err, "author not found")
	})
}

func TestGetPost(t *testing.T) {
	t.Run("returns post with comments oldest first", func(t *testing.T) {
		f := newPostFixture(t)
		post := &models.Post{Title: "Commented", Content: "hello", AuthorID: f.author.ID}
		require.NoError(t, f.service.CreatePost(post, nil))

		base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		newer := &models.Comment{PostID: post.ID, AuthorID: f.author.ID, Text: "second comment", CreatedAt: base.Add(time.Hour)}
		older := &models.Comment{PostID: post.ID, AuthorID: f.author.ID, Text: "first comment", CreatedAt: base}
		require.NoError(t, f.commentRepo.Create(newer))
		require.NoError(t, f.commentRepo.Create(older))

		got, err := f.service.GetPost(post.ID)

		require.NoError(t, err)
		require.Len(t, got.Comments, 2)
		assert.Equal(t, "first comment", got.Comments[0].Text)
		assert.Equal(t, "second comment", got.Comments[1].Text)
		require.NotNil(t, got.Comments[0].Author)
		assert.Equal(t, "Rhett", got.Comments[0].Author.Display())
	})

	t.Run("not found", func(t *testing.T) {
		f := newPostFixture(t)

		_, err := f.service.GetPost(42)

		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestUpdatePost(t *testing.T) {
	t.Run("preserves publication date and author", func(t *testing.T) {
		f := newPostFixture(t)
		post := &models.Post{Title: "Original", Content: "hello", AuthorID: f.author.ID}
		require.NoError(t, f.service.CreatePost(post, []string{"go"}))
		originalDate := post.PubDate

		update := &models.Post{ID: post.ID, Title: "Revised", Content: "updated", AuthorID: 999}
		err := f.service.UpdatePost(update, []string{"web", "go"})

		require.NoError(t, err)
		assert.Equal(t, originalDate, update.PubDate)
		assert.Equal(t, f.author.ID, update.AuthorID)
		require.Len(t, update.Tags, 2)
		assert.Equal(t, "Web", update.Tags[0].Name)
		assert.Equal(t, "Go", update.Tags[1].Name)

		stored, err := f.postRepo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Revised", stored.Title)
	})

	t.Run("invalid update rejected", func(t *testing.T) {
		f := newPostFixture(t)
		post := &models.Post{Title: "Original", Content: "hello", AuthorID: f.author.ID}
		require.NoError(t, f.service.CreatePost(post, nil))

		update := &models.Post{ID: post.ID, Title: "", Content: "updated"}
		err := f.service.UpdatePost(update, nil)

		assert.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newPostFixture(t)

		err := f.service.UpdatePost(&models.Post{ID: 42, Title: "Ghost", Content: "x"}, nil)

		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("cascades comments and keeps tags", func(t *testing.T) {
		f := newPostFixture(t)
		post := &models.Post{Title: "Doomed", Content: "hello", AuthorID: f.author.ID}
		require.NoError(t, f.service.CreatePost(post, []string{"go"}))

		comment := &models.Comment{PostID: post.ID, AuthorID: f.author.ID, Text: "nice post"}
		require.NoError(t, f.commentRepo.Create(comment))

		err := f.service.DeletePost(post.ID)

		require.NoError(t, err)
		_, err = f.postRepo.GetByID(post.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		remaining, err := f.commentRepo.ListByPost(post.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)

		_, err = f.tagRepo.GetByName("go")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newPostFixture(t)

		err := f.service.DeletePost(42)

		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
