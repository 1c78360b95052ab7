package routes

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"inkwell/app/cache"
	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testApp struct {
	router      *mux.Router
	db          *badger.DB
	store       *cache.Memory
	postRepo    repositories.PostRepository
	tagRepo     repositories.TagRepository
	commentRepo repositories.CommentRepository
	userRepo    repositories.UserRepository
	author      *models.User
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	db := setupTestDB(t)
	store := cache.NewMemory()
	basePath := setupTestTemplates(t)

	app := &testApp{
		router:      SetupRoutes(db, store, zap.NewNop().Sugar(), basePath),
		db:          db,
		store:       store,
		postRepo:    repositories.NewBadgerPostRepository(db),
		tagRepo:     repositories.NewBadgerTagRepository(db),
		commentRepo: repositories.NewBadgerCommentRepository(db),
		userRepo:    repositories.NewBadgerUserRepository(db),
	}

	app.author = &models.User{Username: "rhett", DisplayName: "Rhett"}
	require.NoError(t, app.userRepo.Create(app.author))

	return app
}

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestTemplates(t *testing.T) string {
	tmpDir := t.TempDir()
	viewsDir := filepath.Join(tmpDir, "app", "views")

	dirs := []string{
		filepath.Join(viewsDir, "posts"),
		filepath.Join(viewsDir, "comments"),
		filepath.Join(viewsDir, "shared"),
		filepath.Join(tmpDir, "static"),
	}
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	templates := map[string]string{
		filepath.Join(viewsDir, "layout.html"):          `{{define "layout"}}<!DOCTYPE html><html><body>{{template "content" .}}</body></html>{{end}}`,
		filepath.Join(viewsDir, "home.html"):            `{{define "content"}}<div class="latest">{{range .Posts}}<h2>{{.Title}}</h2>{{end}}</div>{{end}}`,
		filepath.Join(viewsDir, "posts/index.html"):     `{{define "content"}}<div class="posts">{{range .Posts}}<h2>{{.Title}}</h2>{{end}}<span class="page">{{.CurrentPage}}/{{.TotalPages}}</span>{{end}}`,
		filepath.Join(viewsDir, "posts/show.html"):      `{{define "content"}}<h1>{{.Title}}</h1><p>{{.Content}}</p>{{template "comments" .}}{{end}}`,
		filepath.Join(viewsDir, "posts/new.html"):       `{{define "content"}}<form method="POST"><input name="title"><textarea name="content"></textarea></form>{{end}}`,
		filepath.Join(viewsDir, "comments/list.html"):   `{{define "content"}}<div class="comments">{{range .Comments}}<p>{{.Text}}</p>{{end}}</div>{{end}}`,
		filepath.Join(viewsDir, "comments/new.html"):    `{{define "content"}}<form method="POST"><textarea name="text"></textarea></form>{{end}}`,
		filepath.Join(viewsDir, "shared/comments.html"): `{{define "comments"}}<div class="comments">{{range .Comments}}<p>{{.Text}}</p>{{end}}</div>{{end}}`,
	}
	for path, content := range templates {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	cssContent := "body { background: #f0f0f0; }"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "static/style.css"), []byte(cssContent), 0644))

	return tmpDir
}

func (app *testApp) seedPost(t *testing.T, title, content string, pubDate time.Time, tagNames ...string) *models.Post {
	t.Helper()
	tagIDs := make([]int, 0, len(tagNames))
	for _, name := range tagNames {
		tag, err := app.tagRepo.GetOrCreate(name)
		require.NoError(t, err)
		tagIDs = append(tagIDs, tag.ID)
	}
	post := &models.Post{
		Title:    title,
		Content:  content,
		PubDate:  pubDate,
		AuthorID: app.author.ID,
		TagIDs:   tagIDs,
	}
	require.NoError(t, app.postRepo.Create(post))
	return post
}
