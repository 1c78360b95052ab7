package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomePageShowsLatestThree(t *testing.T) {
	app := setupTestApp(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	app.seedPost(t, "Oldest Post", "content", base)
	app.seedPost(t, "Second Post", "content", base.Add(time.Hour))
	app.seedPost(t, "Third Post", "content", base.Add(2*time.Hour))
	app.seedPost(t, "Newest Post", "content", base.Add(3*time.Hour))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Newest Post")
	assert.Contains(t, body, "Third Post")
	assert.Contains(t, body, "Second Post")
	assert.NotContains(t, body, "Oldest Post")
}

func TestPostsIndexHTML(t *testing.T) {
	app := setupTestApp(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	app.seedPost(t, "Hello World", "first content", base)

	req := httptest.NewRequest("GET", "/posts", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello World")
	assert.Contains(t, w.Body.String(), `<span class="page">1/1</span>`)
}

func TestPostsIndexPageParamSwitchesToJSON(t *testing.T) {
	app := setupTestApp(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		app.seedPost(t, "Post "+strconv.Itoa(i), "content", base.Add(time.Duration(i)*time.Minute))
	}

	req := httptest.NewRequest("GET", "/posts?page=2", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, `"blog_posts"`)
	assert.Contains(t, body, `"current_page":2`)
	assert.Contains(t, body, `"has_previous":true`)
}

func TestPostShowHTML(t *testing.T) {
	app := setupTestApp(t)
	post := app.seedPost(t, "Visible Post", "the full body", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	comment := &models.Comment{PostID: post.ID, AuthorID: app.author.ID, Text: "first comment here"}
	require.NoError(t, app.commentRepo.Create(comment))

	req := httptest.NewRequest("GET", "/posts/"+strconv.Itoa(post.ID), nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Visible Post")
	assert.Contains(t, body, "the full body")
	assert.Contains(t, body, "first comment here")
}

func TestPostShowNotFound(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/posts/999", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePostForm(t *testing.T) {
	app := setupTestApp(t)

	form := url.Values{}
	form.Set("title", "Form Post")
	form.Set("content", "submitted through the form")
	form.Set("tags", "go, web")
	form.Set("author_id", strconv.Itoa(app.author.ID))

	req := httptest.NewRequest("POST", "/posts", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "/posts/"))

	posts, err := app.postRepo.ListAll()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Form Post", posts[0].Title)
	assert.Len(t, posts[0].TagIDs, 2)
}

func TestCreateCommentForm(t *testing.T) {
	app := setupTestApp(t)
	post := app.seedPost(t, "Host Post", "content", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

	form := url.Values{}
	form.Set("text", "a form submitted comment")
	form.Set("author_id", strconv.Itoa(app.author.ID))

	req := httptest.NewRequest("POST", "/posts/"+strconv.Itoa(post.ID)+"/comments", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)

	comments, err := app.commentRepo.ListByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "a form submitted comment", comments[0].Text)
}

func TestCommentsListHTML(t *testing.T) {
	app := setupTestApp(t)
	post := app.seedPost(t, "Host Post", "content", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	comment := &models.Comment{PostID: post.ID, AuthorID: app.author.ID, Text: "listed comment text"}
	require.NoError(t, app.commentRepo.Create(comment))

	req := httptest.NewRequest("GET", "/posts/"+strconv.Itoa(post.ID)+"/comments", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "listed comment text")
}

func TestStaticFiles(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/static/style.css", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "background")
}
