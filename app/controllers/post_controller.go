package controllers

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"inkwell/app/models"
	"inkwell/app/pagination"
	"inkwell/app/presenter"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts. Listing goes
// through the search service with an empty query so both paths share
// ordering and pagination.
type PostController struct {
	postService   *services.PostService
	searchService *services.SearchService
	templates     map[string]*template.Template
}

// NewPostController creates a new PostController. basePath locates the
// view templates relative to the working directory.
func NewPostController(postService *services.PostService, searchService *services.SearchService, basePath string) *PostController {
	return &PostController{
		postService:   postService,
		searchService: searchService,
		templates:     loadTemplates(basePath),
	}
}

// loadTemplates loads and parses all post templates.
func loadTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/index.html"),
	))
	templates["show"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/show.html"),
		filepath.Join(basePath, "app/views/shared/comments.html"),
	))
	templates["new"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/new.html"),
	))
	return templates
}

// postRequest is the JSON body for create and edit.
type postRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Image    string   `json:"image"`
	AuthorID int      `json:"author_id"`
	Tags     []string `json:"tags"`
}

// indexContext feeds the listing template.
type indexContext struct {
	Posts       []*models.Post
	Query       string
	CurrentPage int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
	NextPage    int
	PrevPage    int
}

func newIndexContext(result *services.SearchResult) indexContext {
	return indexContext{
		Posts:       result.Items,
		Query:       result.Query,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
		HasNext:     result.HasNext,
		HasPrevious: result.HasPrevious,
		NextPage:    result.CurrentPage + 1,
		PrevPage:    result.CurrentPage - 1,
	}
}

// Index lists posts, six per page, newest first. An optional "search"
// parameter filters the listing through the same pipeline the search
// endpoint uses. The API shape is used when the client asks for JSON
// or paginates explicitly.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	rawPage := r.URL.Query().Get("page")
	page := services.ParsePage(rawPage)
	query := r.URL.Query().Get("search")

	// An explicit page parameter signals the AJAX pagination client,
	// which expects JSON, unless the request clearly wants a page.
	wantsHTML := strings.Contains(r.Header.Get("Accept"), "text/html")
	asJSON := wantsJSON(r) || (rawPage != "" && !wantsHTML)

	result, err := pc.searchService.Search(query, page)
	if err != nil {
		if asJSON {
			sendJSON(w, http.StatusInternalServerError, presenter.NewErrorPayload("Failed to fetch posts"))
			return
		}
		pc.renderIndex(w, r, newIndexContext(&services.SearchResult{Page: pagination.Paginate(nil, 1, pagination.PerPage)}))
		return
	}

	if asJSON {
		sendJSON(w, http.StatusOK, presenter.NewListPayload(result.Page))
		return
	}
	pc.renderIndex(w, r, newIndexContext(result))
}

func (pc *PostController) renderIndex(w http.ResponseWriter, r *http.Request, data indexContext) {
	if err := pc.templates["index"].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// New displays the form for creating a new post.
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	if err := pc.templates["new"].ExecuteTemplate(w, "layout", nil); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Show displays a single post with its comments.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendError(w, r, "Post not found", http.StatusNotFound)
		return
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusOK, presenter.NewPostPayload(post))
		return
	}

	data := struct {
		*models.Post
		Comments []*models.Comment
	}{
		Post:     post,
		Comments: post.Comments,
	}
	if err := pc.templates["show"].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Create handles creating a new post from a form or a JSON body.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req postRequest
	if wantsJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			sendError(w, r, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
		req.Title = r.FormValue("title")
		req.Content = r.FormValue("content")
		req.Image = r.FormValue("image")
		req.Tags = splitTags(r.FormValue("tags"))
		req.AuthorID, _ = strconv.Atoi(r.FormValue("author_id"))
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Image:    req.Image,
		AuthorID: req.AuthorID,
	}
	if err := pc.postService.CreatePost(post, req.Tags); err != nil {
		sendError(w, r, "Failed to create post: "+err.Error(), createStatus(err))
		return
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusCreated, presenter.NewPostPayload(post))
		return
	}
	http.Redirect(w, r, post.DetailURL(), http.StatusSeeOther)
}

// Edit handles updating an existing post.
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		sendError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post := &models.Post{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	}
	if err := pc.postService.UpdatePost(post, req.Tags); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, r, "Post not found", http.StatusNotFound)
			return
		}
		sendError(w, r, "Failed to update post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, presenter.NewPostPayload(post))
}

// Delete handles deleting a post and its comments.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		sendError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, r, "Post not found", http.StatusNotFound)
			return
		}
		sendError(w, r, "Failed to delete post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func createStatus(err error) int {
	if errors.Is(err, repositories.ErrNotFound) || strings.Contains(err.Error(), "invalid") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// splitTags turns a comma separated form value into tag names.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			tags = append(tags, name)
		}
	}
	return tags
}
