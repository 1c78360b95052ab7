package controllers

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments.
type CommentController struct {
	commentService *services.CommentService
	templates      map[string]*template.Template
}

// NewCommentController creates a new CommentController.
func NewCommentController(commentService *services.CommentService, basePath string) *CommentController {
	return &CommentController{
		commentService: commentService,
		templates:      loadCommentTemplates(basePath),
	}
}

// loadCommentTemplates loads and parses all comment templates.
func loadCommentTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["new"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/comments/new.html"),
	))
	templates["list"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/comments/list.html"),
		filepath.Join(basePath, "app/views/shared/comments.html"),
	))
	return templates
}

// commentRequest is the JSON body for create and edit.
type commentRequest struct {
	Text     string `json:"text"`
	AuthorID int    `json:"author_id"`
}

// New displays the form for creating a new comment.
func (cc *CommentController) New(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := strconv.Atoi(vars["postId"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	data := struct {
		PostID int
	}{
		PostID: postID,
	}
	if err := cc.templates["new"].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Index lists all comments on a post, oldest first.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := strconv.Atoi(vars["postId"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	comments, err := cc.commentService.ListPostComments(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, r, "Post not found", http.StatusNotFound)
			return
		}
		sendError(w, r, "Failed to fetch comments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusOK, comments)
		return
	}

	data := struct {
		PostID   int
		Comments []*models.Comment
	}{
		PostID:   postID,
		Comments: comments,
	}
	if err := cc.templates["list"].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Create handles creating a new comment on a post.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vars := mux.Vars(r)
	postID, err := strconv.Atoi(vars["postId"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	var req commentRequest
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
		req.Text = r.FormValue("text")
		req.AuthorID, _ = strconv.Atoi(r.FormValue("author_id"))
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: req.AuthorID,
		Text:     req.Text,
	}
	if err := cc.commentService.CreateComment(comment); err != nil {
		sendError(w, r, "Failed to create comment: "+err.Error(), createStatus(err))
		return
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusCreated, comment)
		return
	}
	http.Redirect(w, r, "/posts/"+strconv.Itoa(postID), http.StatusSeeOther)
}

// Edit handles updating a comment's text.
func (cc *CommentController) Edit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		sendError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	comment := &models.Comment{ID: id, Text: req.Text}
	if err := cc.commentService.UpdateComment(comment); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, r, "Comment not found", http.StatusNotFound)
			return
		}
		sendError(w, r, "Failed to update comment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, comment)
}

// Delete handles deleting a comment.
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		sendError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	if err := cc.commentService.DeleteComment(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, r, "Comment not found", http.StatusNotFound)
			return
		}
		sendError(w, r, "Failed to delete comment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
