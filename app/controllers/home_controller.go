package controllers

import (
	"html/template"
	"net/http"
	"path/filepath"

	"inkwell/app/models"
	"inkwell/app/presenter"
	"inkwell/app/services"
)

// HomeController serves the landing page with the cached latest posts.
type HomeController struct {
	homeService *services.HomeService
	templates   map[string]*template.Template
}

// NewHomeController creates a new HomeController.
func NewHomeController(homeService *services.HomeService, basePath string) *HomeController {
	return &HomeController{
		homeService: homeService,
		templates:   loadHomeTemplates(basePath),
	}
}

func loadHomeTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["home"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/home.html"),
	))
	return templates
}

// Home renders the landing page. A failed lookup degrades to an empty
// feed rather than an error page.
func (hc *HomeController) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := hc.homeService.LatestPosts()
	if err != nil {
		if wantsJSON(r) {
			sendJSON(w, http.StatusInternalServerError, presenter.NewErrorPayload("Failed to fetch latest posts"))
			return
		}
		posts = nil
	}

	if wantsJSON(r) {
		payloads := make([]presenter.PostPayload, 0, len(posts))
		for _, post := range posts {
			payloads = append(payloads, presenter.NewPostPayload(post))
		}
		sendJSON(w, http.StatusOK, map[string]interface{}{"blog_posts": payloads})
		return
	}

	data := struct {
		Posts []*models.Post
	}{
		Posts: posts,
	}
	if err := hc.templates["home"].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
