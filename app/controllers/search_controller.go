package controllers

import (
	"net/http"

	"inkwell/app/presenter"
	"inkwell/app/services"

	"go.uber.org/zap"
)

// SearchController serves the search endpoint. Responses are always the
// JSON search envelope; the search box on the site consumes it over
// AJAX.
type SearchController struct {
	searchService *services.SearchService
	logger        *zap.SugaredLogger
}

// NewSearchController creates a new SearchController.
func NewSearchController(searchService *services.SearchService, logger *zap.SugaredLogger) *SearchController {
	return &SearchController{searchService: searchService, logger: logger}
}

// Search runs a query from the "search" parameter against posts and
// returns the requested page. Malformed input is corrected, never
// rejected; a pipeline failure degrades to the empty-state envelope.
func (sc *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search")
	page := services.ParsePage(r.URL.Query().Get("page"))

	result, err := sc.searchService.Search(query, page)
	if err != nil {
		sc.logger.Errorw("search request failed", "query", services.SanitizeQuery(query), "error", err)
		sendJSON(w, http.StatusInternalServerError, presenter.NewSearchErrorPayload("Search temporarily unavailable"))
		return
	}

	sendJSON(w, http.StatusOK, presenter.NewSearchPayload(result.Page))
}
