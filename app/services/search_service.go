package services

import (
	"fmt"
	"strconv"
	"strings"

	"inkwell/app/models"
	"inkwell/app/pagination"
	"inkwell/app/repositories"

	"go.uber.org/zap"
)

// MaxQueryLength caps search strings; anything longer is truncated,
// never rejected.
const MaxQueryLength = 100

// ParsePage interprets a raw page parameter. Non-numeric or
// non-positive values silently become page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// SanitizeQuery trims the search string and truncates it to
// MaxQueryLength characters.
func SanitizeQuery(query string) string {
	query = strings.TrimSpace(query)
	if runes := []rune(query); len(runes) > MaxQueryLength {
		query = string(runes[:MaxQueryLength])
	}
	return query
}

// SearchResult is one page of posts matching a query, with the
// sanitized query echoed back.
type SearchResult struct {
	pagination.Page
	Query string
}

// SearchService turns a raw search string and page number into a
// filtered, deduplicated, newest-first page of posts. An empty query
// applies no filter, so the same path serves plain listing.
type SearchService struct {
	postRepo repositories.PostRepository
	resolver *resolver
	logger   *zap.SugaredLogger
}

// NewSearchService creates a new SearchService.
func NewSearchService(
	postRepo repositories.PostRepository,
	tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository,
	logger *zap.SugaredLogger,
) *SearchService {
	return &SearchService{
		postRepo: postRepo,
		resolver: newResolver(tagRepo, userRepo),
		logger:   logger,
	}
}

// Search runs the query against title, content and tag names
// (case-insensitive substring, OR semantics) and returns the requested
// page. A post matching through several fields or several tags appears
// exactly once. Read-only and idempotent for unchanged store state.
func (s *SearchService) Search(query string, page int) (*SearchResult, error) {
	query = SanitizeQuery(query)
	if page < 1 {
		page = 1
	}

	posts, err := s.postRepo.ListAll()
	if err != nil {
		s.logger.Errorw("search failed to list posts", "query", query, "error", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if err := s.resolver.hydrate(posts...); err != nil {
		s.logger.Errorw("search failed to resolve posts", "query", query, "error", err)
		return nil, err
	}

	if query != "" {
		posts = filterPosts(posts, query)
	}

	return &SearchResult{
		Page:  pagination.Paginate(posts, page, pagination.PerPage),
		Query: query,
	}, nil
}

// filterPosts keeps posts matching the query. Iterating posts (not
// tags) guarantees each post appears at most once in the result.
func filterPosts(posts []*models.Post, query string) []*models.Post {
	needle := strings.ToLower(query)
	matched := make([]*models.Post, 0, len(posts))
	for _, post := range posts {
		if postMatches(post, needle) {
			matched = append(matched, post)
		}
	}
	return matched
}

func postMatches(post *models.Post, needle string) bool {
	if strings.Contains(strings.ToLower(post.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(post.Content), needle) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(strings.ToLower(tag.Name), needle) {
			return true
		}
	}
	return false
}
