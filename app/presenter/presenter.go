package presenter

import (
	"inkwell/app/models"
	"inkwell/app/pagination"
)

// DateFormat renders publication dates the way the templates show them,
// e.g. "March 01, 2025".
const DateFormat = "January 02, 2006"

// PostPayload is the wire shape of one post in list and search
// responses. Tags are comma-joined; Category is the first tag's name or
// "Other" when the post has none.
type PostPayload struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	Tags     string  `json:"tags"`
	Image    *string `json:"image,omitempty"`
	PubDate  string  `json:"pub_date"`
	Author   string  `json:"author"`
	URL      string  `json:"url"`
}

// ListPayload is the envelope for paginated post listings.
type ListPayload struct {
	BlogPosts   []PostPayload `json:"blog_posts"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
}

// SearchPayload extends the listing envelope with the match count.
type SearchPayload struct {
	ListPayload
	TotalResults int `json:"total_results"`
}

// ErrorPayload keeps the listing envelope shape on failure so clients
// can render an empty state without special-casing.
type ErrorPayload struct {
	Error       string        `json:"error"`
	BlogPosts   []PostPayload `json:"blog_posts"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
}

// SearchErrorPayload is ErrorPayload plus a zero match count.
type SearchErrorPayload struct {
	ErrorPayload
	TotalResults int `json:"total_results"`
}

// NewPostPayload shapes a single post for the API.
func NewPostPayload(post *models.Post) PostPayload {
	payload := PostPayload{
		ID:       post.ID,
		Title:    post.Title,
		Content:  post.Content,
		Category: post.PrimaryCategory(),
		Tags:     post.TagsDisplay(),
		PubDate:  post.PubDate.Format(DateFormat),
		Author:   post.AuthorDisplay(),
		URL:      post.DetailURL(),
	}
	if post.Image != "" {
		image := post.Image
		payload.Image = &image
	}
	return payload
}

// NewListPayload shapes one page of posts for the API.
func NewListPayload(page pagination.Page) ListPayload {
	posts := make([]PostPayload, 0, len(page.Items))
	for _, post := range page.Items {
		posts = append(posts, NewPostPayload(post))
	}
	return ListPayload{
		BlogPosts:   posts,
		HasNext:     page.HasNext,
		HasPrevious: page.HasPrevious,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}
}

// NewSearchPayload shapes one page of search results for the API.
func NewSearchPayload(page pagination.Page) SearchPayload {
	return SearchPayload{
		ListPayload:  NewListPayload(page),
		TotalResults: page.TotalCount,
	}
}

// NewErrorPayload builds the empty-state envelope with a message.
func NewErrorPayload(message string) ErrorPayload {
	return ErrorPayload{
		Error:       message,
		BlogPosts:   []PostPayload{},
		CurrentPage: 1,
		TotalPages:  1,
	}
}

// NewSearchErrorPayload builds the search flavor of the error envelope.
func NewSearchErrorPayload(message string) SearchErrorPayload {
	return SearchErrorPayload{ErrorPayload: NewErrorPayload(message)}
}
