package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User is an author identity referenced by posts and comments.
type User struct {
	ID           int       `json:"id" validate:"gte=0"`
	Username     string    `json:"username" validate:"required,min=2,max=50"`
	DisplayName  string    `json:"display_name" validate:"max=100"`
	PasswordHash string    `json:"-" validate:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Tag is a normalized label used to categorize posts. Tags are shared
// across posts and survive post deletion.
type Tag struct {
	ID        int       `json:"id" validate:"gte=0"`
	Name      string    `json:"name" validate:"required,max=50"`
	Slug      string    `json:"slug" validate:"max=50"`
	CreatedAt time.Time `json:"created_at"`
}

// Post represents a blog post. TagIDs is ordered: the first tag doubles
// as the post's primary category for display.
type Post struct {
	ID       int       `json:"id" validate:"gte=0"`
	Title    string    `json:"title" validate:"required,max=100"`
	Content  string    `json:"content" validate:"required"`
	PubDate  time.Time `json:"pub_date"`
	AuthorID int       `json:"author_id" validate:"required,gt=0"`
	Image    string    `json:"image,omitempty"`
	TagIDs   []int     `json:"tag_ids"`

	// Resolved associations, populated by the service layer.
	Tags     []*Tag     `json:"tags,omitempty" validate:"-"`
	Author   *User      `json:"author,omitempty" validate:"-"`
	Comments []*Comment `json:"comments,omitempty" validate:"-"`
}

// Comment represents a comment on a blog post. Comments are deleted
// together with their post.
type Comment struct {
	ID        int       `json:"id" validate:"gte=0"`
	PostID    int       `json:"post_id" validate:"required,gt=0"`
	AuthorID  int       `json:"author_id" validate:"required,gt=0"`
	Text      string    `json:"text" validate:"required,min=3,max=1000"`
	CreatedAt time.Time `json:"created_at"`

	Author *User `json:"author,omitempty" validate:"-"`
}
