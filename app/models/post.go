package models

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks if the post meets all validation requirements.
// Title and content are trimmed before validation, so whitespace-only
// values are rejected.
func (p *Post) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)

	if err := validate.Struct(p); err != nil {
		return err
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation.
// PubDate is assigned once and never changes afterwards.
func (p *Post) BeforeCreate() {
	if p.PubDate.IsZero() {
		p.PubDate = time.Now()
	}
}

// PrimaryCategory returns the first tag's name, or "Other" when the
// post has no tags.
func (p *Post) PrimaryCategory() string {
	if len(p.Tags) > 0 {
		return p.Tags[0].Name
	}
	return "Other"
}

// TagsDisplay returns a comma-separated string of tag names for display.
func (p *Post) TagsDisplay() string {
	names := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		names = append(names, tag.Name)
	}
	return strings.Join(names, ", ")
}

// AuthorDisplay returns the author's display name, falling back to the
// username and finally to the empty string.
func (p *Post) AuthorDisplay() string {
	if p.Author == nil {
		return ""
	}
	return p.Author.Display()
}

// DetailURL returns the detail-page path for the post.
func (p *Post) DetailURL() string {
	return fmt.Sprintf("/posts/%d", p.ID)
}
