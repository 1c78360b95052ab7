package models

import (
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Normalize trims and title-cases the tag name so that "tech" and
// "Tech" resolve to the same tag.
func (t *Tag) Normalize() {
	t.Name = titleCaser.String(strings.TrimSpace(t.Name))
}

// EnsureSlug derives a URL-safe slug from the name when one was not
// supplied explicitly. The derivation is deterministic.
func (t *Tag) EnsureSlug() {
	if t.Slug == "" {
		t.Slug = slug.Make(t.Name)
	}
}

// Validate checks if the tag meets all validation requirements.
// Normalization runs first so validation sees the stored form.
func (t *Tag) Validate() error {
	t.Normalize()
	t.EnsureSlug()

	if err := validate.Struct(t); err != nil {
		return err
	}
	return nil
}
