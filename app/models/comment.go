package models

import (
	"strings"
	"time"
)

// Validate checks if the comment meets all validation requirements.
// The text is trimmed first; the 3-1000 character bounds apply to the
// trimmed value.
func (c *Comment) Validate() error {
	c.Text = strings.TrimSpace(c.Text)

	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation.
func (c *Comment) BeforeCreate() {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
}
