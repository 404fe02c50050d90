// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogSection holds the heading copy on the publications page.
type BlogSection struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogPost is one publication. Body is Markdown source; the public read
// path renders it to HTML before serving.
type BlogPost struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	Body       string    `json:"body"`
	ImageURL   string    `json:"image_url"`
	OrderIndex int       `json:"order_index"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// BodyHTML is populated on the public path from Body. Never stored.
	BodyHTML string `json:"body_html,omitempty"`
}

// BlogPostPatch carries a partial update for a publication.
type BlogPostPatch struct {
	Title      *string `json:"title"`
	Excerpt    *string `json:"excerpt"`
	Body       *string `json:"body"`
	ImageURL   *string `json:"image_url"`
	OrderIndex *int    `json:"order_index"`
	Published  *bool   `json:"published"`
}

// BlogData bundles the section with its publications.
type BlogData struct {
	Section *BlogSection `json:"section"`
	Posts   []BlogPost   `json:"posts"`
}
