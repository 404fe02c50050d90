// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"github.com/google/uuid"

	"pjoxante/internal/models"
)

// BlogStore handles the publications section and its posts. Post bodies
// are stored as Markdown source; rendering happens on the public path.
type BlogStore struct {
	*Domain[models.BlogSection, models.BlogPost]
}

// NewBlogStore creates a BlogStore with the given database connection.
func NewBlogStore(db *sql.DB) *BlogStore {
	section := SectionMeta[models.BlogSection]{
		Table:   "blog_section",
		Columns: []string{"title", "subtitle"},
		Args: func(s *models.BlogSection) []any {
			return []any{s.Title, s.Subtitle}
		},
		Scan: func(row RowScanner, s *models.BlogSection) error {
			return row.Scan(&s.ID, &s.Title, &s.Subtitle,
				&s.Published, &s.CreatedAt, &s.UpdatedAt)
		},
		Published: func(s *models.BlogSection) bool { return s.Published },
	}

	item := ItemMeta[models.BlogPost]{
		Table:   "blog_posts",
		Columns: []string{"title", "excerpt", "body", "image_url"},
		Args: func(i *models.BlogPost) []any {
			return []any{i.Title, i.Excerpt, i.Body, i.ImageURL}
		},
		Scan: func(row RowScanner, i *models.BlogPost) error {
			return row.Scan(&i.ID, &i.Title, &i.Excerpt, &i.Body, &i.ImageURL,
				&i.OrderIndex, &i.Published, &i.CreatedAt, &i.UpdatedAt)
		},
		Published: func(i *models.BlogPost) bool { return i.Published },
		Ordered:   true,
	}

	return &BlogStore{NewDomain(db, section, item)}
}

// ReadPublic returns the published blog view model.
func (s *BlogStore) ReadPublic() (*models.BlogData, error) {
	d, err := s.Domain.ReadPublic()
	if err != nil {
		return nil, err
	}
	return &models.BlogData{Section: d.Section, Posts: d.Items}, nil
}

// ReadAdmin returns the unfiltered blog view model.
func (s *BlogStore) ReadAdmin() (*models.BlogData, error) {
	d, err := s.Domain.ReadAdmin()
	if err != nil {
		return nil, err
	}
	return &models.BlogData{Section: d.Section, Posts: d.Items}, nil
}

// UpdatePost patches one publication by id.
func (s *BlogStore) UpdatePost(id uuid.UUID, p models.BlogPostPatch) (*models.BlogPost, error) {
	var fields []Field
	if p.Title != nil {
		fields = append(fields, Field{"title", *p.Title})
	}
	if p.Excerpt != nil {
		fields = append(fields, Field{"excerpt", *p.Excerpt})
	}
	if p.Body != nil {
		fields = append(fields, Field{"body", *p.Body})
	}
	if p.ImageURL != nil {
		fields = append(fields, Field{"image_url", *p.ImageURL})
	}
	if p.OrderIndex != nil {
		fields = append(fields, Field{"order_index", *p.OrderIndex})
	}
	if p.Published != nil {
		fields = append(fields, Field{"published", *p.Published})
	}
	return s.Items.Update(id, fields)
}
