// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"github.com/google/uuid"

	"pjoxante/internal/models"
)

// AboutStore handles the "Sobre la Casa" section and its image carousel.
type AboutStore struct {
	*Domain[models.AboutSection, models.AboutImage]
}

// NewAboutStore creates an AboutStore with the given database connection.
func NewAboutStore(db *sql.DB) *AboutStore {
	section := SectionMeta[models.AboutSection]{
		Table:   "about_section",
		Columns: []string{"title", "intro_text", "what_we_do_text", "how_we_do_text"},
		Args: func(s *models.AboutSection) []any {
			return []any{s.Title, s.IntroText, s.WhatWeDoText, s.HowWeDoText}
		},
		Scan: func(row RowScanner, s *models.AboutSection) error {
			return row.Scan(&s.ID, &s.Title, &s.IntroText, &s.WhatWeDoText, &s.HowWeDoText,
				&s.Published, &s.CreatedAt, &s.UpdatedAt)
		},
		Published: func(s *models.AboutSection) bool { return s.Published },
	}

	item := ItemMeta[models.AboutImage]{
		Table:   "about_images",
		Columns: []string{"image_url", "alt_text"},
		Args: func(i *models.AboutImage) []any {
			return []any{i.ImageURL, i.AltText}
		},
		Scan: func(row RowScanner, i *models.AboutImage) error {
			return row.Scan(&i.ID, &i.ImageURL, &i.AltText, &i.OrderIndex,
				&i.Published, &i.CreatedAt, &i.UpdatedAt)
		},
		Published: func(i *models.AboutImage) bool { return i.Published },
		Ordered:   true,
	}

	return &AboutStore{NewDomain(db, section, item)}
}

// ReadPublic returns the published about view model.
func (s *AboutStore) ReadPublic() (*models.AboutData, error) {
	d, err := s.Domain.ReadPublic()
	if err != nil {
		return nil, err
	}
	return &models.AboutData{Section: d.Section, Images: d.Items}, nil
}

// ReadAdmin returns the unfiltered about view model.
func (s *AboutStore) ReadAdmin() (*models.AboutData, error) {
	d, err := s.Domain.ReadAdmin()
	if err != nil {
		return nil, err
	}
	return &models.AboutData{Section: d.Section, Images: d.Items}, nil
}

// UpdateImage patches one carousel image by id.
func (s *AboutStore) UpdateImage(id uuid.UUID, p models.AboutImagePatch) (*models.AboutImage, error) {
	var fields []Field
	if p.ImageURL != nil {
		fields = append(fields, Field{"image_url", *p.ImageURL})
	}
	if p.AltText != nil {
		fields = append(fields, Field{"alt_text", *p.AltText})
	}
	if p.OrderIndex != nil {
		fields = append(fields, Field{"order_index", *p.OrderIndex})
	}
	if p.Published != nil {
		fields = append(fields, Field{"published", *p.Published})
	}
	return s.Items.Update(id, fields)
}
