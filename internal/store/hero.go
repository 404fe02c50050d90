// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"pjoxante/internal/models"
)

// HeroStore handles the hero banner. It is the one section-only domain:
// there is no item collection behind it.
type HeroStore struct {
	Sections *SectionRepo[models.HeroSection]
}

// NewHeroStore creates a HeroStore with the given database connection.
func NewHeroStore(db *sql.DB) *HeroStore {
	meta := SectionMeta[models.HeroSection]{
		Table: "hero_section",
		Columns: []string{"tagline", "beneficiaries", "events", "active_projects",
			"logo_url", "background_image_url"},
		Args: func(s *models.HeroSection) []any {
			return []any{s.Tagline, s.Beneficiaries, s.Events, s.ActiveProjects,
				s.LogoURL, s.BackgroundImageURL}
		},
		Scan: func(row RowScanner, s *models.HeroSection) error {
			return row.Scan(&s.ID, &s.Tagline, &s.Beneficiaries, &s.Events,
				&s.ActiveProjects, &s.LogoURL, &s.BackgroundImageURL,
				&s.Published, &s.CreatedAt, &s.UpdatedAt)
		},
		Published: func(s *models.HeroSection) bool { return s.Published },
	}
	return &HeroStore{Sections: NewSectionRepo(db, meta)}
}

// ReadPublic returns the published hero view model, with a nil section
// when none is published.
func (s *HeroStore) ReadPublic() (*models.HeroData, error) {
	section, err := s.Sections.FindPublished()
	if err != nil {
		return nil, err
	}
	return &models.HeroData{Section: section}, nil
}

// ReadAdmin returns the hero view model regardless of published flag.
func (s *HeroStore) ReadAdmin() (*models.HeroData, error) {
	section, err := s.Sections.Find()
	if err != nil {
		return nil, err
	}
	return &models.HeroData{Section: section}, nil
}
