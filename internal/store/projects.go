// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"github.com/google/uuid"

	"pjoxante/internal/models"
)

// ProjectsStore handles the projects section and its carousel entries.
type ProjectsStore struct {
	*Domain[models.ProjectsSection, models.Project]
}

// NewProjectsStore creates a ProjectsStore with the given database connection.
func NewProjectsStore(db *sql.DB) *ProjectsStore {
	section := SectionMeta[models.ProjectsSection]{
		Table:   "projects_section",
		Columns: []string{"title", "subtitle", "active_projects", "communities", "beneficiaries"},
		Args: func(s *models.ProjectsSection) []any {
			return []any{s.Title, s.Subtitle, s.ActiveProjects, s.Communities, s.Beneficiaries}
		},
		Scan: func(row RowScanner, s *models.ProjectsSection) error {
			return row.Scan(&s.ID, &s.Title, &s.Subtitle, &s.ActiveProjects,
				&s.Communities, &s.Beneficiaries,
				&s.Published, &s.CreatedAt, &s.UpdatedAt)
		},
		Published: func(s *models.ProjectsSection) bool { return s.Published },
	}

	item := ItemMeta[models.Project]{
		Table:   "projects",
		Columns: []string{"image_url", "alt_text", "title", "description"},
		Args: func(i *models.Project) []any {
			return []any{i.ImageURL, i.AltText, i.Title, i.Description}
		},
		Scan: func(row RowScanner, i *models.Project) error {
			return row.Scan(&i.ID, &i.ImageURL, &i.AltText, &i.Title, &i.Description,
				&i.OrderIndex, &i.Published, &i.CreatedAt, &i.UpdatedAt)
		},
		Published: func(i *models.Project) bool { return i.Published },
		Ordered:   true,
	}

	return &ProjectsStore{NewDomain(db, section, item)}
}

// ReadPublic returns the published projects view model.
func (s *ProjectsStore) ReadPublic() (*models.ProjectsData, error) {
	d, err := s.Domain.ReadPublic()
	if err != nil {
		return nil, err
	}
	return &models.ProjectsData{Section: d.Section, Projects: d.Items}, nil
}

// ReadAdmin returns the unfiltered projects view model.
func (s *ProjectsStore) ReadAdmin() (*models.ProjectsData, error) {
	d, err := s.Domain.ReadAdmin()
	if err != nil {
		return nil, err
	}
	return &models.ProjectsData{Section: d.Section, Projects: d.Items}, nil
}

// UpdateProject patches one project by id.
func (s *ProjectsStore) UpdateProject(id uuid.UUID, p models.ProjectPatch) (*models.Project, error) {
	var fields []Field
	if p.ImageURL != nil {
		fields = append(fields, Field{"image_url", *p.ImageURL})
	}
	if p.AltText != nil {
		fields = append(fields, Field{"alt_text", *p.AltText})
	}
	if p.Title != nil {
		fields = append(fields, Field{"title", *p.Title})
	}
	if p.Description != nil {
		fields = append(fields, Field{"description", *p.Description})
	}
	if p.OrderIndex != nil {
		fields = append(fields, Field{"order_index", *p.OrderIndex})
	}
	if p.Published != nil {
		fields = append(fields, Field{"published", *p.Published})
	}
	return s.Items.Update(id, fields)
}
