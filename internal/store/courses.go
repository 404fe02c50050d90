// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"github.com/google/uuid"

	"pjoxante/internal/models"
)

// CoursesStore handles the courses section and the course catalog.
// The catalog has no explicit display ordering; courses are listed by
// creation date.
type CoursesStore struct {
	*Domain[models.CoursesSection, models.Course]
}

// NewCoursesStore creates a CoursesStore with the given database connection.
func NewCoursesStore(db *sql.DB) *CoursesStore {
	section := SectionMeta[models.CoursesSection]{
		Table:   "courses_section",
		Columns: []string{"title", "subtitle"},
		Args: func(s *models.CoursesSection) []any {
			return []any{s.Title, s.Subtitle}
		},
		Scan: func(row RowScanner, s *models.CoursesSection) error {
			return row.Scan(&s.ID, &s.Title, &s.Subtitle,
				&s.Published, &s.CreatedAt, &s.UpdatedAt)
		},
		Published: func(s *models.CoursesSection) bool { return s.Published },
	}

	item := ItemMeta[models.Course]{
		Table:   "courses",
		Columns: []string{"title", "description", "image_url", "duration", "start_date", "capacity", "category"},
		Args: func(i *models.Course) []any {
			return []any{i.Title, i.Description, i.ImageURL, i.Duration, i.StartDate, i.Capacity, i.Category}
		},
		Scan: func(row RowScanner, i *models.Course) error {
			return row.Scan(&i.ID, &i.Title, &i.Description, &i.ImageURL, &i.Duration,
				&i.StartDate, &i.Capacity, &i.Category,
				&i.Published, &i.CreatedAt, &i.UpdatedAt)
		},
		Published: func(i *models.Course) bool { return i.Published },
	}

	return &CoursesStore{NewDomain(db, section, item)}
}

// ReadPublic returns the published courses view model.
func (s *CoursesStore) ReadPublic() (*models.CoursesData, error) {
	d, err := s.Domain.ReadPublic()
	if err != nil {
		return nil, err
	}
	return &models.CoursesData{Section: d.Section, Courses: d.Items}, nil
}

// ReadAdmin returns the unfiltered courses view model.
func (s *CoursesStore) ReadAdmin() (*models.CoursesData, error) {
	d, err := s.Domain.ReadAdmin()
	if err != nil {
		return nil, err
	}
	return &models.CoursesData{Section: d.Section, Courses: d.Items}, nil
}

// UpdateCourse patches one course by id.
func (s *CoursesStore) UpdateCourse(id uuid.UUID, p models.CoursePatch) (*models.Course, error) {
	var fields []Field
	if p.Title != nil {
		fields = append(fields, Field{"title", *p.Title})
	}
	if p.Description != nil {
		fields = append(fields, Field{"description", *p.Description})
	}
	if p.ImageURL != nil {
		fields = append(fields, Field{"image_url", *p.ImageURL})
	}
	if p.Duration != nil {
		fields = append(fields, Field{"duration", *p.Duration})
	}
	if p.StartDate != nil {
		fields = append(fields, Field{"start_date", *p.StartDate})
	}
	if p.Capacity != nil {
		fields = append(fields, Field{"capacity", *p.Capacity})
	}
	if p.Category != nil {
		fields = append(fields, Field{"category", *p.Category})
	}
	if p.Published != nil {
		fields = append(fields, Field{"published", *p.Published})
	}
	return s.Items.Update(id, fields)
}
