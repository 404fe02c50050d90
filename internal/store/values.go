// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"github.com/google/uuid"

	"pjoxante/internal/models"
)

// ValuesStore handles the organizational values section and its cards.
type ValuesStore struct {
	*Domain[models.ValuesSection, models.Value]
}

// NewValuesStore creates a ValuesStore with the given database connection.
func NewValuesStore(db *sql.DB) *ValuesStore {
	section := SectionMeta[models.ValuesSection]{
		Table:   "values_section",
		Columns: []string{"title", "subtitle"},
		Args: func(s *models.ValuesSection) []any {
			return []any{s.Title, s.Subtitle}
		},
		Scan: func(row RowScanner, s *models.ValuesSection) error {
			return row.Scan(&s.ID, &s.Title, &s.Subtitle,
				&s.Published, &s.CreatedAt, &s.UpdatedAt)
		},
		Published: func(s *models.ValuesSection) bool { return s.Published },
	}

	item := ItemMeta[models.Value]{
		Table:   "site_values",
		Columns: []string{"icon", "title", "description"},
		Args: func(i *models.Value) []any {
			return []any{i.Icon, i.Title, i.Description}
		},
		Scan: func(row RowScanner, i *models.Value) error {
			return row.Scan(&i.ID, &i.Icon, &i.Title, &i.Description, &i.OrderIndex,
				&i.Published, &i.CreatedAt, &i.UpdatedAt)
		},
		Published: func(i *models.Value) bool { return i.Published },
		Ordered:   true,
	}

	return &ValuesStore{NewDomain(db, section, item)}
}

// ReadPublic returns the published values view model.
func (s *ValuesStore) ReadPublic() (*models.ValuesData, error) {
	d, err := s.Domain.ReadPublic()
	if err != nil {
		return nil, err
	}
	return &models.ValuesData{Section: d.Section, Values: d.Items}, nil
}

// ReadAdmin returns the unfiltered values view model.
func (s *ValuesStore) ReadAdmin() (*models.ValuesData, error) {
	d, err := s.Domain.ReadAdmin()
	if err != nil {
		return nil, err
	}
	return &models.ValuesData{Section: d.Section, Values: d.Items}, nil
}

// UpdateValue patches one value card by id.
func (s *ValuesStore) UpdateValue(id uuid.UUID, p models.ValuePatch) (*models.Value, error) {
	var fields []Field
	if p.Icon != nil {
		fields = append(fields, Field{"icon", *p.Icon})
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
