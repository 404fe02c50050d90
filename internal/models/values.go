// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ValuesSection holds the heading copy above the values grid.
type ValuesSection struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Value is one card in the organizational values grid. Icon is the name
// of the icon the frontend renders for it.
type Value struct {
	ID          uuid.UUID `json:"id"`
	Icon        string    `json:"icon"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OrderIndex  int       `json:"order_index"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValuePatch carries a partial update for a value card.
type ValuePatch struct {
	Icon        *string `json:"icon"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
	Published   *bool   `json:"published"`
}

// ValuesData bundles the section with its value cards.
type ValuesData struct {
	Section *ValuesSection `json:"section"`
	Values  []Value        `json:"values"`
}
