// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectsSection holds the projects heading plus the impact figures shown
// alongside the carousel. The figures are free-form text ("12+", "3,400")
// so the admin controls formatting.
type ProjectsSection struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle"`
	ActiveProjects string    `json:"active_projects"`
	Communities    string    `json:"communities"`
	Beneficiaries  string    `json:"beneficiaries"`
	Published      bool      `json:"published"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Project is one entry in the projects carousel.
type Project struct {
	ID          uuid.UUID `json:"id"`
	ImageURL    string    `json:"image_url"`
	AltText     string    `json:"alt_text"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OrderIndex  int       `json:"order_index"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectPatch carries a partial update for a project.
type ProjectPatch struct {
	ImageURL    *string `json:"image_url"`
	AltText     *string `json:"alt_text"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
	Published   *bool   `json:"published"`
}

// ProjectsData bundles the section with its projects.
type ProjectsData struct {
	Section  *ProjectsSection `json:"section"`
	Projects []Project        `json:"projects"`
}
