// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// CoursesSection holds the heading copy above the course catalog.
type CoursesSection struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Course is one workshop or course offering. Duration and StartDate are
// free-form text shown verbatim on the card; Capacity is the seat count.
// Courses have no display ordering — the catalog sorts by creation date.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Duration    string    `json:"duration"`
	StartDate   string    `json:"start_date"`
	Capacity    int       `json:"capacity"`
	Category    string    `json:"category"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CoursePatch carries a partial update for a course.
type CoursePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Duration    *string `json:"duration"`
	StartDate   *string `json:"start_date"`
	Capacity    *int    `json:"capacity"`
	Category    *string `json:"category"`
	Published   *bool   `json:"published"`
}

// CoursesData bundles the section with its course catalog.
type CoursesData struct {
	Section *CoursesSection `json:"section"`
	Courses []Course        `json:"courses"`
}
