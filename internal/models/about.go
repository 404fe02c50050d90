// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// AboutSection holds the "Sobre la Casa" copy: an introduction plus the
// what-we-do and how-we-do texts.
type AboutSection struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	IntroText    string    `json:"intro_text"`
	WhatWeDoText string    `json:"what_we_do_text"`
	HowWeDoText  string    `json:"how_we_do_text"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AboutImage is one photo in the about carousel. OrderIndex controls the
// carousel sequence.
type AboutImage struct {
	ID         uuid.UUID `json:"id"`
	ImageURL   string    `json:"image_url"`
	AltText    string    `json:"alt_text"`
	OrderIndex int       `json:"order_index"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AboutImagePatch carries a partial update for an about image. Nil fields
// are left untouched.
type AboutImagePatch struct {
	ImageURL   *string `json:"image_url"`
	AltText    *string `json:"alt_text"`
	OrderIndex *int    `json:"order_index"`
	Published  *bool   `json:"published"`
}

// AboutData bundles the section with its carousel images.
type AboutData struct {
	Section *AboutSection `json:"section"`
	Images  []AboutImage  `json:"images"`
}
