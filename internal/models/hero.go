// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

// Package models defines the content entities served by the site: one
// singleton section per domain plus, for most domains, a collection of
// items. Every entity carries a published flag that gates visibility on
// the public read path.
package models

import (
	"time"

	"github.com/google/uuid"
)

// HeroSection is the landing banner: tagline, impact counters, and the
// logo/background artwork. It has no item collection.
type HeroSection struct {
	ID                 uuid.UUID `json:"id"`
	Tagline            string    `json:"tagline"`
	Beneficiaries      int       `json:"beneficiaries"`
	Events             int       `json:"events"`
	ActiveProjects     int       `json:"active_projects"`
	LogoURL            string    `json:"logo_url"`
	BackgroundImageURL string    `json:"background_image_url"`
	Published          bool      `json:"published"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// HeroData is the hero view model. Section is nil when no published
// hero exists; the page renders its default banner in that case.
type HeroData struct {
	Section *HeroSection `json:"section"`
}
