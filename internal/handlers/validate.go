// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pjoxante/internal/models"
)

// Field limits. Titles and taglines are headline copy; body text is
// bounded only by the request size cap.
const (
	maxTitleLen = 200
	maxLineLen  = 500
)

// requireText checks a required text field: non-blank and within limit.
// Returns "" when valid, otherwise a visitor-facing message.
func requireText(label, value string, limit int) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("El campo %q es obligatorio.", label)
	}
	if utf8.RuneCountInString(value) > limit {
		return fmt.Sprintf("El campo %q supera el límite de %d caracteres.", label, limit)
	}
	return ""
}

// boundText checks an optional text field against its limit.
func boundText(label, value string, limit int) string {
	if utf8.RuneCountInString(value) > limit {
		return fmt.Sprintf("El campo %q supera el límite de %d caracteres.", label, limit)
	}
	return ""
}

// nonNegative checks a counter field.
func nonNegative(label string, value int) string {
	if value < 0 {
		return fmt.Sprintf("El campo %q no puede ser negativo.", label)
	}
	return ""
}

// firstError returns the first non-empty message.
func firstError(msgs ...string) string {
	for _, m := range msgs {
		if m != "" {
			return m
		}
	}
	return ""
}

func validateHeroSection(s *models.HeroSection) string {
	return firstError(
		requireText("tagline", s.Tagline, maxLineLen),
		nonNegative("beneficiaries", s.Beneficiaries),
		nonNegative("events", s.Events),
		nonNegative("active_projects", s.ActiveProjects),
		boundText("logo_url", s.LogoURL, maxLineLen),
		boundText("background_image_url", s.BackgroundImageURL, maxLineLen),
	)
}

func validateAboutSection(s *models.AboutSection) string {
	return firstError(
		requireText("title", s.Title, maxTitleLen),
		requireText("intro_text", s.IntroText, maxBodySize),
		requireText("what_we_do_text", s.WhatWeDoText, maxBodySize),
		requireText("how_we_do_text", s.HowWeDoText, maxBodySize),
	)
}

func validateAboutImage(i *models.AboutImage) string {
	return firstError(
		requireText("image_url", i.ImageURL, maxLineLen),
		boundText("alt_text", i.AltText, maxLineLen),
	)
}

func validateValuesSection(s *models.ValuesSection) string {
	return firstError(
		requireText("title", s.Title, maxTitleLen),
		boundText("subtitle", s.Subtitle, maxLineLen),
	)
}

func validateValue(v *models.Value) string {
	return firstError(
		requireText("icon", v.Icon, maxTitleLen),
		requireText("title", v.Title, maxTitleLen),
		requireText("description", v.Description, maxBodySize),
	)
}

func validateProjectsSection(s *models.ProjectsSection) string {
	return firstError(
		requireText("title", s.Title, maxTitleLen),
		boundText("subtitle", s.Subtitle, maxLineLen),
		boundText("active_projects", s.ActiveProjects, maxTitleLen),
		boundText("communities", s.Communities, maxTitleLen),
		boundText("beneficiaries", s.Beneficiaries, maxTitleLen),
	)
}

func validateProject(p *models.Project) string {
	return firstError(
		requireText("title", p.Title, maxTitleLen),
		requireText("image_url", p.ImageURL, maxLineLen),
		boundText("alt_text", p.AltText, maxLineLen),
		boundText("description", p.Description, maxBodySize),
	)
}

func validateCoursesSection(s *models.CoursesSection) string {
	return firstError(
		requireText("title", s.Title, maxTitleLen),
		boundText("subtitle", s.Subtitle, maxLineLen),
	)
}

func validateCourse(c *models.Course) string {
	return firstError(
		requireText("title", c.Title, maxTitleLen),
		requireText("description", c.Description, maxBodySize),
		boundText("image_url", c.ImageURL, maxLineLen),
		boundText("duration", c.Duration, maxTitleLen),
		boundText("start_date", c.StartDate, maxTitleLen),
		nonNegative("capacity", c.Capacity),
		boundText("category", c.Category, maxTitleLen),
	)
}

func validateBlogSection(s *models.BlogSection) string {
	return firstError(
		requireText("title", s.Title, maxTitleLen),
		boundText("subtitle", s.Subtitle, maxLineLen),
	)
}

func validateBlogPost(p *models.BlogPost) string {
	return firstError(
		requireText("title", p.Title, maxTitleLen),
		boundText("excerpt", p.Excerpt, maxLineLen),
		requireText("body", p.Body, maxBodySize),
		boundText("image_url", p.ImageURL, maxLineLen),
	)
}
