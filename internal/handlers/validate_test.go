// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"

	"pjoxante/internal/models"
)

func TestValidateHeroSection(t *testing.T) {
	ok := &models.HeroSection{Tagline: "Transformando comunidades", Beneficiaries: 1200}
	if msg := validateHeroSection(ok); msg != "" {
		t.Errorf("valid hero rejected: %q", msg)
	}

	blank := &models.HeroSection{Tagline: "   "}
	if msg := validateHeroSection(blank); msg == "" {
		t.Error("blank tagline accepted")
	}

	negative := &models.HeroSection{Tagline: "t", Events: -1}
	if msg := validateHeroSection(negative); msg == "" {
		t.Error("negative counter accepted")
	}
}

func TestValidateAboutSectionRequiresAllTexts(t *testing.T) {
	s := &models.AboutSection{
		Title:        "Sobre la Casa",
		IntroText:    "intro",
		WhatWeDoText: "qué",
		HowWeDoText:  "cómo",
	}
	if msg := validateAboutSection(s); msg != "" {
		t.Errorf("valid section rejected: %q", msg)
	}

	s.HowWeDoText = ""
	if msg := validateAboutSection(s); msg == "" {
		t.Error("missing how_we_do_text accepted")
	}
}

func TestValidateTitleLength(t *testing.T) {
	long := strings.Repeat("x", maxTitleLen+1)
	s := &models.ValuesSection{Title: long}
	if msg := validateValuesSection(s); msg == "" {
		t.Error("over-long title accepted")
	}

	exact := strings.Repeat("x", maxTitleLen)
	if msg := validateValuesSection(&models.ValuesSection{Title: exact}); msg != "" {
		t.Errorf("title at the limit rejected: %q", msg)
	}
}

func TestValidateCourse(t *testing.T) {
	c := &models.Course{Title: "Huertos urbanos", Description: "Taller práctico", Capacity: 20}
	if msg := validateCourse(c); msg != "" {
		t.Errorf("valid course rejected: %q", msg)
	}

	c.Capacity = -3
	if msg := validateCourse(c); msg == "" {
		t.Error("negative capacity accepted")
	}
}

func TestValidateBlogPostRequiresBody(t *testing.T) {
	p := &models.BlogPost{Title: "Nota", Body: "## Hola"}
	if msg := validateBlogPost(p); msg != "" {
		t.Errorf("valid post rejected: %q", msg)
	}

	p.Body = ""
	if msg := validateBlogPost(p); msg == "" {
		t.Error("empty body accepted")
	}
}
