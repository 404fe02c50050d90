// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"pjoxante/internal/models"
)

func TestAboutSectionUpsertKeepsSingleRow(t *testing.T) {
	db := testDB(t)
	s := NewAboutStore(db)
	cleanTables(t, db, "about_images", "about_section")

	first, err := s.Sections.Upsert(&models.AboutSection{
		Title:        "Sobre la Casa",
		IntroText:    "Primer texto",
		WhatWeDoText: "Qué hacemos",
		HowWeDoText:  "Cómo lo hacemos",
		Published:    true,
	})
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}

	second, err := s.Sections.Upsert(&models.AboutSection{
		Title:        "Sobre la Casa",
		IntroText:    "Texto corregido",
		WhatWeDoText: "Qué hacemos",
		HowWeDoText:  "Cómo lo hacemos",
		Published:    true,
	})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("section id changed across upserts: %s vs %s", first.ID, second.ID)
	}
	if second.IntroText != "Texto corregido" {
		t.Errorf("intro_text: got %q, want %q", second.IntroText, "Texto corregido")
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM about_section").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("section rows: got %d, want 1", count)
	}
}

func TestAboutSectionConcurrentUpsert(t *testing.T) {
	db := testDB(t)
	s := NewAboutStore(db)
	cleanTables(t, db, "about_section")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = s.Sections.Upsert(&models.AboutSection{
				Title:        "Sobre la Casa",
				IntroText:    "Concurrente",
				WhatWeDoText: "a",
				HowWeDoText:  "b",
				Published:    true,
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("concurrent Upsert %d: %v", i, err)
		}
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM about_section").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("section rows after concurrent upserts: got %d, want 1", count)
	}
}

func TestAboutPublicFiltersUnpublished(t *testing.T) {
	db := testDB(t)
	s := NewAboutStore(db)
	cleanTables(t, db, "about_images", "about_section")

	if _, err := s.Sections.Upsert(&models.AboutSection{
		Title:        "Borrador",
		IntroText:    "a",
		WhatWeDoText: "b",
		HowWeDoText:  "c",
		Published:    false,
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	visible, err := s.Items.Create(&models.AboutImage{ImageURL: "https://cdn/a.jpg", Published: true})
	if err != nil {
		t.Fatalf("Create visible: %v", err)
	}
	if _, err := s.Items.Create(&models.AboutImage{ImageURL: "https://cdn/b.jpg", Published: false}); err != nil {
		t.Fatalf("Create hidden: %v", err)
	}

	public, err := s.ReadPublic()
	if err != nil {
		t.Fatalf("ReadPublic: %v", err)
	}
	if public.Section != nil {
		t.Error("unpublished section leaked to public path")
	}
	if len(public.Images) != 1 || public.Images[0].ID != visible.ID {
		t.Errorf("public images: got %d, want just the published one", len(public.Images))
	}

	admin, err := s.ReadAdmin()
	if err != nil {
		t.Fatalf("ReadAdmin: %v", err)
	}
	if admin.Section == nil {
		t.Error("admin path hid the draft section")
	}
	if len(admin.Images) != 2 {
		t.Errorf("admin images: got %d, want 2", len(admin.Images))
	}
}

func TestAboutImageOrderIndexAssignment(t *testing.T) {
	db := testDB(t)
	s := NewAboutStore(db)
	cleanTables(t, db, "about_images")

	first, err := s.Items.Create(&models.AboutImage{ImageURL: "https://cdn/1.jpg", Published: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.OrderIndex != 1 {
		t.Errorf("first order_index: got %d, want 1", first.OrderIndex)
	}

	second, err := s.Items.Create(&models.AboutImage{ImageURL: "https://cdn/2.jpg", Published: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.OrderIndex != 2 {
		t.Errorf("second order_index: got %d, want 2", second.OrderIndex)
	}
}

func TestAboutImageConcurrentCreates(t *testing.T) {
	db := testDB(t)
	s := NewAboutStore(db)
	cleanTables(t, db, "about_images")

	var wg sync.WaitGroup
	results := make([]*models.AboutImage, 4)
	errs := make([]error, 4)
	for i := range results {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			results[n], errs[n] = s.Items.Create(&models.AboutImage{
				ImageURL:  "https://cdn/concurrent.jpg",
				Published: true,
			})
		}(i)
	}
	wg.Wait()

	seen := map[int]bool{}
	for i, err := range errs {
		if err != nil {
			t.Fatalf("concurrent Create %d: %v", i, err)
		}
		if seen[results[i].OrderIndex] {
			t.Errorf("order_index %d assigned twice", results[i].OrderIndex)
		}
		seen[results[i].OrderIndex] = true
	}
}

func TestAboutImageUpdateAndDelete(t *testing.T) {
	db := testDB(t)
	s := NewAboutStore(db)
	cleanTables(t, db, "about_images")

	img, err := s.Items.Create(&models.AboutImage{ImageURL: "https://cdn/x.jpg", Published: false})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	alt := "Fachada de la casa"
	published := true
	updated, err := s.UpdateImage(img.ID, models.AboutImagePatch{AltText: &alt, Published: &published})
	if err != nil {
		t.Fatalf("UpdateImage: %v", err)
	}
	if updated.AltText != alt || !updated.Published {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.UpdatedAt.Before(img.UpdatedAt) {
		t.Error("updated_at went backwards")
	}

	if _, err := s.UpdateImage(img.ID, models.AboutImagePatch{}); !errors.Is(err, ErrNoFields) {
		t.Errorf("empty patch: got %v, want ErrNoFields", err)
	}

	if err := s.Items.Delete(img.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	admin, err := s.ReadAdmin()
	if err != nil {
		t.Fatalf("ReadAdmin: %v", err)
	}
	for _, it := range admin.Images {
		if it.ID == img.ID {
			t.Error("deleted image still present on admin path")
		}
	}
	public, err := s.ReadPublic()
	if err != nil {
		t.Fatalf("ReadPublic: %v", err)
	}
	for _, it := range public.Images {
		if it.ID == img.ID {
			t.Error("deleted image still present on public path")
		}
	}

	if err := s.Items.Delete(img.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
	if _, err := s.UpdateImage(uuid.New(), models.AboutImagePatch{AltText: &alt}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: got %v, want ErrNotFound", err)
	}
}
