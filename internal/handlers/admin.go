// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"pjoxante/internal/cache"
	"pjoxante/internal/models"
	"pjoxante/internal/storage"
	"pjoxante/internal/store"
)

// Admin serves the editing API behind token auth. Reads are unfiltered —
// the editor sees drafts — and every write invalidates the domain's
// public cache entry so the site reflects the change on the next request.
type Admin struct {
	Hero     *store.HeroStore
	About    *store.AboutStore
	Values   *store.ValuesStore
	Projects *store.ProjectsStore
	Courses  *store.CoursesStore
	Blog     *store.BlogStore
	Cache    *cache.ViewCache
	Storage  *storage.Client
}

// upsertSection decodes a full section replacement, validates it, and
// saves it through the singleton upsert.
func upsertSection[S any](h *Admin, w http.ResponseWriter, r *http.Request,
	key string, repo *store.SectionRepo[S], validate func(*S) string) {

	section := new(S)
	if err := decodeJSON(w, r, section); err != nil {
		writeError(w, http.StatusBadRequest, "El cuerpo de la solicitud no es válido.")
		return
	}
	if msg := validate(section); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	saved, err := repo.Upsert(section)
	if err != nil {
		slog.Error("upsert section failed", "domain", key, "error", err)
		writeStoreError(w, err)
		return
	}

	h.Cache.Invalidate(r.Context(), key)
	writeData(w, saved)
}

// createItem decodes a new item, validates it, and inserts it. The
// server assigns id and, for ordered domains, the order_index.
func createItem[I any](h *Admin, w http.ResponseWriter, r *http.Request,
	key string, repo *store.ItemRepo[I], validate func(*I) string) {

	item := new(I)
	if err := decodeJSON(w, r, item); err != nil {
		writeError(w, http.StatusBadRequest, "El cuerpo de la solicitud no es válido.")
		return
	}
	if msg := validate(item); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := repo.Create(item)
	if err != nil {
		slog.Error("create item failed", "domain", key, "error", err)
		writeStoreError(w, err)
		return
	}

	h.Cache.Invalidate(r.Context(), key)
	writeJSON(w, http.StatusCreated, apiResponse{Data: created})
}

// deleteItem removes an item and, best effort, its backing image object.
// The row is the source of truth: a failed object delete only logs.
func deleteItem[I any](h *Admin, w http.ResponseWriter, r *http.Request,
	key string, repo *store.ItemRepo[I], imageOf func(*I) string) {

	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "El identificador no es válido.")
		return
	}

	item, err := repo.FindByID(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if err := repo.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}

	if h.Storage != nil && imageOf != nil {
		if url := imageOf(item); url != "" {
			if bucket, objKey, ok := h.Storage.ExtractKey(url); ok {
				if err := h.Storage.Delete(r.Context(), bucket, objKey); err != nil {
					slog.Warn("delete stored image failed", "url", url, "error", err)
				}
			}
		}
	}

	h.Cache.Invalidate(r.Context(), key)
	writeData(w, map[string]bool{"deleted": true})
}

// finishUpdate answers a patch request: store error or updated row.
func (h *Admin) finishUpdate(w http.ResponseWriter, r *http.Request, key string, item any, err error) {
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.Cache.Invalidate(r.Context(), key)
	writeData(w, item)
}

// --- Hero (section only) ---

// GetHero handles GET /admin/api/hero.
func (h *Admin) GetHero(w http.ResponseWriter, r *http.Request) {
	data, err := h.Hero.ReadAdmin()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, data)
}

// PutHeroSection handles PUT /admin/api/hero/section.
func (h *Admin) PutHeroSection(w http.ResponseWriter, r *http.Request) {
	upsertSection(h, w, r, "hero", h.Hero.Sections, validateHeroSection)
}

// --- About ---

// GetAbout handles GET /admin/api/about.
func (h *Admin) GetAbout(w http.ResponseWriter, r *http.Request) {
	data, err := h.About.ReadAdmin()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, data)
}

// PutAboutSection handles PUT /admin/api/about/section.
func (h *Admin) PutAboutSection(w http.ResponseWriter, r *http.Request) {
	upsertSection(h, w, r, "about", h.About.Sections, validateAboutSection)
}

// CreateAboutImage handles POST /admin/api/about/images.
func (h *Admin) CreateAboutImage(w http.ResponseWriter, r *http.Request) {
	createItem(h, w, r, "about", h.About.Items, validateAboutImage)
}

// UpdateAboutImage handles PATCH /admin/api/about/images/{id}.
func (h *Admin) UpdateAboutImage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "El identificador no es válido.")
		return
	}
	var patch models.AboutImagePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "El cuerpo de la solicitud no es válido.")
		return
	}
	item, err := h.About.UpdateImage(id, patch)
	h.finishUpdate(w, r, "about", item, err)
}

// DeleteAboutImage handles DELETE /admin/api/about/images/{id}.
func (h *Admin) DeleteAboutImage(w http.ResponseWriter, r *http.Request) {
	deleteItem(h, w, r, "about", h.About.Items,
		func(i *models.AboutImage) string { return i.ImageURL })
}

// --- Values ---

// GetValues handles GET /admin/api/values.
func (h *Admin) GetValues(w http.ResponseWriter, r *http.Request) {
	data, err := h.Values.ReadAdmin()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, data)
}

// PutValuesSection handles PUT /admin/api/values/section.
func (h *Admin) PutValuesSection(w http.ResponseWriter, r *http.Request) {
	upsertSection(h, w, r, "values", h.Values.Sections, validateValuesSection)
}

// CreateValue handles POST /admin/api/values/items.
func (h *Admin) CreateValue(w http.ResponseWriter, r *http.Request) {
	createItem(h, w, r, "values", h.Values.Items, validateValue)
}

// UpdateValue handles PATCH /admin/api/values/items/{id}.
func (h *Admin) UpdateValue(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "El identificador no es válido.")
		return
	}
	var patch models.ValuePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "El cuerpo de la solicitud no es válido.")
		return
	}
	item, err := h.Values.UpdateValue(id, patch)
	h.finishUpdate(w, r, "values", item, err)
}

// DeleteValue handles DELETE /admin/api/values/items/{id}. Value cards
// carry no stored image, so there is nothing to clean up.
func (h *Admin) DeleteValue(w http.ResponseWriter, r *http.Request) {
	deleteItem[models.Value](h, w, r, "values", h.Values.Items, nil)
}

// --- Projects ---

// GetProjects handles GET /admin/api/projects.
func (h *Admin) GetProjects(w http.ResponseWriter, r *http.Request) {
	data, err := h.Projects.ReadAdmin()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, data)
}

// PutProjectsSection handles PUT /admin/api/projects/section.
func (h *Admin) PutProjectsSection(w http.ResponseWriter, r *http.Request) {
	upsertSection(h, w, r, "projects", h.Projects.Sections, validateProjectsSection)
}

// CreateProject handles POST /admin/api/projects/items.
func (h *Admin) CreateProject(w http.ResponseWriter, r *http.Request) {
	createItem(h, w, r, "projects", h.Projects.Items, validateProject)
}

// UpdateProject handles PATCH /admin/api/projects/items/{id}.
func (h *Admin) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "El identificador no es válido.")
		return
	}
	var patch models.ProjectPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "El cuerpo de la solicitud no es válido.")
		return
	}
	item, err := h.Projects.UpdateProject(id, patch)
	h.finishUpdate(w, r, "projects", item, err)
}

// DeleteProject handles DELETE /admin/api/projects/items/{id}.
func (h *Admin) DeleteProject(w http.ResponseWriter, r *http.Request) {
	deleteItem(h, w, r, "projects", h.Projects.Items,
		func(i *models.Project) string { return i.ImageURL })
}

// --- Courses ---

// GetCourses handles GET /admin/api/courses.
func (h *Admin) GetCourses(w http.ResponseWriter, r *http.Request) {
	data, err := h.Courses.ReadAdmin()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, data)
}

// PutCoursesSection handles PUT /admin/api/courses/section.
func (h *Admin) PutCoursesSection(w http.ResponseWriter, r *http.Request) {
	upsertSection(h, w, r, "courses", h.Courses.Sections, validateCoursesSection)
}

// CreateCourse handles POST /admin/api/courses/items.
func (h *Admin) CreateCourse(w http.ResponseWriter, r *http.Request) {
	createItem(h, w, r, "courses", h.Courses.Items, validateCourse)
}

// UpdateCourse handles PATCH /admin/api/courses/items/{id}.
func (h *Admin) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "El identificador no es válido.")
		return
	}
	var patch models.CoursePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "El cuerpo de la solicitud no es válido.")
		return
	}
	item, err := h.Courses.UpdateCourse(id, patch)
	h.finishUpdate(w, r, "courses", item, err)
}

// DeleteCourse handles DELETE /admin/api/courses/items/{id}.
func (h *Admin) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	deleteItem(h, w, r, "courses", h.Courses.Items,
		func(i *models.Course) string { return i.ImageURL })
}

// --- Blog ---

// GetBlog handles GET /admin/api/blog. Bodies come back as Markdown
// source, ready for the editor.
func (h *Admin) GetBlog(w http.ResponseWriter, r *http.Request) {
	data, err := h.Blog.ReadAdmin()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, data)
}

// PutBlogSection handles PUT /admin/api/blog/section.
func (h *Admin) PutBlogSection(w http.ResponseWriter, r *http.Request) {
	upsertSection(h, w, r, "blog", h.Blog.Sections, validateBlogSection)
}

// CreateBlogPost handles POST /admin/api/blog/items.
func (h *Admin) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	createItem(h, w, r, "blog", h.Blog.Items, validateBlogPost)
}

// UpdateBlogPost handles PATCH /admin/api/blog/items/{id}.
func (h *Admin) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "El identificador no es válido.")
		return
	}
	var patch models.BlogPostPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "El cuerpo de la solicitud no es válido.")
		return
	}
	item, err := h.Blog.UpdatePost(id, patch)
	h.finishUpdate(w, r, "blog", item, err)
}

// DeleteBlogPost handles DELETE /admin/api/blog/items/{id}.
func (h *Admin) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	deleteItem(h, w, r, "blog", h.Blog.Items,
		func(i *models.BlogPost) string { return i.ImageURL })
}
