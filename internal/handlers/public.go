// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"pjoxante/internal/cache"
	"pjoxante/internal/markdown"
	"pjoxante/internal/models"
	"pjoxante/internal/store"
)

// Public serves the read-only site content. Every endpoint filters by the
// published flag, so drafts never leave the database on this path, and
// every endpoint degrades to an empty payload on a store failure: the
// page renders its defaults instead of an error screen.
type Public struct {
	Hero     *store.HeroStore
	About    *store.AboutStore
	Values   *store.ValuesStore
	Projects *store.ProjectsStore
	Courses  *store.CoursesStore
	Blog     *store.BlogStore
	Cache    *cache.ViewCache
}

// homeData is the composed payload for the landing page, one round trip
// for every section the page renders.
type homeData struct {
	Hero     *models.HeroData     `json:"hero"`
	About    *models.AboutData    `json:"about"`
	Values   *models.ValuesData   `json:"values"`
	Projects *models.ProjectsData `json:"projects"`
	Courses  *models.CoursesData  `json:"courses"`
	Blog     *models.BlogData     `json:"blog"`
}

// serveView answers with the cached envelope for key when present;
// otherwise it loads the view model, caches the serialized envelope, and
// serves it. A load failure logs and serves the empty fallback with 200.
func (h *Public) serveView(w http.ResponseWriter, r *http.Request, key string,
	load func() (any, error), empty any) {

	ctx := r.Context()
	if payload, ok := h.Cache.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(payload)
		return
	}

	data, err := load()
	if err != nil {
		slog.Error("public read failed", "view", key, "error", err)
		writeData(w, empty)
		return
	}

	payload, err := json.Marshal(apiResponse{Data: data})
	if err != nil {
		slog.Error("encode view failed", "view", key, "error", err)
		writeData(w, empty)
		return
	}

	h.Cache.Set(ctx, key, payload)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(payload)
}

// GetHero handles GET /api/hero.
func (h *Public) GetHero(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "hero",
		func() (any, error) { return h.Hero.ReadPublic() },
		&models.HeroData{})
}

// GetAbout handles GET /api/about.
func (h *Public) GetAbout(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "about",
		func() (any, error) { return h.About.ReadPublic() },
		&models.AboutData{Images: []models.AboutImage{}})
}

// GetValues handles GET /api/values.
func (h *Public) GetValues(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "values",
		func() (any, error) { return h.Values.ReadPublic() },
		&models.ValuesData{Values: []models.Value{}})
}

// GetProjects handles GET /api/projects.
func (h *Public) GetProjects(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "projects",
		func() (any, error) { return h.Projects.ReadPublic() },
		&models.ProjectsData{Projects: []models.Project{}})
}

// GetCourses handles GET /api/courses.
func (h *Public) GetCourses(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "courses",
		func() (any, error) { return h.Courses.ReadPublic() },
		&models.CoursesData{Courses: []models.Course{}})
}

// GetBlog handles GET /api/blog. Post bodies are rendered from Markdown
// to HTML before serving.
func (h *Public) GetBlog(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "blog",
		func() (any, error) { return h.readBlog() },
		&models.BlogData{Posts: []models.BlogPost{}})
}

// GetHome handles GET /api/home: the composed landing-page payload. Each
// domain loads independently; one failing section empties only itself.
func (h *Public) GetHome(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, cache.HomeKey,
		func() (any, error) { return h.readHome(), nil },
		nil)
}

func (h *Public) readBlog() (*models.BlogData, error) {
	data, err := h.Blog.ReadPublic()
	if err != nil {
		return nil, err
	}
	for i := range data.Posts {
		html, err := markdown.ToHTML(data.Posts[i].Body)
		if err != nil {
			slog.Warn("render post body failed", "post", data.Posts[i].ID, "error", err)
			continue
		}
		data.Posts[i].BodyHTML = html
	}
	return data, nil
}

func (h *Public) readHome() *homeData {
	home := &homeData{
		Hero:     &models.HeroData{},
		About:    &models.AboutData{Images: []models.AboutImage{}},
		Values:   &models.ValuesData{Values: []models.Value{}},
		Projects: &models.ProjectsData{Projects: []models.Project{}},
		Courses:  &models.CoursesData{Courses: []models.Course{}},
		Blog:     &models.BlogData{Posts: []models.BlogPost{}},
	}

	if d, err := h.Hero.ReadPublic(); err == nil {
		home.Hero = d
	} else {
		slog.Error("home hero read failed", "error", err)
	}
	if d, err := h.About.ReadPublic(); err == nil {
		home.About = d
	} else {
		slog.Error("home about read failed", "error", err)
	}
	if d, err := h.Values.ReadPublic(); err == nil {
		home.Values = d
	} else {
		slog.Error("home values read failed", "error", err)
	}
	if d, err := h.Projects.ReadPublic(); err == nil {
		home.Projects = d
	} else {
		slog.Error("home projects read failed", "error", err)
	}
	if d, err := h.Courses.ReadPublic(); err == nil {
		home.Courses = d
	} else {
		slog.Error("home courses read failed", "error", err)
	}
	if d, err := h.readBlog(); err == nil {
		home.Blog = d
	} else {
		slog.Error("home blog read failed", "error", err)
	}

	return home
}
