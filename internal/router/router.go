// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

// Package router wires the HTTP routes: the public content API, the chat
// endpoint, and the token-protected admin API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pjoxante/internal/handlers"
	"pjoxante/internal/middleware"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Public     *handlers.Public
	Admin      *handlers.Admin
	Chat       *handlers.Chat
	AdminToken string
}

// New builds the chi router with the full route table.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public read API. Unpublished content never appears here.
	r.Route("/api", func(r chi.Router) {
		r.Get("/home", d.Public.GetHome)
		r.Get("/hero", d.Public.GetHero)
		r.Get("/about", d.Public.GetAbout)
		r.Get("/values", d.Public.GetValues)
		r.Get("/projects", d.Public.GetProjects)
		r.Get("/courses", d.Public.GetCourses)
		r.Get("/blog", d.Public.GetBlog)

		// The chat endpoint calls a paid provider, so it gets its own
		// tighter limit.
		chatLimiter := middleware.NewRateLimiter(10, time.Minute)
		r.With(chatLimiter.Middleware).Post("/chat", d.Chat.Post)
	})

	// Admin API. Token-authenticated, unfiltered reads, full writes.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.RequireToken(d.AdminToken))

		adminLimiter := middleware.NewRateLimiter(120, time.Minute)
		r.Use(adminLimiter.Middleware)

		r.Get("/hero", d.Admin.GetHero)
		r.Put("/hero/section", d.Admin.PutHeroSection)

		r.Get("/about", d.Admin.GetAbout)
		r.Put("/about/section", d.Admin.PutAboutSection)
		r.Post("/about/images", d.Admin.CreateAboutImage)
		r.Patch("/about/images/{id}", d.Admin.UpdateAboutImage)
		r.Delete("/about/images/{id}", d.Admin.DeleteAboutImage)

		r.Get("/values", d.Admin.GetValues)
		r.Put("/values/section", d.Admin.PutValuesSection)
		r.Post("/values/items", d.Admin.CreateValue)
		r.Patch("/values/items/{id}", d.Admin.UpdateValue)
		r.Delete("/values/items/{id}", d.Admin.DeleteValue)

		r.Get("/projects", d.Admin.GetProjects)
		r.Put("/projects/section", d.Admin.PutProjectsSection)
		r.Post("/projects/items", d.Admin.CreateProject)
		r.Patch("/projects/items/{id}", d.Admin.UpdateProject)
		r.Delete("/projects/items/{id}", d.Admin.DeleteProject)

		r.Get("/courses", d.Admin.GetCourses)
		r.Put("/courses/section", d.Admin.PutCoursesSection)
		r.Post("/courses/items", d.Admin.CreateCourse)
		r.Patch("/courses/items/{id}", d.Admin.UpdateCourse)
		r.Delete("/courses/items/{id}", d.Admin.DeleteCourse)

		r.Get("/blog", d.Admin.GetBlog)
		r.Put("/blog/section", d.Admin.PutBlogSection)
		r.Post("/blog/items", d.Admin.CreateBlogPost)
		r.Patch("/blog/items/{id}", d.Admin.UpdateBlogPost)
		r.Delete("/blog/items/{id}", d.Admin.DeleteBlogPost)

		r.Post("/upload/{domain}", d.Admin.Upload)
	})

	return r
}
