// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pjoxante/internal/storage"
)

// maxUploadSize caps image uploads at 10 MB.
const maxUploadSize = 10 << 20

// uploadBuckets maps the {domain} route parameter onto its bucket. Only
// the image-bearing domains accept uploads.
var uploadBuckets = map[string]string{
	"about":    storage.BucketAbout,
	"projects": storage.BucketProjects,
	"courses":  storage.BucketCourses,
}

// imageExtensions maps accepted sniffed content types onto the extension
// used in the object key. The client-supplied filename is never trusted.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Upload handles POST /admin/api/upload/{domain}: a multipart "file"
// field stored in the domain's bucket. Responds with the public URL the
// editor saves into the item's image field.
func (h *Admin) Upload(w http.ResponseWriter, r *http.Request) {
	if h.Storage == nil {
		writeError(w, http.StatusServiceUnavailable, "El almacenamiento de imágenes no está configurado.")
		return
	}

	domain := chi.URLParam(r, "domain")
	bucket, ok := uploadBuckets[domain]
	if !ok {
		writeError(w, http.StatusNotFound, "No se encontró el registro.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "La imagen supera el tamaño máximo de 10 MB o falta el archivo.")
		return
	}
	defer file.Close()

	// Sniff the real content type from the leading bytes.
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		writeError(w, http.StatusBadRequest, "No se pudo leer el archivo.")
		return
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := imageExtensions[contentType]
	if !ok {
		writeError(w, http.StatusBadRequest, "Solo se permiten imágenes JPEG, PNG, GIF o WebP.")
		return
	}

	key := domain + "/" + uuid.NewString() + ext
	body := io.MultiReader(bytes.NewReader(head), file)

	url, err := h.Storage.Upload(r.Context(), bucket, key, contentType, body, header.Size)
	if err != nil {
		slog.Error("image upload failed", "bucket", bucket, "file", path.Base(header.Filename), "error", err)
		writeError(w, http.StatusInternalServerError, "No se pudo subir la imagen.")
		return
	}

	writeData(w, map[string]string{"url": url})
}
