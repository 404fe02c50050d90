// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"pjoxante/internal/storage"
)

// multipartUpload builds a multipart request with one "file" part.
func multipartUpload(t *testing.T, domain string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "photo.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write(content)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/api/upload/"+domain, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("domain", domain)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUploadUnavailableWithoutStorage(t *testing.T) {
	h := &Admin{} // no storage client configured

	rr := httptest.NewRecorder()
	h.Upload(rr, multipartUpload(t, "projects", []byte("\xff\xd8\xff")))

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want 503", rr.Code)
	}
}

// testStorage builds a storage client that never reaches the network:
// the handler rejects before uploading in the cases under test.
func testStorage(t *testing.T) *storage.Client {
	t.Helper()
	client, err := storage.New("http://localhost:1", "us-east-1", "key", "secret", "")
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	return client
}

func TestUploadRejectsUnknownDomain(t *testing.T) {
	h := &Admin{Storage: testStorage(t)}

	rr := httptest.NewRecorder()
	h.Upload(rr, multipartUpload(t, "blog", []byte("\xff\xd8\xff")))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	h := &Admin{Storage: testStorage(t)}

	rr := httptest.NewRecorder()
	h.Upload(rr, multipartUpload(t, "projects", []byte("just some text, not an image")))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
}
