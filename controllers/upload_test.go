package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"pdfchat/pkg/services"
)

func newUploadRouter(ai services.Collaborator, dir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload", Upload(ai, dir))
	return r
}

func multipartPDF(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("%PDF-1.4 fake content")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestUploadForwardsFileToCollaborator(t *testing.T) {
	dir := t.TempDir()
	ai := services.NewMockCollaborator("")
	r := newUploadRouter(ai, dir)

	body, contentType := multipartPDF(t, "file", "handbook.pdf")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message == "" {
		t.Fatalf("expected a message field")
	}
	if resp.Data["filename"] != "handbook.pdf" {
		t.Fatalf("collaborator ack not passed through: %v", resp.Data)
	}

	if len(ai.ProcessCalls) != 1 {
		t.Fatalf("expected 1 collaborator call, got %d", len(ai.ProcessCalls))
	}
	call := ai.ProcessCalls[0]
	if call.Filename != "handbook.pdf" {
		t.Fatalf("forwarded filename = %q", call.Filename)
	}
	if !filepath.IsAbs(call.FilePath) {
		t.Fatalf("forwarded path must be absolute: %q", call.FilePath)
	}
	if _, err := os.Stat(call.FilePath); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
}

func TestUploadWithoutFileIs400(t *testing.T) {
	r := newUploadRouter(services.NewMockCollaborator(""), t.TempDir())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUploadCollaboratorFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	ai := services.NewMockCollaborator("")
	ai.Err = services.ErrMockUnavailable
	r := newUploadRouter(ai, dir)

	body, contentType := multipartPDF(t, "file", "broken.pdf")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected saved file to be removed, found %d entries", len(entries))
	}
}
