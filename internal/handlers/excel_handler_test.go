package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"itemsBack/internal/services"
)

func multipartUpload(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func TestUploadExcelRejectsWrongExtension(t *testing.T) {
	h := &ExcelHandler{Service: &services.ExcelService{}}

	body, contentType := multipartUpload(t, "file", "items.csv", "id,name,description")
	req := httptest.NewRequest(http.MethodPost, "/upload-excel", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UploadExcel(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ".xlsx") {
		t.Fatalf("expected extension message, got %q", rec.Body.String())
	}
}

func TestUploadExcelRequiresFileField(t *testing.T) {
	h := &ExcelHandler{Service: &services.ExcelService{}}

	body, contentType := multipartUpload(t, "attachment", "items.xlsx", "not really xlsx")
	req := httptest.NewRequest(http.MethodPost, "/upload-excel", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UploadExcel(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDownloadTemplateHeaders(t *testing.T) {
	h := &ExcelHandler{Service: &services.ExcelService{}}

	req := httptest.NewRequest(http.MethodGet, "/download-excel-template", nil)
	rec := httptest.NewRecorder()

	h.DownloadTemplate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != xlsxContentType {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "items_template.xlsx") {
		t.Fatalf("unexpected disposition %q", got)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("expected workbook bytes in body")
	}
}
