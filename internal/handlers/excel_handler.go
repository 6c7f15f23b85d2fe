package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"itemsBack/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// maxUploadSize bounds the in-memory part of multipart parsing.
const maxUploadSize = 10 << 20

type ExcelHandler struct {
	Service *services.ExcelService
}

func (h *ExcelHandler) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	f, err := h.Service.BuildTemplate()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="items_template.xlsx"`)
	if err := f.Write(w); err != nil && h.Service.ErrorLog != nil {
		h.Service.ErrorLog.Printf("writing template workbook: %v", err)
	}
}

func (h *ExcelHandler) DownloadData(w http.ResponseWriter, r *http.Request) {
	f, err := h.Service.ExportItems(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="items_data.xlsx"`)
	if err := f.Write(w); err != nil && h.Service.ErrorLog != nil {
		h.Service.ErrorLog.Printf("writing data workbook: %v", err)
	}
}

// UploadExcel accepts a multipart .xlsx, stages it in a temp file that is
// removed on every exit path, and runs the import batch against it.
func (h *ExcelHandler) UploadExcel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		http.Error(w, "Only .xlsx files are allowed", http.StatusBadRequest)
		return
	}

	tmp, err := os.CreateTemp("", "items-upload-*.xlsx")
	if err != nil {
		http.Error(w, "Error processing Excel file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		http.Error(w, "Error processing Excel file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tmp.Close(); err != nil {
		http.Error(w, "Error processing Excel file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	summary, err := h.Service.ImportFile(r.Context(), tmp.Name())
	if err != nil {
		http.Error(w, "Error processing Excel file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": services.ImportMessage(summary)})
}
