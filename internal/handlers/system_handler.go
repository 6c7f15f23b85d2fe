package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"itemsBack/internal/models"
	"itemsBack/internal/services"
)

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>
<head><title>Items</title></head>
<body>
<h1>Items</h1>
<table border="1">
<tr><th>ID</th><th>Name</th><th>Description</th></tr>
{{range .}}<tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Description}}</td></tr>
{{end}}</table>
<p><a href="/download-excel-template">Download template</a> | <a href="/download-excel-data">Download data</a></p>
</body>
</html>
`))

type SystemHandler struct {
	ItemService *services.ItemService
}

func (h *SystemHandler) Home(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.GetAllItems(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homeTemplate.Execute(w, items); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.HealthResponse{
		Status:  "healthy",
		Message: "CRUD application is running",
	})
}

func (h *SystemHandler) Favicon(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (h *SystemHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("User-agent: *\nDisallow: /\n"))
}
