package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"itemsBack/internal/models"
	"itemsBack/internal/services"
)

type ItemHandler struct {
	Service *services.ItemService
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	createdItem, err := h.Service.CreateItem(r.Context(), models.Item{Name: req.Name, Description: req.Description})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(createdItem)
}

func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetAllItems(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "id")
	if idStr == "" {
		http.Error(w, "Missing item ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updatedItem, err := h.Service.UpdateItem(r.Context(), models.Item{ID: id, Name: req.Name, Description: req.Description})
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updatedItem)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "id")
	if idStr == "" {
		http.Error(w, "Missing item ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Item deleted successfully"})
}

// DeleteItemsGroup deletes a batch of items. A request listing any id that
// does not exist is rejected as a whole with the missing ids in the body.
func (h *ItemHandler) DeleteItemsGroup(w http.ResponseWriter, r *http.Request) {
	var req models.GroupDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	deleted, err := h.Service.DeleteItems(r.Context(), req.ItemIDs)
	if err != nil {
		var missing *models.MissingItemsError
		switch {
		case errors.Is(err, models.ErrNoItemIDs), errors.Is(err, models.ErrNonPositiveItemID):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrNoItemsFound), errors.As(err, &missing):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": fmt.Sprintf("Successfully deleted %d items", deleted),
	})
}
