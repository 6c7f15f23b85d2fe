package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"itemsBack/internal/models"
	"itemsBack/internal/services"
)

// stubItemStore backs an ItemService with fixed items so handler status
// mapping can be exercised without a database.
type stubItemStore struct {
	items   map[int]models.Item
	deleted bool
}

func (s *stubItemStore) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return item, nil
}

func (s *stubItemStore) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	return item, nil
}

func (s *stubItemStore) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return nil, nil
}

func (s *stubItemStore) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return item, nil
}

func (s *stubItemStore) DeleteItem(ctx context.Context, id int) error {
	return nil
}

func (s *stubItemStore) GetItemsByIDs(ctx context.Context, ids []int) ([]models.Item, error) {
	var found []models.Item
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			found = append(found, item)
		}
	}
	return found, nil
}

func (s *stubItemStore) DeleteItemsByIDs(ctx context.Context, ids []int) (int, error) {
	s.deleted = true
	return len(ids), nil
}

func TestDeleteItemsGroupBadRequests(t *testing.T) {
	h := &ItemHandler{Service: &services.ItemService{}}

	cases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"empty id list", `{"item_ids": []}`, http.StatusBadRequest},
		{"negative id", `{"item_ids": [-1]}`, http.StatusBadRequest},
		{"zero id", `{"item_ids": [1, 0]}`, http.StatusBadRequest},
		{"malformed body", `{"item_ids": `, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/items/group", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			h.DeleteItemsGroup(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d (%s)", tc.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestDeleteItemsGroupNotFound(t *testing.T) {
	t.Run("partial match is 404 listing the missing ids", func(t *testing.T) {
		store := &stubItemStore{items: map[int]models.Item{1: {ID: 1, Name: "Widget", Description: "A widget"}}}
		h := &ItemHandler{Service: &services.ItemService{ItemRepo: store}}

		req := httptest.NewRequest(http.MethodDelete, "/items/group", strings.NewReader(`{"item_ids": [1, 9999]}`))
		rec := httptest.NewRecorder()

		h.DeleteItemsGroup(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d (%s)", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "9999") {
			t.Fatalf("expected missing id in body, got %q", rec.Body.String())
		}
		if store.deleted {
			t.Fatal("no delete should reach the store on a partial match")
		}
	})

	t.Run("no matches is 404", func(t *testing.T) {
		store := &stubItemStore{items: map[int]models.Item{}}
		h := &ItemHandler{Service: &services.ItemService{ItemRepo: store}}

		req := httptest.NewRequest(http.MethodDelete, "/items/group", strings.NewReader(`{"item_ids": [9999]}`))
		rec := httptest.NewRecorder()

		h.DeleteItemsGroup(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d (%s)", rec.Code, rec.Body.String())
		}
		if store.deleted {
			t.Fatal("no delete should reach the store when nothing matches")
		}
	})
}

func TestUpdateItemInvalidID(t *testing.T) {
	h := &ItemHandler{Service: &services.ItemService{}}

	req := httptest.NewRequest(http.MethodPut, "/items/abc?:id=abc", strings.NewReader(`{"name":"a","description":"b"}`))
	rec := httptest.NewRecorder()

	h.UpdateItem(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
