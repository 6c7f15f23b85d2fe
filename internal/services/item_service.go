package services

import (
	"context"

	"itemsBack/internal/models"
	"itemsBack/internal/repositories"
)

// itemStore is the repository surface ItemService depends on. Satisfied by
// *repositories.ItemRepository; tests substitute a map-backed fake.
type itemStore interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItemByID(ctx context.Context, id int) (models.Item, error)
	GetAllItems(ctx context.Context) ([]models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, id int) error
	GetItemsByIDs(ctx context.Context, ids []int) ([]models.Item, error)
	DeleteItemsByIDs(ctx context.Context, ids []int) (int, error)
}

var _ itemStore = (*repositories.ItemRepository)(nil)

type ItemService struct {
	ItemRepo itemStore
}

func (s *ItemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return s.ItemRepo.CreateItem(ctx, item)
}

func (s *ItemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return s.ItemRepo.GetAllItems(ctx)
}

func (s *ItemService) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if _, err := s.ItemRepo.GetItemByID(ctx, item.ID); err != nil {
		return models.Item{}, err
	}
	return s.ItemRepo.UpdateItem(ctx, item)
}

func (s *ItemService) DeleteItem(ctx context.Context, id int) error {
	return s.ItemRepo.DeleteItem(ctx, id)
}

// DeleteItems validates and executes a batch deletion. A request where any id
// does not resolve to an existing item deletes nothing: the caller gets the
// missing subset back instead.
func (s *ItemService) DeleteItems(ctx context.Context, ids []int) (int, error) {
	if err := validateItemIDs(ids); err != nil {
		return 0, err
	}

	found, err := s.ItemRepo.GetItemsByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	if len(found) == 0 {
		return 0, models.ErrNoItemsFound
	}

	if missing := missingIDs(ids, found); len(missing) > 0 {
		return 0, &models.MissingItemsError{IDs: missing}
	}

	return s.ItemRepo.DeleteItemsByIDs(ctx, ids)
}

func validateItemIDs(ids []int) error {
	if len(ids) == 0 {
		return models.ErrNoItemIDs
	}
	for _, id := range ids {
		if id <= 0 {
			return models.ErrNonPositiveItemID
		}
	}
	return nil
}

func missingIDs(requested []int, found []models.Item) []int {
	present := make(map[int]bool, len(found))
	for _, item := range found {
		present[item.ID] = true
	}

	var missing []int
	for _, id := range requested {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
