package models

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrNoItemIDs         = errors.New("no item IDs provided")
	ErrNonPositiveItemID = errors.New("all item IDs must be positive integers")
	ErrNoItemsFound      = errors.New("no items found with the provided IDs")
)

// MissingItemsError reports the subset of a group-delete request that did not
// resolve to existing items. A partial match deletes nothing.
type MissingItemsError struct {
	IDs []int
}

func (e *MissingItemsError) Error() string {
	return fmt.Sprintf("items with IDs %v not found", e.IDs)
}
