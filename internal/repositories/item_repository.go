package repositories

import (
	"context"
	"database/sql"
	"strings"

	"itemsBack/internal/models"
)

var ErrItemNotFound = models.ErrItemNotFound

type ItemRepository struct {
	DB *sql.DB
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `INSERT INTO items (name, description) VALUES (?, ?)`
	result, err := r.DB.ExecContext(ctx, query, item.Name, item.Description)
	if err != nil {
		return models.Item{}, err
	}

	itemID, err := result.LastInsertId()
	if err != nil {
		return models.Item{}, err
	}
	item.ID = int(itemID)

	return item, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	var item models.Item

	query := `SELECT id, name, description FROM items WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Item{}, ErrItemNotFound
		}
		return models.Item{}, err
	}

	return item, nil
}

func (r *ItemRepository) GetAllItems(ctx context.Context) ([]models.Item, error) {
	query := `SELECT id, name, description FROM items ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `UPDATE items SET name = ?, description = ? WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, item.Name, item.Description, item.ID)
	if err != nil {
		return models.Item{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Item{}, err
	}
	if rowsAffected == 0 {
		// An update to identical values also reports zero rows on MySQL,
		// so confirm the id is really absent before declaring not-found.
		if _, err := r.GetItemByID(ctx, item.ID); err != nil {
			return models.Item{}, err
		}
	}

	return item, nil
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id int) error {
	query := `DELETE FROM items WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) GetItemsByIDs(ctx context.Context, ids []int) ([]models.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, description FROM items WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// DeleteItemsByIDs removes the given ids in one transaction. Callers are
// expected to have verified that every id exists.
func (r *ItemRepository) DeleteItemsByIDs(ctx context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return int(deleted), nil
}

// RunImport executes fn against a transaction-scoped item store. The whole
// import batch commits or rolls back as a unit.
func (r *ItemRepository) RunImport(ctx context.Context, fn func(*TxItemStore) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(&TxItemStore{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// TxItemStore exposes the item lookups and writes the import reconciler
// needs, bound to one open transaction.
type TxItemStore struct {
	tx *sql.Tx
}

func (s *TxItemStore) ItemByID(ctx context.Context, id int) (models.Item, error) {
	var item models.Item
	err := s.tx.QueryRowContext(ctx, `SELECT id, name, description FROM items WHERE id = ?`, id).
		Scan(&item.ID, &item.Name, &item.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Item{}, ErrItemNotFound
		}
		return models.Item{}, err
	}
	return item, nil
}

// ItemByName picks the lowest id when several items share a name, so the
// name-based fallback stays deterministic.
func (s *TxItemStore) ItemByName(ctx context.Context, name string) (models.Item, error) {
	var item models.Item
	err := s.tx.QueryRowContext(ctx, `SELECT id, name, description FROM items WHERE name = ? ORDER BY id LIMIT 1`, name).
		Scan(&item.ID, &item.Name, &item.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Item{}, ErrItemNotFound
		}
		return models.Item{}, err
	}
	return item, nil
}

func (s *TxItemStore) InsertItem(ctx context.Context, item models.Item) (models.Item, error) {
	result, err := s.tx.ExecContext(ctx, `INSERT INTO items (name, description) VALUES (?, ?)`, item.Name, item.Description)
	if err != nil {
		return models.Item{}, err
	}
	itemID, err := result.LastInsertId()
	if err != nil {
		return models.Item{}, err
	}
	item.ID = int(itemID)
	return item, nil
}

func (s *TxItemStore) InsertItemWithID(ctx context.Context, item models.Item) error {
	_, err := s.tx.ExecContext(ctx, `INSERT INTO items (id, name, description) VALUES (?, ?, ?)`,
		item.ID, item.Name, item.Description)
	return err
}

func (s *TxItemStore) UpdateItem(ctx context.Context, item models.Item) error {
	_, err := s.tx.ExecContext(ctx, `UPDATE items SET name = ?, description = ? WHERE id = ?`,
		item.Name, item.Description, item.ID)
	return err
}

func (s *TxItemStore) UpdateItemDescription(ctx context.Context, id int, description string) error {
	_, err := s.tx.ExecContext(ctx, `UPDATE items SET description = ? WHERE id = ?`, description, id)
	return err
}
