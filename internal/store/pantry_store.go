package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/vbonduro/pantrychef/internal/domain"
)

const pantryColumns = `name, quantity, unit, calories, protein, carbohydrates, sugars,
	fats, saturated_fat, fiber, sodium, serving_size, serving_unit`

// SQLStore keeps the pantry in the pantry_items table. The autoincrement
// position column preserves insertion order.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// nullable turns a nil pointer into SQL NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func itemArgs(item domain.PantryItem) []any {
	return []any{
		item.Name, item.Quantity, item.Unit,
		nullable(item.Calories), nullable(item.Protein), nullable(item.Carbohydrates), nullable(item.Sugars),
		nullable(item.Fats), nullable(item.SaturatedFat), nullable(item.Fiber), nullable(item.Sodium),
		nullable(item.ServingSize), nullable(item.ServingUnit),
	}
}

func (s *SQLStore) List(ctx context.Context) ([]domain.PantryItem, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+pantryColumns+` FROM pantry_items ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pantry items: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	items := make([]domain.PantryItem, 0)
	for rows.Next() {
		var item domain.PantryItem
		if err := rows.Scan(
			&item.Name, &item.Quantity, &item.Unit, &item.Calories, &item.Protein, &item.Carbohydrates, &item.Sugars,
			&item.Fats, &item.SaturatedFat, &item.Fiber, &item.Sodium, &item.ServingSize, &item.ServingUnit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pantry item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pantry items: %w", err)
	}

	return items, nil
}

func (s *SQLStore) Add(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pantry_items (`+pantryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, itemArgs(item)...)
	if err != nil {
		return domain.PantryItem{}, fmt.Errorf("failed to add pantry item: %w", err)
	}
	return item, nil
}

func (s *SQLStore) Update(ctx context.Context, name string, item domain.PantryItem) (domain.PantryItem, error) {
	args := append(itemArgs(item), name)
	result, err := s.db.ExecContext(ctx, `
		UPDATE pantry_items SET
			name = ?, quantity = ?, unit = ?, calories = ?, protein = ?, carbohydrates = ?, sugars = ?,
			fats = ?, saturated_fat = ?, fiber = ?, sodium = ?, serving_size = ?, serving_unit = ?
		WHERE position = (SELECT MIN(position) FROM pantry_items WHERE name = ?)
	`, args...)
	if err != nil {
		return domain.PantryItem{}, fmt.Errorf("failed to update pantry item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.PantryItem{}, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.PantryItem{}, ErrNotFound
	}

	return item, nil
}

func (s *SQLStore) Delete(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM pantry_items WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete pantry items: %w", err)
	}
	return nil
}
