package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andy/billfold/internal/db"
	"github.com/andy/billfold/internal/domain"
)

// CatalogRepo is a SQLite implementation of CatalogRepository
type CatalogRepo struct {
	db *db.DB
}

// NewCatalogRepo creates a new CatalogRepo
func NewCatalogRepo(database *db.DB) *CatalogRepo {
	return &CatalogRepo{db: database}
}

// Create inserts a new catalog item
func (r *CatalogRepo) Create(ctx context.Context, item *domain.CatalogItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid catalog item: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO catalog_items (name, unit_price) VALUES (?, ?)",
		item.Name,
		item.UnitPrice.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to create catalog item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get item ID: %w", err)
	}

	item.ID = id
	return nil
}

// GetByID retrieves a catalog item by ID
func (r *CatalogRepo) GetByID(ctx context.Context, id int64) (*domain.CatalogItem, error) {
	item := &domain.CatalogItem{}
	var unitPrice string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, unit_price FROM catalog_items WHERE id = ?", id,
	).Scan(&item.ID, &item.Name, &unitPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}

	if item.UnitPrice, err = parseAmount(unitPrice); err != nil {
		return nil, err
	}

	return item, nil
}

// List retrieves all catalog items in stored order
func (r *CatalogRepo) List(ctx context.Context) ([]*domain.CatalogItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, unit_price FROM catalog_items ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.CatalogItem, 0)
	for rows.Next() {
		item := &domain.CatalogItem{}
		var unitPrice string

		if err := rows.Scan(&item.ID, &item.Name, &unitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		if item.UnitPrice, err = parseAmount(unitPrice); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog items: %w", err)
	}

	return items, nil
}

// Update updates an existing catalog item. Existing invoices keep the old
// name and price inside their stored line-item text.
func (r *CatalogRepo) Update(ctx context.Context, item *domain.CatalogItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid catalog item: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE catalog_items SET name = ?, unit_price = ? WHERE id = ?",
		item.Name,
		item.UnitPrice.String(),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update catalog item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

// Delete removes a catalog item. Existing invoices are unaffected.
func (r *CatalogRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM catalog_items WHERE id = ?", id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete catalog item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}
