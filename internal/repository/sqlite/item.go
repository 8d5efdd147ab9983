package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/domain"
)

// ItemRepository implements domain.ItemRepository using SQLite.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new SQLite-backed ItemRepository.
func NewItemRepository(db *DB) *ItemRepository {
	return &ItemRepository{db: db.SqlDB}
}

const itemColumns = `id, name, description, price, category, owner_id, created_at, updated_at`

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (id, name, description, price, category, owner_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Description, item.Price, item.Category, item.OwnerID, now,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	item.CreatedAt = now
	item.UpdatedAt = nil
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id)

	item, err := scanItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query item by id: %w", err)
	}
	return item, nil
}

// List returns items in insertion order. Category filters by exact
// case-insensitive match; search filters by case-insensitive substring match
// against name or description. Both conditions AND together.
//
// Case folding happens in SQLite, whose LOWER() is ASCII-only: category is
// unaffected (the enum is ASCII), but search terms differing from stored text
// only in non-ASCII letter case will not match here, unlike the Unicode-aware
// memory repository.
func (r *ItemRepository) List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	var conds []string
	var args []any

	if filter.Category != "" {
		conds = append(conds, "LOWER(category) = LOWER(?)")
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		// instr avoids LIKE wildcard escaping for user-supplied text.
		conds = append(conds, "(instr(LOWER(name), LOWER(?)) > 0 OR instr(LOWER(description), LOWER(?)) > 0)")
		args = append(args, filter.Search, filter.Search)
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY rowid"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE items SET name = ?, description = ?, price = ?, category = ?, updated_at = ?
		 WHERE id = ?`,
		item.Name, item.Description, item.Price, item.Category, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanItem(scan func(...any) error) (*domain.Item, error) {
	item := &domain.Item{}
	var updatedAt sql.NullTime
	err := scan(&item.ID, &item.Name, &item.Description, &item.Price,
		&item.Category, &item.OwnerID, &item.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		item.UpdatedAt = &t
	}
	return item, nil
}
