package domain

import (
	"context"
	"time"
)

// Item categories form a fixed set; anything outside it is rejected at the
// service boundary.
const (
	CategoryElectronics = "Electronics"
	CategoryBooks       = "Books"
	CategoryClothing    = "Clothing"
	CategoryFood        = "Food"
	CategoryOther       = "Other"
)

// ValidCategory reports whether c is one of the fixed item categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryElectronics, CategoryBooks, CategoryClothing, CategoryFood, CategoryOther:
		return true
	}
	return false
}

// Item represents a listed item owned by exactly one user. UpdatedAt is nil
// until the item is mutated for the first time.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ItemFilter narrows a listing. Category is an exact case-insensitive match;
// Search is a case-insensitive substring match against name or description.
// Both compose with logical AND. Zero values mean "no filter".
type ItemFilter struct {
	Category string
	Search   string
}

// ItemUpdate describes a partial item update. Nil fields are left unchanged;
// a non-nil field overwrites the stored value, including explicit empty
// strings and zero prices.
type ItemUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
}

// ItemRepository defines persistence operations for items. List returns
// items in insertion order.
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context, filter ItemFilter) ([]Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id string) error
}
