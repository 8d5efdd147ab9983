package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/domain"
)

const (
	maxItemNameLen        = 100
	maxItemDescriptionLen = 500
)

// ItemService handles item CRUD, listing filters, and ownership enforcement.
type ItemService struct {
	items domain.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(items domain.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

// ItemInput carries the fields of a create request. Price is a pointer so a
// missing price is distinguishable from an explicit zero.
type ItemInput struct {
	Name        string
	Description string
	Price       *float64
	Category    string
}

// Create validates the input and persists a new item owned by ownerID.
// Category defaults to "Other" when absent.
func (s *ItemService) Create(ctx context.Context, ownerID string, in ItemInput) (*domain.Item, error) {
	if in.Name == "" || in.Price == nil {
		return nil, fmt.Errorf("%w: name and price are required", domain.ErrInvalidInput)
	}
	if err := validateItemFields(in.Name, in.Description, *in.Price); err != nil {
		return nil, err
	}

	category := in.Category
	if category == "" {
		category = domain.CategoryOther
	}
	if !domain.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}

	item := &domain.Item{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Category:    category,
		OwnerID:     ownerID,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// List returns items matching the filter in insertion order.
func (s *ItemService) List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	return s.items.List(ctx, filter)
}

// GetByID returns a single item.
func (s *ItemService) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

// Update applies a partial update to an item after checking that subjectID
// owns it. Nil fields are left unchanged; present fields overwrite, including
// explicit empty descriptions and zero prices. UpdatedAt is set on every
// successful update.
func (s *ItemService) Update(ctx context.Context, id, subjectID string, upd domain.ItemUpdate) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeOwner(item, subjectID); err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
		}
		item.Name = *upd.Name
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Price != nil {
		item.Price = *upd.Price
	}
	if upd.Category != nil {
		if !domain.ValidCategory(*upd.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, *upd.Category)
		}
		item.Category = *upd.Category
	}
	if err := validateItemFields(item.Name, item.Description, item.Price); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item.UpdatedAt = &now

	if err := s.items.Update(ctx, item); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// Delete removes an item after checking that subjectID owns it. Removal is
// irreversible.
func (s *ItemService) Delete(ctx context.Context, id, subjectID string) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := AuthorizeOwner(item, subjectID); err != nil {
		return err
	}

	return s.items.Delete(ctx, id)
}

func validateItemFields(name, description string, price float64) error {
	if len(name) > maxItemNameLen {
		return fmt.Errorf("%w: name cannot be more than %d characters", domain.ErrInvalidInput, maxItemNameLen)
	}
	if len(description) > maxItemDescriptionLen {
		return fmt.Errorf("%w: description cannot be more than %d characters", domain.ErrInvalidInput, maxItemDescriptionLen)
	}
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}
	return nil
}
