package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/domain"
)

// ItemRepository implements domain.ItemRepository with an in-memory map.
// Insertion order is preserved for List.
type ItemRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Item
	order []string
}

var _ domain.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository creates an empty in-memory ItemRepository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{byID: make(map[string]*domain.Item)}
}

func (r *ItemRepository) Create(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = nil
	stored := *item
	r.byID[item.ID] = &stored
	r.order = append(r.order, item.ID)
	return nil
}

func (r *ItemRepository) GetByID(_ context.Context, id string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

// List folds case with the Unicode-aware strings package; the SQLite
// repository folds in SQL, which is ASCII-only. The implementations agree on
// ASCII input, which covers the category enum entirely.
func (r *ItemRepository) List(_ context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []domain.Item
	for _, id := range r.order {
		item := r.byID[id]
		if filter.Category != "" && !strings.EqualFold(item.Category, filter.Category) {
			continue
		}
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(item.Name), search) &&
				!strings.Contains(strings.ToLower(item.Description), search) {
				continue
			}
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *ItemRepository) Update(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[item.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *item
	r.byID[item.ID] = &stored
	return nil
}

func (r *ItemRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
