package service

import "github.com/aditi25bce10868-blip/NexusPrime/internal/domain"

// AuthorizeOwner reports whether subjectID may mutate or delete the item.
// Only the recorded owner is permitted. Pure predicate, no side effects.
func AuthorizeOwner(item *domain.Item, subjectID string) error {
	if item.OwnerID != subjectID {
		return domain.ErrForbidden
	}
	return nil
}
