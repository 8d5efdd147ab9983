package service_test

import (
	"errors"
	"testing"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/domain"
	"github.com/aditi25bce10868-blip/NexusPrime/internal/service"
)

func TestAuthorizeOwner(t *testing.T) {
	item := &domain.Item{ID: "i-1", OwnerID: "alice"}

	if err := service.AuthorizeOwner(item, "alice"); err != nil {
		t.Fatalf("owner must be authorized: %v", err)
	}

	err := service.AuthorizeOwner(item, "bob")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}
