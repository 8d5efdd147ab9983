package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/domain"
)

const demoEmail = "demo@example.com"

// SeedDemo inserts a demo account and two sample items so a fresh install has
// something to show. Idempotent: if the demo account already exists, nothing
// is touched.
func SeedDemo(ctx context.Context, auth *AuthService, items *ItemService) error {
	if _, err := auth.users.GetByEmail(ctx, demoEmail); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check demo user: %w", err)
	}

	user, err := auth.Register(ctx, "Demo User", demoEmail, "password123")
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	samples := []ItemInput{
		{Name: "Sample Item 1", Description: "This is a sample item", Price: ptr(29.99), Category: domain.CategoryElectronics},
		{Name: "Sample Item 2", Description: "Another sample item", Price: ptr(49.99), Category: domain.CategoryBooks},
	}
	for _, in := range samples {
		if _, err := items.Create(ctx, user.ID, in); err != nil {
			return fmt.Errorf("seed item %q: %w", in.Name, err)
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
