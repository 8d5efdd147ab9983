package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/domain"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := &domain.User{
		ID:           "u-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	}
	if err := db.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got, err := db.Users().GetByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Fatalf("expected email alice@example.com, got %s", got.Email)
	}

	got, err = db.Users().GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != "u-1" {
		t.Fatalf("expected id u-1, got %s", got.ID)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first := &domain.User{ID: "u-1", Name: "A", Email: "dup@example.com", PasswordHash: "h1"}
	if err := db.Users().Create(ctx, first); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	second := &domain.User{ID: "u-2", Name: "B", Email: "dup@example.com", PasswordHash: "h2"}
	err := db.Users().Create(ctx, second)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_EmailCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := &domain.User{ID: "u-1", Name: "A", Email: "Alice@Example.com", PasswordHash: "h"}
	if err := db.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Lookup must match exactly as stored.
	if _, err := db.Users().GetByEmail(ctx, "alice@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for different casing, got %v", err)
	}
	if _, err := db.Users().GetByEmail(ctx, "Alice@Example.com"); err != nil {
		t.Fatalf("exact casing: %v", err)
	}
}

func TestUserRepository_GetMissing(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := db.Users().GetByID(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Update(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := &domain.User{ID: "u-1", Name: "Old", Email: "old@example.com", PasswordHash: "h"}
	if err := db.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	user.Name = "New"
	user.Email = "new@example.com"
	if err := db.Users().Update(ctx, user); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := db.Users().GetByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "New" || got.Email != "new@example.com" {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := db.Users().Update(ctx, &domain.User{ID: "ghost", Name: "G", Email: "g@example.com", PasswordHash: "h"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_ListInRegistrationOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		u := &domain.User{ID: string(rune('1' + i)), Name: "U", Email: email, PasswordHash: "h"}
		if err := db.Users().Create(ctx, u); err != nil {
			t.Fatalf("Create %s: %v", email, err)
		}
	}

	users, err := db.Users().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[0].Email != "a@example.com" || users[2].Email != "c@example.com" {
		t.Fatalf("unexpected order: %v, %v, %v", users[0].Email, users[1].Email, users[2].Email)
	}
}
