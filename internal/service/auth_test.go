package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/domain"
	"github.com/aditi25bce10868-blip/NexusPrime/internal/repository/sqlite"
	"github.com/aditi25bce10868-blip/NexusPrime/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	db := newTestDB(t)
	// Use cost 4 for fast tests.
	return service.NewAuthService(db.Users(), testJWTSecret, time.Hour, 4)
}

func TestAuthService_Register_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "New User", "new@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == "" {
		t.Fatal("expected user ID to be set")
	}
	if user.Email != "new@example.com" {
		t.Fatalf("expected email new@example.com, got %s", user.Email)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Fatal("expected password to be stored as a hash")
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"missing name", "", "a@b.com", "secret123"},
		{"missing email", "Name", "", "secret123"},
		{"missing password", "Name", "a@b.com", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(ctx, tc.userName, tc.email, tc.password)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "User 1", "dup@example.com", "secret123"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Different name and password must not matter.
	_, err := auth.Register(ctx, "User 2", "dup@example.com", "other456")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, "Login User", "login@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := auth.Login(ctx, "login@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %s, got %s", registered.ID, user.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "User", "wrongpw@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err := auth.Login(ctx, "wrongpw@example.com", "badpassword")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	auth := newTestAuthService(t)

	_, _, err := auth.Login(context.Background(), "nobody@example.com", "secret123")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Token_RoundTrip(t *testing.T) {
	auth := newTestAuthService(t)

	token, err := auth.IssueToken("subject-42")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	subject, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if subject != "subject-42" {
		t.Fatalf("expected subject-42, got %s", subject)
	}
}

func TestAuthService_Token_Expired(t *testing.T) {
	db := newTestDB(t)
	auth := service.NewAuthService(db.Users(), testJWTSecret, -time.Minute, 4)

	token, err := auth.IssueToken("subject-42")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	_, err = auth.ValidateToken(token)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Fatalf("expected expiry to be distinguishable internally, got %v", err)
	}
}

func TestAuthService_Token_Tampered(t *testing.T) {
	auth := newTestAuthService(t)

	token, err := auth.IssueToken("subject-42")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	// Flip several characters in the signature.
	tampered := token[:len(token)-5] + "XXXXX"
	_, err = auth.ValidateToken(tampered)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestAuthService_Token_Malformed(t *testing.T) {
	auth := newTestAuthService(t)

	_, err := auth.ValidateToken("not-a-valid-jwt")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_Token_WrongSecret(t *testing.T) {
	auth1 := newTestAuthService(t)

	token, err := auth1.IssueToken("subject-42")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	db2 := newTestDB(t)
	auth2 := service.NewAuthService(db2.Users(), "different-secret", time.Hour, 4)

	_, err = auth2.ValidateToken(token)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestAuthService_UpdateProfile_Partial(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "Old Name", "profile@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	newName := "New Name"
	updated, err := auth.UpdateProfile(ctx, user.ID, domain.UserUpdate{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "New Name" {
		t.Fatalf("expected name to change, got %s", updated.Name)
	}
	if updated.Email != "profile@example.com" {
		t.Fatalf("expected email untouched, got %s", updated.Email)
	}
}

func TestAuthService_UpdateProfile_Missing(t *testing.T) {
	auth := newTestAuthService(t)

	name := "Ghost"
	_, err := auth.UpdateProfile(context.Background(), "no-such-id", domain.UserUpdate{Name: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthService_UpdateProfile_DuplicateEmail(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "A", "taken@example.com", "secret123"); err != nil {
		t.Fatalf("Register A: %v", err)
	}
	user, err := auth.Register(ctx, "B", "b@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register B: %v", err)
	}

	taken := "taken@example.com"
	_, err = auth.UpdateProfile(ctx, user.ID, domain.UserUpdate{Email: &taken})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_ListUsers(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	for _, email := range []string{"one@example.com", "two@example.com"} {
		if _, err := auth.Register(ctx, "U", email, "secret123"); err != nil {
			t.Fatalf("Register %s: %v", email, err)
		}
	}

	users, err := auth.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Email != "one@example.com" {
		t.Fatalf("expected registration order, got %s first", users[0].Email)
	}
}
