package domain

import (
	"context"
	"time"
)

// User represents a registered user of the application. Emails are unique
// and matched case-sensitively, exactly as stored.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserUpdate describes a partial profile update. Nil fields are left
// unchanged; a non-nil field overwrites the stored value.
type UserUpdate struct {
	Name  *string
	Email *string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	List(ctx context.Context) ([]User, error)
}
