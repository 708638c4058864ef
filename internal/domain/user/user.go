// Package user provides the user domain model and signup/login behaviors.
package user

import (
	"context"
	"time"
)

// User models an application user. PasswordHash and APIKey never leave the
// backend; handlers expose only the profile subset.
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	APIKey       string
	ProfileImage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Repository defines storage operations for users.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
}
