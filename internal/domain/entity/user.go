package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account. Authentication is intentionally minimal: a
// single-tenant back office with password login.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity with an already-hashed password.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
