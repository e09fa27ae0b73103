package entity

import (
	"time"

	"github.com/google/uuid"
)

// Class is an optional order classification (e.g. a course or subject).
type Class struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClass creates a new Class entity.
func NewClass(name string) *Class {
	now := time.Now().UTC()

	return &Class{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Genre is an optional order classification orthogonal to Class.
type Genre struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGenre creates a new Genre entity.
func NewGenre(name string) *Genre {
	now := time.Now().UTC()

	return &Genre{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
