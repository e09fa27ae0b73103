// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/domain/entity"
)

// ClassRepository defines the interface for class persistence operations.
type ClassRepository interface {
	// Create inserts a new class. Names are unique.
	Create(ctx context.Context, class *entity.Class) error

	// FindByID retrieves a class by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error)

	// FindByName retrieves a class by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Class, error)

	// List retrieves all classes ordered by name.
	List(ctx context.Context) ([]*entity.Class, error)
}

// GenreRepository defines the interface for genre persistence operations.
type GenreRepository interface {
	// Create inserts a new genre. Names are unique.
	Create(ctx context.Context, genre *entity.Genre) error

	// FindByID retrieves a genre by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error)

	// FindByName retrieves a genre by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Genre, error)

	// List retrieves all genres ordered by name.
	List(ctx context.Context) ([]*entity.Genre, error)
}
