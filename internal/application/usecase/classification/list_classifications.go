// Package classification contains class and genre use cases. Classes and
// genres are flat reference lists used to tag orders.
package classification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/entity"
)

// ClassificationOutput represents one class or genre in the output.
type ClassificationOutput struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// ListClassificationsOutput represents both reference lists.
type ListClassificationsOutput struct {
	Classes []*ClassificationOutput
	Genres  []*ClassificationOutput
}

// ListClassificationsUseCase handles listing classes and genres together.
type ListClassificationsUseCase struct {
	classRepo adapter.ClassRepository
	genreRepo adapter.GenreRepository
}

// NewListClassificationsUseCase creates a new ListClassificationsUseCase instance.
func NewListClassificationsUseCase(classRepo adapter.ClassRepository, genreRepo adapter.GenreRepository) *ListClassificationsUseCase {
	return &ListClassificationsUseCase{
		classRepo: classRepo,
		genreRepo: genreRepo,
	}
}

// Execute performs the listing. Both lists come back ordered by name.
func (uc *ListClassificationsUseCase) Execute(ctx context.Context) (*ListClassificationsOutput, error) {
	classes, err := uc.classRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	genres, err := uc.genreRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	output := &ListClassificationsOutput{
		Classes: make([]*ClassificationOutput, len(classes)),
		Genres:  make([]*ClassificationOutput, len(genres)),
	}
	for i, c := range classes {
		output.Classes[i] = &ClassificationOutput{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
	}
	for i, g := range genres {
		output.Genres[i] = &ClassificationOutput{ID: g.ID, Name: g.Name, CreatedAt: g.CreatedAt}
	}
	return output, nil
}

func classOutput(c *entity.Class) *ClassificationOutput {
	return &ClassificationOutput{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func genreOutput(g *entity.Genre) *ClassificationOutput {
	return &ClassificationOutput{ID: g.ID, Name: g.Name, CreatedAt: g.CreatedAt}
}
