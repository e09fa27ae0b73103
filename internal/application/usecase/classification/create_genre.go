// Package classification contains class and genre use cases.
package classification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// CreateGenreInput represents the input for genre creation.
type CreateGenreInput struct {
	Name string
}

// CreateGenreOutput represents the output of genre creation.
type CreateGenreOutput struct {
	Genre *ClassificationOutput
}

// CreateGenreUseCase handles genre creation logic. Names are unique.
type CreateGenreUseCase struct {
	genreRepo adapter.GenreRepository
}

// NewCreateGenreUseCase creates a new CreateGenreUseCase instance.
func NewCreateGenreUseCase(genreRepo adapter.GenreRepository) *CreateGenreUseCase {
	return &CreateGenreUseCase{
		genreRepo: genreRepo,
	}
}

// Execute performs the genre creation.
func (uc *CreateGenreUseCase) Execute(ctx context.Context, input CreateGenreInput) (*CreateGenreOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewClassificationError(
			domainerror.ErrCodeClassificationNameRequired,
			"name is required",
			domainerror.ErrClassificationNameRequired,
		)
	}

	existing, err := uc.genreRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, domainerror.ErrClassificationNotFound) {
		return nil, fmt.Errorf("failed to check genre name: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewClassificationError(
			domainerror.ErrCodeClassificationExists,
			fmt.Sprintf("genre %q already exists", name),
			domainerror.ErrClassificationExists,
		)
	}

	genre := entity.NewGenre(name)
	if err := uc.genreRepo.Create(ctx, genre); err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	return &CreateGenreOutput{Genre: genreOutput(genre)}, nil
}
