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

// CreateClassInput represents the input for class creation.
type CreateClassInput struct {
	Name string
}

// CreateClassOutput represents the output of class creation.
type CreateClassOutput struct {
	Class *ClassificationOutput
}

// CreateClassUseCase handles class creation logic. Names are unique.
type CreateClassUseCase struct {
	classRepo adapter.ClassRepository
}

// NewCreateClassUseCase creates a new CreateClassUseCase instance.
func NewCreateClassUseCase(classRepo adapter.ClassRepository) *CreateClassUseCase {
	return &CreateClassUseCase{
		classRepo: classRepo,
	}
}

// Execute performs the class creation.
func (uc *CreateClassUseCase) Execute(ctx context.Context, input CreateClassInput) (*CreateClassOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewClassificationError(
			domainerror.ErrCodeClassificationNameRequired,
			"name is required",
			domainerror.ErrClassificationNameRequired,
		)
	}

	existing, err := uc.classRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, domainerror.ErrClassificationNotFound) {
		return nil, fmt.Errorf("failed to check class name: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewClassificationError(
			domainerror.ErrCodeClassificationExists,
			fmt.Sprintf("class %q already exists", name),
			domainerror.ErrClassificationExists,
		)
	}

	class := entity.NewClass(name)
	if err := uc.classRepo.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}

	return &CreateClassOutput{Class: classOutput(class)}, nil
}
