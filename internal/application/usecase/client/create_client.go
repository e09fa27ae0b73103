// Package client contains client-related use cases.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	Name        string
	Institution string
	Phone       string
	Email       string
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *ClientOutput
}

// CreateClientUseCase handles client creation logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client creation.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNameRequired,
			"clientName is required",
			domainerror.ErrClientNameRequired,
		)
	}

	client := entity.NewClient(name, input.Institution, input.Phone, input.Email)

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &CreateClientOutput{Client: newClientOutput(client)}, nil
}
