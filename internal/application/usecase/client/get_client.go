// Package client contains client-related use cases.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/adapter"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// GetClientInput represents the input for fetching a single client.
type GetClientInput struct {
	ClientID uuid.UUID
}

// GetClientOutput represents the output of fetching a single client.
type GetClientOutput struct {
	Client *ClientOutput
}

// GetClientUseCase handles fetching a single client.
type GetClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewGetClientUseCase creates a new GetClientUseCase instance.
func NewGetClientUseCase(clientRepo adapter.ClientRepository) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client fetch.
func (uc *GetClientUseCase) Execute(ctx context.Context, input GetClientInput) (*GetClientOutput, error) {
	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return &GetClientOutput{Client: newClientOutput(client)}, nil
}
