// Package client contains client-related use cases.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/adapter"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// UpdateClientInput represents the input for client updates. Nil pointers
// leave the corresponding field unchanged.
type UpdateClientInput struct {
	ClientID    uuid.UUID
	Name        *string
	Institution *string
	Phone       *string
	Email       *string
}

// UpdateClientOutput represents the output of client updates.
type UpdateClientOutput struct {
	Client *ClientOutput
}

// UpdateClientUseCase handles client update logic.
type UpdateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(clientRepo adapter.ClientRepository) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client update.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*UpdateClientOutput, error) {
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

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNameRequired,
				"clientName is required",
				domainerror.ErrClientNameRequired,
			)
		}
		client.Name = name
	}
	if input.Institution != nil {
		client.Institution = *input.Institution
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	client.UpdatedAt = time.Now().UTC()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &UpdateClientOutput{Client: newClientOutput(client)}, nil
}
