// Package client contains client-related use cases.
package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/domain/entity"
)

// ClientOutput represents a single client in the output.
type ClientOutput struct {
	ID          uuid.UUID
	Name        string
	Institution string
	Phone       string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func newClientOutput(client *entity.Client) *ClientOutput {
	return &ClientOutput{
		ID:          client.ID,
		Name:        client.Name,
		Institution: client.Institution,
		Phone:       client.Phone,
		Email:       client.Email,
		CreatedAt:   client.CreatedAt,
		UpdatedAt:   client.UpdatedAt,
	}
}
