package dto

import (
	"github.com/scribe-ops/backend/internal/application/usecase/client"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
)

// CreateClientRequest represents the request body for client creation.
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Institution string `json:"institution,omitempty" binding:"omitempty,max=255"`
	Phone       string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Email       string `json:"email,omitempty" binding:"omitempty,email"`
}

// UpdateClientRequest represents the request body for client update.
type UpdateClientRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Institution *string `json:"institution,omitempty" binding:"omitempty,max=255"`
	Phone       *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
}

// ClientResponse represents a single client in API responses. Timestamps are
// rendered in business-local time.
type ClientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ClientListResponse represents the response for listing clients.
type ClientListResponse struct {
	Data       []ClientResponse `json:"data"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// ToClientResponse converts a ClientOutput to a ClientResponse DTO.
func ToClientResponse(c *client.ClientOutput, zone *businesstime.Zone) ClientResponse {
	return ClientResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Institution: c.Institution,
		Phone:       c.Phone,
		Email:       c.Email,
		CreatedAt:   zone.FormatLocal(c.CreatedAt),
		UpdatedAt:   zone.FormatLocal(c.UpdatedAt),
	}
}

// ToClientListResponse converts a ListClientsOutput to ClientListResponse.
func ToClientListResponse(output *client.ListClientsOutput, zone *businesstime.Zone) ClientListResponse {
	data := make([]ClientResponse, len(output.Clients))
	for i, c := range output.Clients {
		data[i] = ToClientResponse(c, zone)
	}

	return ClientListResponse{
		Data:       data,
		Total:      output.Pagination.Total,
		Page:       output.Pagination.Page,
		PageSize:   output.Pagination.PageSize,
		TotalPages: output.Pagination.TotalPages,
	}
}
