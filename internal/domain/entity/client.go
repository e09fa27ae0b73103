// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a billing party that orders work.
type Client struct {
	ID          uuid.UUID
	Name        string
	Institution string
	Phone       string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewClient creates a new Client entity.
func NewClient(name, institution, phone, email string) *Client {
	now := time.Now().UTC()

	return &Client{
		ID:          uuid.New(),
		Name:        name,
		Institution: institution,
		Phone:       phone,
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ClientListResult represents the result of listing clients.
type ClientListResult struct {
	Clients    []*Client
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}
