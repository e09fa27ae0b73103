package dto

import (
	"github.com/scribe-ops/backend/internal/application/usecase/classification"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
)

// CreateClassificationRequest represents the request body for class or genre
// creation.
type CreateClassificationRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// ClassificationResponse represents a single class or genre in API responses.
type ClassificationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// ClassificationListResponse represents both reference lists together.
type ClassificationListResponse struct {
	Classes []ClassificationResponse `json:"classes"`
	Genres  []ClassificationResponse `json:"genres"`
}

// ToClassificationResponse converts a ClassificationOutput to its DTO.
func ToClassificationResponse(c *classification.ClassificationOutput, zone *businesstime.Zone) ClassificationResponse {
	return ClassificationResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: zone.FormatLocal(c.CreatedAt),
	}
}

// ToClassificationListResponse converts a ListClassificationsOutput to its DTO.
func ToClassificationListResponse(output *classification.ListClassificationsOutput, zone *businesstime.Zone) ClassificationListResponse {
	response := ClassificationListResponse{
		Classes: make([]ClassificationResponse, len(output.Classes)),
		Genres:  make([]ClassificationResponse, len(output.Genres)),
	}
	for i, c := range output.Classes {
		response.Classes[i] = ToClassificationResponse(c, zone)
	}
	for i, g := range output.Genres {
		response.Genres[i] = ToClassificationResponse(g, zone)
	}
	return response
}
