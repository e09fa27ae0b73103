package dto

import (
	"github.com/scribe-ops/backend/internal/application/usecase/product"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
)

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=255"`
	PricePerUnit float64 `json:"pricePerUnit" binding:"gte=0"`
}

// UpdateProductRequest represents the request body for product update.
type UpdateProductRequest struct {
	Name         *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	PricePerUnit *float64 `json:"pricePerUnit,omitempty" binding:"omitempty,gte=0"`
}

// ProductResponse represents a single product in API responses.
type ProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PricePerUnit float64 `json:"pricePerUnit"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ProductListResponse represents the response for listing products.
type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

// ToProductResponse converts a ProductOutput to a ProductResponse DTO.
func ToProductResponse(p *product.ProductOutput, zone *businesstime.Zone) ProductResponse {
	return ProductResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		PricePerUnit: p.PricePerUnit.InexactFloat64(),
		CreatedAt:    zone.FormatLocal(p.CreatedAt),
		UpdatedAt:    zone.FormatLocal(p.UpdatedAt),
	}
}

// ToProductListResponse converts a ListProductsOutput to ProductListResponse.
func ToProductListResponse(output *product.ListProductsOutput, zone *businesstime.Zone) ProductListResponse {
	data := make([]ProductResponse, len(output.Products))
	for i, p := range output.Products {
		data[i] = ToProductResponse(p, zone)
	}

	return ProductListResponse{
		Data:       data,
		Total:      output.Pagination.Total,
		Page:       output.Pagination.Page,
		PageSize:   output.Pagination.PageSize,
		TotalPages: output.Pagination.TotalPages,
	}
}
