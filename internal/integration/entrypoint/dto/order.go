package dto

import (
	"github.com/scribe-ops/backend/internal/application/usecase/order"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
)

// CreateOrderRequest represents the request body for order creation.
// OrderDate is an optional business-local datetime; when absent the current
// instant is used.
type CreateOrderRequest struct {
	ClientID      string  `json:"clientId" binding:"required,uuid"`
	ProductID     string  `json:"productId" binding:"required,uuid"`
	ClassID       *string `json:"classId,omitempty" binding:"omitempty,uuid"`
	GenreID       *string `json:"genreId,omitempty" binding:"omitempty,uuid"`
	Description   string  `json:"description,omitempty" binding:"omitempty,max=1000"`
	Week          string  `json:"week,omitempty" binding:"omitempty,max=50"`
	PagesOrSlides int     `json:"pagesOrSlides" binding:"required"`
	OrderDate     string  `json:"orderDate,omitempty"`
}

// UpdateOrderRequest represents the request body for order update.
type UpdateOrderRequest struct {
	ClientID      *string `json:"clientId,omitempty" binding:"omitempty,uuid"`
	ProductID     *string `json:"productId,omitempty" binding:"omitempty,uuid"`
	ClassID       *string `json:"classId,omitempty" binding:"omitempty,uuid"`
	GenreID       *string `json:"genreId,omitempty" binding:"omitempty,uuid"`
	Description   *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Week          *string `json:"week,omitempty" binding:"omitempty,max=50"`
	PagesOrSlides *int    `json:"pagesOrSlides,omitempty"`
	OrderDate     *string `json:"orderDate,omitempty"`
}

// OrderResponse represents a single order in API responses, joined with its
// client, product, and optional classifications.
type OrderResponse struct {
	ID            string  `json:"id"`
	ClientID      string  `json:"clientId"`
	ClientName    string  `json:"clientName"`
	Institution   string  `json:"institution"`
	ProductID     string  `json:"productId"`
	ProductName   string  `json:"productName"`
	PricePerUnit  float64 `json:"pricePerUnit"`
	ClassID       *string `json:"classId,omitempty"`
	ClassName     string  `json:"className,omitempty"`
	GenreID       *string `json:"genreId,omitempty"`
	GenreName     string  `json:"genreName,omitempty"`
	Description   string  `json:"description"`
	Week          string  `json:"week"`
	PagesOrSlides int     `json:"pagesOrSlides"`
	TotalCost     float64 `json:"totalCost"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// OrderListResponse represents the response for listing orders.
type OrderListResponse struct {
	Data       []OrderResponse `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// OrderSummaryResponse represents ledger-wide order totals.
type OrderSummaryResponse struct {
	TotalOrders  int64   `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// ToOrderResponse converts an OrderOutput to an OrderResponse DTO.
func ToOrderResponse(o *order.OrderOutput, zone *businesstime.Zone) OrderResponse {
	response := OrderResponse{
		ID:            o.ID.String(),
		ClientID:      o.ClientID.String(),
		ClientName:    o.ClientName,
		Institution:   o.Institution,
		ProductID:     o.ProductID.String(),
		ProductName:   o.ProductName,
		PricePerUnit:  o.PricePerUnit.InexactFloat64(),
		ClassName:     o.ClassName,
		GenreName:     o.GenreName,
		Description:   o.Description,
		Week:          o.Week,
		PagesOrSlides: o.PagesOrSlides,
		TotalCost:     o.TotalCost.InexactFloat64(),
		CreatedAt:     zone.FormatLocal(o.CreatedAt),
		UpdatedAt:     zone.FormatLocal(o.UpdatedAt),
	}

	if o.ClassID != nil {
		id := o.ClassID.String()
		response.ClassID = &id
	}
	if o.GenreID != nil {
		id := o.GenreID.String()
		response.GenreID = &id
	}

	return response
}

// ToOrderListResponse converts a ListOrdersOutput to OrderListResponse.
func ToOrderListResponse(output *order.ListOrdersOutput, zone *businesstime.Zone) OrderListResponse {
	data := make([]OrderResponse, len(output.Orders))
	for i, o := range output.Orders {
		data[i] = ToOrderResponse(o, zone)
	}

	return OrderListResponse{
		Data:       data,
		Total:      output.Pagination.Total,
		Page:       output.Pagination.Page,
		PageSize:   output.Pagination.PageSize,
		TotalPages: output.Pagination.TotalPages,
	}
}
