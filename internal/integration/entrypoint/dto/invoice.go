package dto

import (
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/entity"
)

// InvoiceOrderResponse represents one order line on an invoice.
type InvoiceOrderResponse struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	ProductName   string  `json:"productName"`
	Description   string  `json:"description"`
	Week          string  `json:"week"`
	ClassName     string  `json:"className,omitempty"`
	GenreName     string  `json:"genreName,omitempty"`
	PagesOrSlides int     `json:"pagesOrSlides"`
	PricePerUnit  float64 `json:"pricePerUnit"`
	TotalCost     float64 `json:"totalCost"`
}

// InvoiceClientResponse represents the billed client on an invoice.
type InvoiceClientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// InvoiceResponse represents the structured invoice data response.
type InvoiceResponse struct {
	Client      InvoiceClientResponse  `json:"client"`
	Orders      []InvoiceOrderResponse `json:"orders"`
	OrderCount  int                    `json:"orderCount"`
	TotalAmount float64                `json:"totalAmount"`
	PeriodStart string                 `json:"periodStart"`
	PeriodEnd   string                 `json:"periodEnd"`
}

// ToInvoiceResponse converts an assembled Invoice to its DTO.
func ToInvoiceResponse(inv *entity.Invoice, zone *businesstime.Zone) InvoiceResponse {
	orders := make([]InvoiceOrderResponse, len(inv.Orders))
	for i, o := range inv.Orders {
		line := InvoiceOrderResponse{
			ID:            o.Order.ID.String(),
			Date:          zone.FormatLocalDate(o.Order.CreatedAt),
			Description:   o.Order.Description,
			Week:          o.Order.Week,
			PagesOrSlides: o.Order.PagesOrSlides,
			TotalCost:     o.Order.TotalCost.InexactFloat64(),
		}
		if o.Product != nil {
			line.ProductName = o.Product.Name
			line.PricePerUnit = o.Product.PricePerUnit.InexactFloat64()
		}
		if o.Class != nil {
			line.ClassName = o.Class.Name
		}
		if o.Genre != nil {
			line.GenreName = o.Genre.Name
		}
		orders[i] = line
	}

	return InvoiceResponse{
		Client: InvoiceClientResponse{
			ID:          inv.Client.ID.String(),
			Name:        inv.Client.Name,
			Institution: inv.Client.Institution,
			Phone:       inv.Client.Phone,
			Email:       inv.Client.Email,
		},
		Orders:      orders,
		OrderCount:  len(orders),
		TotalAmount: inv.TotalAmount.Round(2).InexactFloat64(),
		PeriodStart: zone.FormatLocal(inv.PeriodStart),
		PeriodEnd:   zone.FormatLocal(inv.PeriodEnd),
	}
}
