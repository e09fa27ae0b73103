package dto

import (
	"github.com/scribe-ops/backend/internal/application/usecase/analytics"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/valueobject"
)

// PeriodSummaryResponse is one window's aggregate in a period comparison.
// Dates are business-local ISO-8601.
type PeriodSummaryResponse struct {
	Label     string  `json:"label"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Revenue   float64 `json:"revenue"`
	Orders    int     `json:"orders"`
}

// EarningsComparisonResponse represents the period comparison response.
type EarningsComparisonResponse struct {
	Current                PeriodSummaryResponse `json:"current"`
	Previous               PeriodSummaryResponse `json:"previous"`
	PercentageChange       float64               `json:"percentageChange"`
	OrdersPercentageChange float64               `json:"ordersPercentageChange"`
}

// RevenuePointResponse is one local calendar day's revenue bucket.
type RevenuePointResponse struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// RevenueTrendResponse represents the revenue trend response.
type RevenueTrendResponse struct {
	Period        string                 `json:"period"`
	StartDate     string                 `json:"startDate"`
	EndDate       string                 `json:"endDate"`
	Data          []RevenuePointResponse `json:"data"`
	Total         float64                `json:"total"`
	AveragePerDay float64                `json:"averagePerDay"`
}

// OrdersPointResponse is one local calendar day's order count bucket.
type OrdersPointResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// OrdersTrendResponse represents the order-count trend response.
type OrdersTrendResponse struct {
	Period        string                `json:"period"`
	StartDate     string                `json:"startDate"`
	EndDate       string                `json:"endDate"`
	Data          []OrdersPointResponse `json:"data"`
	Total         int                   `json:"total"`
	AveragePerDay float64               `json:"averagePerDay"`
}

// ClientRankingResponse is one client's standing in the rankings.
type ClientRankingResponse struct {
	ClientID          string  `json:"clientId"`
	ClientName        string  `json:"clientName"`
	Institution       string  `json:"institution"`
	TotalRevenue      float64 `json:"totalRevenue"`
	OrderCount        int     `json:"orderCount"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// ClientRankingsResponse represents the client rankings response.
type ClientRankingsResponse struct {
	StartDate string                  `json:"startDate"`
	EndDate   string                  `json:"endDate"`
	Data      []ClientRankingResponse `json:"data"`
}

func periodSummaryResponse(s analytics.PeriodSummary, zone *businesstime.Zone) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		Label:     s.Window.Label,
		StartDate: zone.FormatLocal(s.Window.LocalStart),
		EndDate:   zone.FormatLocal(s.Window.LocalEnd),
		Revenue:   s.Revenue.InexactFloat64(),
		Orders:    s.Orders,
	}
}

func windowBounds(w valueobject.DualWindow, zone *businesstime.Zone) (string, string) {
	return zone.FormatLocal(w.LocalStart), zone.FormatLocal(w.LocalEnd)
}

// ToEarningsComparisonResponse converts a comparison output to its DTO.
func ToEarningsComparisonResponse(output *analytics.GetEarningsComparisonOutput, zone *businesstime.Zone) EarningsComparisonResponse {
	return EarningsComparisonResponse{
		Current:                periodSummaryResponse(output.Current, zone),
		Previous:               periodSummaryResponse(output.Previous, zone),
		PercentageChange:       output.PercentageChange.InexactFloat64(),
		OrdersPercentageChange: output.OrdersPercentageChange.InexactFloat64(),
	}
}

// ToRevenueTrendResponse converts a revenue trend output to its DTO.
func ToRevenueTrendResponse(output *analytics.GetRevenueTrendOutput, zone *businesstime.Zone) RevenueTrendResponse {
	start, end := windowBounds(output.Window, zone)
	data := make([]RevenuePointResponse, len(output.Data))
	for i, p := range output.Data {
		data[i] = RevenuePointResponse{
			Date:    p.Date,
			Revenue: p.Revenue.InexactFloat64(),
			Orders:  p.Orders,
		}
	}

	return RevenueTrendResponse{
		Period:        output.Period,
		StartDate:     start,
		EndDate:       end,
		Data:          data,
		Total:         output.Total.InexactFloat64(),
		AveragePerDay: output.AveragePerDay.InexactFloat64(),
	}
}

// ToOrdersTrendResponse converts an order-count trend output to its DTO.
func ToOrdersTrendResponse(output *analytics.GetOrdersTrendOutput, zone *businesstime.Zone) OrdersTrendResponse {
	start, end := windowBounds(output.Window, zone)
	data := make([]OrdersPointResponse, len(output.Data))
	for i, p := range output.Data {
		data[i] = OrdersPointResponse{Date: p.Date, Count: p.Count}
	}

	return OrdersTrendResponse{
		Period:        output.Period,
		StartDate:     start,
		EndDate:       end,
		Data:          data,
		Total:         output.Total,
		AveragePerDay: output.AveragePerDay.InexactFloat64(),
	}
}

// ToClientRankingsResponse converts a rankings output to its DTO.
func ToClientRankingsResponse(output *analytics.GetClientRankingsOutput, zone *businesstime.Zone) ClientRankingsResponse {
	start, end := windowBounds(output.Window, zone)
	data := make([]ClientRankingResponse, len(output.Data))
	for i, r := range output.Data {
		data[i] = ClientRankingResponse{
			ClientID:          r.ClientID.String(),
			ClientName:        r.ClientName,
			Institution:       r.Institution,
			TotalRevenue:      r.TotalRevenue.InexactFloat64(),
			OrderCount:        r.OrderCount,
			AverageOrderValue: r.AverageOrderValue.InexactFloat64(),
		}
	}

	return ClientRankingsResponse{StartDate: start, EndDate: end, Data: data}
}
