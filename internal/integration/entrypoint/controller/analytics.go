package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/usecase/analytics"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles analytics endpoints. Window validation happens
// in the use cases, before any aggregate query runs.
type AnalyticsController struct {
	earningsUseCase *analytics.GetEarningsComparisonUseCase
	revenueUseCase  *analytics.GetRevenueTrendUseCase
	ordersUseCase   *analytics.GetOrdersTrendUseCase
	rankingsUseCase *analytics.GetClientRankingsUseCase
	zone            *businesstime.Zone
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	earningsUseCase *analytics.GetEarningsComparisonUseCase,
	revenueUseCase *analytics.GetRevenueTrendUseCase,
	ordersUseCase *analytics.GetOrdersTrendUseCase,
	rankingsUseCase *analytics.GetClientRankingsUseCase,
	zone *businesstime.Zone,
) *AnalyticsController {
	return &AnalyticsController{
		earningsUseCase: earningsUseCase,
		revenueUseCase:  revenueUseCase,
		ordersUseCase:   ordersUseCase,
		rankingsUseCase: rankingsUseCase,
		zone:            zone,
	}
}

// EarningsComparison handles GET /analytics/earnings/comparison requests.
func (c *AnalyticsController) EarningsComparison(ctx *gin.Context) {
	output, err := c.earningsUseCase.Execute(ctx.Request.Context(), analytics.GetEarningsComparisonInput{
		Period: ctx.DefaultQuery("period", "month"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEarningsComparisonResponse(output, c.zone))
}

// RevenueTrend handles GET /analytics/revenue/trend requests.
func (c *AnalyticsController) RevenueTrend(ctx *gin.Context) {
	output, err := c.revenueUseCase.Execute(ctx.Request.Context(), analytics.GetRevenueTrendInput{
		Period:    ctx.DefaultQuery("period", "1month"),
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueTrendResponse(output, c.zone))
}

// OrdersTrend handles GET /analytics/orders/trend requests.
func (c *AnalyticsController) OrdersTrend(ctx *gin.Context) {
	output, err := c.ordersUseCase.Execute(ctx.Request.Context(), analytics.GetOrdersTrendInput{
		Period:    ctx.DefaultQuery("period", "1month"),
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrdersTrendResponse(output, c.zone))
}

// ClientRankings handles GET /analytics/clients/earnings requests.
func (c *AnalyticsController) ClientRankings(ctx *gin.Context) {
	input := analytics.GetClientRankingsInput{
		Period:    ctx.DefaultQuery("period", "1month"),
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	}

	if clientIDStr := ctx.Query("clientId"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid clientId format",
			})
			return
		}
		input.ClientID = &clientID
	}

	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.rankingsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientRankingsResponse(output, c.zone))
}
