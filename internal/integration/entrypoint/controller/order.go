package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/usecase/order"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/integration/entrypoint/dto"
)

// OrderController handles order endpoints.
type OrderController struct {
	listUseCase    *order.ListOrdersUseCase
	getUseCase     *order.GetOrderUseCase
	createUseCase  *order.CreateOrderUseCase
	updateUseCase  *order.UpdateOrderUseCase
	deleteUseCase  *order.DeleteOrderUseCase
	summaryUseCase *order.GetOrderSummaryUseCase
	zone           *businesstime.Zone
}

// NewOrderController creates a new order controller instance.
func NewOrderController(
	listUseCase *order.ListOrdersUseCase,
	getUseCase *order.GetOrderUseCase,
	createUseCase *order.CreateOrderUseCase,
	updateUseCase *order.UpdateOrderUseCase,
	deleteUseCase *order.DeleteOrderUseCase,
	summaryUseCase *order.GetOrderSummaryUseCase,
	zone *businesstime.Zone,
) *OrderController {
	return &OrderController{
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
		zone:           zone,
	}
}

// List handles GET /orders requests.
func (c *OrderController) List(ctx *gin.Context) {
	input := order.ListOrdersInput{
		Search:    ctx.Query("search"),
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
		SortBy:    ctx.Query("sortBy"),
		SortDesc:  ctx.Query("sortDir") == "desc",
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
	if productIDStr := ctx.Query("productId"); productIDStr != "" {
		productID, err := uuid.Parse(productIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid productId format",
			})
			return
		}
		input.ProductID = &productID
	}

	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if sizeStr := ctx.Query("pageSize"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil {
			input.PageSize = size
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(output, c.zone))
}

// Get handles GET /orders/:id requests.
func (c *OrderController) Get(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid order ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), order.GetOrderInput{OrderID: orderID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(output.Order, c.zone))
}

// Summary handles GET /orders/summary requests.
func (c *OrderController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OrderSummaryResponse{
		TotalOrders:  output.TotalOrders,
		TotalRevenue: output.TotalRevenue.InexactFloat64(),
	})
}

// Create handles POST /orders requests.
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := order.CreateOrderInput{
		Description:   req.Description,
		Week:          req.Week,
		PagesOrSlides: req.PagesOrSlides,
		OrderDate:     req.OrderDate,
	}

	// Binding already validated the UUID formats.
	input.ClientID = uuid.MustParse(req.ClientID)
	input.ProductID = uuid.MustParse(req.ProductID)
	if req.ClassID != nil {
		id := uuid.MustParse(*req.ClassID)
		input.ClassID = &id
	}
	if req.GenreID != nil {
		id := uuid.MustParse(*req.GenreID)
		input.GenreID = &id
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(output.Order, c.zone))
}

// Update handles PATCH /orders/:id requests.
func (c *OrderController) Update(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid order ID format",
		})
		return
	}

	var req dto.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := order.UpdateOrderInput{
		OrderID:       orderID,
		Description:   req.Description,
		Week:          req.Week,
		PagesOrSlides: req.PagesOrSlides,
		OrderDate:     req.OrderDate,
	}

	if req.ClientID != nil {
		id := uuid.MustParse(*req.ClientID)
		input.ClientID = &id
	}
	if req.ProductID != nil {
		id := uuid.MustParse(*req.ProductID)
		input.ProductID = &id
	}
	if req.ClassID != nil {
		id := uuid.MustParse(*req.ClassID)
		input.ClassID = &id
	}
	if req.GenreID != nil {
		id := uuid.MustParse(*req.GenreID)
		input.GenreID = &id
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(output.Order, c.zone))
}

// Delete handles DELETE /orders/:id requests.
func (c *OrderController) Delete(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid order ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), order.DeleteOrderInput{OrderID: orderID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
