package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/application/usecase/product"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/integration/entrypoint/dto"
)

// ProductController handles product endpoints.
type ProductController struct {
	listUseCase   *product.ListProductsUseCase
	getUseCase    *product.GetProductUseCase
	createUseCase *product.CreateProductUseCase
	updateUseCase *product.UpdateProductUseCase
	deleteUseCase *product.DeleteProductUseCase
	zone          *businesstime.Zone
}

// NewProductController creates a new product controller instance.
func NewProductController(
	listUseCase *product.ListProductsUseCase,
	getUseCase *product.GetProductUseCase,
	createUseCase *product.CreateProductUseCase,
	updateUseCase *product.UpdateProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
	zone *businesstime.Zone,
) *ProductController {
	return &ProductController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		zone:          zone,
	}
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	input := product.ListProductsInput{
		Search:    ctx.Query("search"),
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
		SortBy:    ctx.Query("sortBy"),
		SortDesc:  ctx.Query("sortDir") == "desc",
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

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output, c.zone))
}

// Get handles GET /products/:id requests.
func (c *ProductController) Get(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), product.GetProductInput{ProductID: productID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product, c.zone))
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), product.CreateProductInput{
		Name:         req.Name,
		PricePerUnit: decimal.NewFromFloat(req.PricePerUnit),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product, c.zone))
}

// Update handles PATCH /products/:id requests. A price change applies to
// future orders only.
func (c *ProductController) Update(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := product.UpdateProductInput{
		ProductID: productID,
		Name:      req.Name,
	}
	if req.PricePerUnit != nil {
		price := decimal.NewFromFloat(*req.PricePerUnit)
		input.PricePerUnit = &price
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product, c.zone))
}

// Delete handles DELETE /products/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), product.DeleteProductInput{ProductID: productID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
