package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scribe-ops/backend/internal/application/usecase/classification"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/integration/entrypoint/dto"
)

// ClassificationController handles class and genre endpoints.
type ClassificationController struct {
	listUseCase        *classification.ListClassificationsUseCase
	createClassUseCase *classification.CreateClassUseCase
	createGenreUseCase *classification.CreateGenreUseCase
	zone               *businesstime.Zone
}

// NewClassificationController creates a new classification controller instance.
func NewClassificationController(
	listUseCase *classification.ListClassificationsUseCase,
	createClassUseCase *classification.CreateClassUseCase,
	createGenreUseCase *classification.CreateGenreUseCase,
	zone *businesstime.Zone,
) *ClassificationController {
	return &ClassificationController{
		listUseCase:        listUseCase,
		createClassUseCase: createClassUseCase,
		createGenreUseCase: createGenreUseCase,
		zone:               zone,
	}
}

// List handles GET /meta requests: both reference lists, name-ordered.
func (c *ClassificationController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClassificationListResponse(output, c.zone))
}

// CreateClass handles POST /meta/classes requests.
func (c *ClassificationController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createClassUseCase.Execute(ctx.Request.Context(), classification.CreateClassInput{Name: req.Name})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClassificationResponse(output.Class, c.zone))
}

// CreateGenre handles POST /meta/genres requests.
func (c *ClassificationController) CreateGenre(ctx *gin.Context) {
	var req dto.CreateClassificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createGenreUseCase.Execute(ctx.Request.Context(), classification.CreateGenreInput{Name: req.Name})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClassificationResponse(output.Genre, c.zone))
}
