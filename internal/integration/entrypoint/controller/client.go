package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/usecase/client"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/integration/entrypoint/dto"
)

// ClientController handles client endpoints.
type ClientController struct {
	listUseCase   *client.ListClientsUseCase
	getUseCase    *client.GetClientUseCase
	createUseCase *client.CreateClientUseCase
	updateUseCase *client.UpdateClientUseCase
	deleteUseCase *client.DeleteClientUseCase
	zone          *businesstime.Zone
}

// NewClientController creates a new client controller instance.
func NewClientController(
	listUseCase *client.ListClientsUseCase,
	getUseCase *client.GetClientUseCase,
	createUseCase *client.CreateClientUseCase,
	updateUseCase *client.UpdateClientUseCase,
	deleteUseCase *client.DeleteClientUseCase,
	zone *businesstime.Zone,
) *ClientController {
	return &ClientController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		zone:          zone,
	}
}

// List handles GET /clients requests.
func (c *ClientController) List(ctx *gin.Context) {
	input := client.ListClientsInput{
		Search:    ctx.Query("search"),
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
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

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(output, c.zone))
}

// Get handles GET /clients/:id requests.
func (c *ClientController) Get(ctx *gin.Context) {
	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), client.GetClientInput{ClientID: clientID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client, c.zone))
}

// Create handles POST /clients requests.
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), client.CreateClientInput{
		Name:        req.Name,
		Institution: req.Institution,
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(output.Client, c.zone))
}

// Update handles PATCH /clients/:id requests.
func (c *ClientController) Update(ctx *gin.Context) {
	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}

	var req dto.UpdateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), client.UpdateClientInput{
		ClientID:    clientID,
		Name:        req.Name,
		Institution: req.Institution,
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client, c.zone))
}

// Delete handles DELETE /clients/:id requests. Deletion cascades to the
// client's orders.
func (c *ClientController) Delete(ctx *gin.Context) {
	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), client.DeleteClientInput{ClientID: clientID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
