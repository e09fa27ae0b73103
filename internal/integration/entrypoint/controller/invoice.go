package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/usecase/invoice"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/integration/entrypoint/dto"
)

// InvoiceController handles invoice endpoints. Invoices are assembled fresh
// per request and never stored.
type InvoiceController struct {
	generateUseCase *invoice.GenerateInvoiceUseCase
	exportUseCase   *invoice.ExportInvoiceUseCase
	zone            *businesstime.Zone
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	generateUseCase *invoice.GenerateInvoiceUseCase,
	exportUseCase *invoice.ExportInvoiceUseCase,
	zone *businesstime.Zone,
) *InvoiceController {
	return &InvoiceController{
		generateUseCase: generateUseCase,
		exportUseCase:   exportUseCase,
		zone:            zone,
	}
}

func invoiceQueryInput(ctx *gin.Context) (invoice.GenerateInvoiceInput, bool) {
	clientIDStr := ctx.Query("clientId")
	if clientIDStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "clientId is required",
		})
		return invoice.GenerateInvoiceInput{}, false
	}

	clientID, err := uuid.Parse(clientIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid clientId format",
		})
		return invoice.GenerateInvoiceInput{}, false
	}

	return invoice.GenerateInvoiceInput{
		ClientID:  clientID,
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	}, true
}

// Data handles GET /invoices/data requests.
func (c *InvoiceController) Data(ctx *gin.Context) {
	input, ok := invoiceQueryInput(ctx)
	if !ok {
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice, c.zone))
}

// Download handles GET /invoices/download/:format requests, serving the
// rendered document as an attachment.
func (c *InvoiceController) Download(ctx *gin.Context) {
	format := ctx.Param("format")
	if format != "excel" && format != "pdf" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("unsupported format %q, expected excel or pdf", format),
		})
		return
	}

	generateInput, ok := invoiceQueryInput(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), invoice.ExportInvoiceInput{
		GenerateInvoiceInput: generateInput,
		Format:               format,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}
