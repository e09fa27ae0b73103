// Package invoice contains invoice assembly and rendering use cases.
package invoice

import (
	"context"
	"fmt"
	"strings"

	"github.com/scribe-ops/backend/internal/application/adapter"
)

// ExportInvoiceInput represents the input for invoice export. Format is
// "excel" or "pdf".
type ExportInvoiceInput struct {
	GenerateInvoiceInput
	Format string
}

// ExportInvoiceOutput represents the rendered invoice document.
type ExportInvoiceOutput struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportInvoiceUseCase assembles an invoice and renders it into the
// requested document format.
type ExportInvoiceUseCase struct {
	generate  *GenerateInvoiceUseCase
	renderers map[string]adapter.InvoiceRenderer
}

// NewExportInvoiceUseCase creates a new ExportInvoiceUseCase instance.
func NewExportInvoiceUseCase(generate *GenerateInvoiceUseCase, renderers map[string]adapter.InvoiceRenderer) *ExportInvoiceUseCase {
	return &ExportInvoiceUseCase{
		generate:  generate,
		renderers: renderers,
	}
}

// Execute assembles the invoice and renders it.
func (uc *ExportInvoiceUseCase) Execute(ctx context.Context, input ExportInvoiceInput) (*ExportInvoiceOutput, error) {
	renderer, ok := uc.renderers[input.Format]
	if !ok {
		return nil, fmt.Errorf("unsupported invoice format %q", input.Format)
	}

	generated, err := uc.generate.Execute(ctx, input.GenerateInvoiceInput)
	if err != nil {
		return nil, err
	}

	content, err := renderer.Render(ctx, generated.Invoice)
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	name := strings.ReplaceAll(strings.ToLower(generated.Invoice.Client.Name), " ", "_")
	filename := fmt.Sprintf("invoice_%s_%s.%s",
		name,
		generated.PeriodStart.Format("20060102"),
		renderer.FileExtension(),
	)

	return &ExportInvoiceOutput{
		Content:     content,
		ContentType: renderer.ContentType(),
		Filename:    filename,
	}, nil
}
