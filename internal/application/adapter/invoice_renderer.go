// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/scribe-ops/backend/internal/domain/entity"
)

// InvoiceRenderer renders an assembled invoice into a downloadable document.
type InvoiceRenderer interface {
	// Render produces the document bytes for the invoice.
	Render(ctx context.Context, invoice *entity.Invoice) ([]byte, error)

	// ContentType returns the MIME type of the rendered document.
	ContentType() string

	// FileExtension returns the file extension without the leading dot.
	FileExtension() string
}
