// Package document renders assembled invoices into downloadable files.
package document

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/entity"
)

// pdfRenderer renders invoices as PDF documents.
type pdfRenderer struct {
	zone *businesstime.Zone
}

// NewPDFRenderer creates a new PDF invoice renderer.
func NewPDFRenderer(zone *businesstime.Zone) adapter.InvoiceRenderer {
	return &pdfRenderer{
		zone: zone,
	}
}

// ContentType returns the PDF MIME type.
func (r *pdfRenderer) ContentType() string {
	return "application/pdf"
}

// FileExtension returns "pdf".
func (r *pdfRenderer) FileExtension() string {
	return "pdf"
}

// Render produces the PDF: a header with client and period, a table with
// one row per order, and the grand total.
func (r *pdfRenderer) Render(_ context.Context, invoice *entity.Invoice) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Invoice")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Client: %s", invoice.Client.Name))
	pdf.Ln(6)
	if invoice.Client.Institution != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Institution: %s", invoice.Client.Institution))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s",
		r.zone.FormatLocalDate(invoice.PeriodStart),
		r.zone.FormatLocalDate(invoice.PeriodEnd),
	))
	pdf.Ln(10)

	widths := []float64{22, 38, 20, 24, 24, 20, 42}
	headers := []string{"Date", "Product", "Qty", "Unit Price", "Total", "Week", "Class/Genre"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, o := range invoice.Orders {
		productName := ""
		unitPrice := ""
		if o.Product != nil {
			productName = o.Product.Name
			unitPrice = o.Product.PricePerUnit.StringFixed(2)
		}
		classGenre := ""
		if o.Class != nil {
			classGenre = o.Class.Name
		}
		if o.Genre != nil {
			if classGenre != "" {
				classGenre += " / "
			}
			classGenre += o.Genre.Name
		}

		cells := []string{
			r.zone.FormatLocalDate(o.Order.CreatedAt),
			productName,
			fmt.Sprintf("%d", o.Order.PagesOrSlides),
			unitPrice,
			o.Order.TotalCost.StringFixed(2),
			o.Order.Week,
			classGenre,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s", invoice.TotalAmount.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
