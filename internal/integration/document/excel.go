// Package document renders assembled invoices into downloadable files.
package document

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/entity"
)

var excelHeaders = []string{
	"Date", "Product", "Description", "Pages/Slides",
	"Price Per Unit", "Total Cost", "Week", "Class", "Genre",
}

// excelRenderer renders invoices as xlsx workbooks.
type excelRenderer struct {
	zone *businesstime.Zone
}

// NewExcelRenderer creates a new Excel invoice renderer.
func NewExcelRenderer(zone *businesstime.Zone) adapter.InvoiceRenderer {
	return &excelRenderer{
		zone: zone,
	}
}

// ContentType returns the xlsx MIME type.
func (r *excelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension returns "xlsx".
func (r *excelRenderer) FileExtension() string {
	return "xlsx"
}

// Render produces the workbook: an Invoice sheet with one row per order and
// a Summary sheet with the client, period, and total.
func (r *excelRenderer) Render(_ context.Context, invoice *entity.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Invoice"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, o := range invoice.Orders {
		productName := ""
		if o.Product != nil {
			productName = o.Product.Name
		}
		className := ""
		if o.Class != nil {
			className = o.Class.Name
		}
		genreName := ""
		if o.Genre != nil {
			genreName = o.Genre.Name
		}
		unitPrice := 0.0
		if o.Product != nil {
			unitPrice, _ = o.Product.PricePerUnit.Float64()
		}
		totalCost, _ := o.Order.TotalCost.Float64()

		values := []interface{}{
			r.zone.FormatLocalDate(o.Order.CreatedAt),
			productName,
			o.Order.Description,
			o.Order.PagesOrSlides,
			unitPrice,
			totalCost,
			o.Order.Week,
			className,
			genreName,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, fmt.Errorf("failed to add summary sheet: %w", err)
	}

	totalAmount, _ := invoice.TotalAmount.Float64()
	summaryRows := [][]interface{}{
		{"Client", invoice.Client.Name},
		{"Institution", invoice.Client.Institution},
		{"Period Start", r.zone.FormatLocalDate(invoice.PeriodStart)},
		{"Period End", r.zone.FormatLocalDate(invoice.PeriodEnd)},
		{"Orders", len(invoice.Orders)},
		{"Total Amount", totalAmount},
	}
	for rowIdx, row := range summaryRows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(summary, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
