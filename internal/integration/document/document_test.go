package document

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/entity"
)

func sampleInvoice(t *testing.T) *entity.Invoice {
	t.Helper()

	client := entity.NewClient("Prof. Otieno", "Ridge University", "+254700000001", "otieno@example.com")
	product := entity.NewProduct("Assignment", decimal.NewFromInt(10))
	order := entity.NewOrder(
		client.ID, product.ID, nil, nil,
		"Week 3 brief", "Week 3", 5,
		product.PricePerUnit,
		time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
	)

	return entity.NewInvoice(
		client,
		[]*entity.OrderWithRefs{{Order: order, Client: client, Product: product}},
		time.Date(2024, 2, 29, 21, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 20, 59, 59, 0, time.UTC),
	)
}

func TestExcelRendererProducesWorkbook(t *testing.T) {
	zone := businesstime.NewZone("EAT", 3)
	renderer := NewExcelRenderer(zone)

	content, err := renderer.Render(context.Background(), sampleInvoice(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Invoice")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1 order", len(rows))
	}
	if rows[1][0] != "2024-03-10" {
		t.Errorf("date cell = %q", rows[1][0])
	}
	if rows[1][1] != "Assignment" {
		t.Errorf("product cell = %q", rows[1][1])
	}

	summary, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if summary[0][1] != "Prof. Otieno" {
		t.Errorf("summary client = %q", summary[0][1])
	}
}

func TestExcelRendererEmptyInvoice(t *testing.T) {
	zone := businesstime.NewZone("EAT", 3)
	renderer := NewExcelRenderer(zone)

	client := entity.NewClient("Prof. Otieno", "", "", "")
	invoice := entity.NewInvoice(client, nil, time.Now().UTC(), time.Now().UTC())

	content, err := renderer.Render(context.Background(), invoice)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("empty workbook bytes")
	}
}

func TestPDFRendererProducesDocument(t *testing.T) {
	zone := businesstime.NewZone("EAT", 3)
	renderer := NewPDFRenderer(zone)

	content, err := renderer.Render(context.Background(), sampleInvoice(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if renderer.ContentType() != "application/pdf" {
		t.Errorf("content type = %q", renderer.ContentType())
	}
}

func TestRendererMetadata(t *testing.T) {
	zone := businesstime.NewZone("EAT", 3)

	excel := NewExcelRenderer(zone)
	if excel.FileExtension() != "xlsx" {
		t.Errorf("excel extension = %q", excel.FileExtension())
	}

	pdf := NewPDFRenderer(zone)
	if pdf.FileExtension() != "pdf" {
		t.Errorf("pdf extension = %q", pdf.FileExtension())
	}
}
