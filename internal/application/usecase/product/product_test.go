package product

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

type fakeProductRepo struct {
	prods map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{prods: map[uuid.UUID]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.prods[product.ID] = product
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := f.prods[id]
	if !ok {
		return nil, domainerror.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) List(_ context.Context, _ adapter.ProductFilter, pagination adapter.ProductPagination) (*entity.ProductListResult, error) {
	products := make([]*entity.Product, 0, len(f.prods))
	for _, p := range f.prods {
		products = append(products, p)
	}
	return &entity.ProductListResult{
		Products:   products,
		Total:      int64(len(products)),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: 1,
	}, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	f.prods[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.prods, id)
	return nil
}

func TestCreateProduct(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewCreateProductUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateProductInput{
		Name:         "Slides",
		PricePerUnit: decimal.NewFromFloat(7.25),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Product.PricePerUnit.Equal(decimal.NewFromFloat(7.25)) {
		t.Errorf("pricePerUnit = %s", output.Product.PricePerUnit)
	}
}

func TestCreateProductValidation(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewCreateProductUseCase(repo)

	_, err := uc.Execute(context.Background(), CreateProductInput{Name: ""})
	if !errors.Is(err, domainerror.ErrProductNameRequired) {
		t.Fatalf("expected ErrProductNameRequired, got %v", err)
	}

	_, err = uc.Execute(context.Background(), CreateProductInput{
		Name:         "Slides",
		PricePerUnit: decimal.NewFromInt(-1),
	})
	if !errors.Is(err, domainerror.ErrInvalidUnitPrice) {
		t.Fatalf("expected ErrInvalidUnitPrice, got %v", err)
	}

	// Zero is a legal price.
	if _, err := uc.Execute(context.Background(), CreateProductInput{Name: "Sample"}); err != nil {
		t.Fatalf("zero price rejected: %v", err)
	}
}

func TestUpdateProductPrice(t *testing.T) {
	repo := newFakeProductRepo()
	existing := entity.NewProduct("Assignment", decimal.NewFromInt(10))
	repo.prods[existing.ID] = existing

	uc := NewUpdateProductUseCase(repo)
	price := decimal.NewFromInt(15)
	output, err := uc.Execute(context.Background(), UpdateProductInput{
		ProductID:    existing.ID,
		PricePerUnit: &price,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Product.PricePerUnit.Equal(decimal.NewFromInt(15)) {
		t.Errorf("pricePerUnit = %s, want 15", output.Product.PricePerUnit)
	}
	if output.Product.Name != "Assignment" {
		t.Errorf("name changed unexpectedly: %q", output.Product.Name)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	uc := NewUpdateProductUseCase(newFakeProductRepo())

	_, err := uc.Execute(context.Background(), UpdateProductInput{ProductID: uuid.New()})
	if !errors.Is(err, domainerror.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeProductRepo()
	existing := entity.NewProduct("Assignment", decimal.NewFromInt(10))
	repo.prods[existing.ID] = existing

	uc := NewDeleteProductUseCase(repo)
	if _, err := uc.Execute(context.Background(), DeleteProductInput{ProductID: existing.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.prods) != 0 {
		t.Error("product still present after delete")
	}
}

func TestGetProduct(t *testing.T) {
	repo := newFakeProductRepo()
	existing := entity.NewProduct("Assignment", decimal.NewFromInt(10))
	repo.prods[existing.ID] = existing

	uc := NewGetProductUseCase(repo)
	output, err := uc.Execute(context.Background(), GetProductInput{ProductID: existing.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Product.Name != "Assignment" {
		t.Errorf("name = %q, want Assignment", output.Product.Name)
	}
}

func TestGetProductNotFound(t *testing.T) {
	uc := NewGetProductUseCase(newFakeProductRepo())

	_, err := uc.Execute(context.Background(), GetProductInput{ProductID: uuid.New()})
	if !errors.Is(err, domainerror.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
