// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
	"github.com/scribe-ops/backend/internal/integration/persistence/model"
)

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	if err := r.db.WithContext(ctx).Create(productModel).Error; err != nil {
		return domainerror.NewStorageError("create product", err)
	}
	return nil
}

// FindByID retrieves a product by its ID.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, domainerror.NewStorageError("find product", result.Error)
	}
	return productModel.ToEntity(), nil
}

// List retrieves products based on filter criteria with pagination.
func (r *productRepository) List(ctx context.Context, filter adapter.ProductFilter, pagination adapter.ProductPagination) (*entity.ProductListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, domainerror.NewStorageError("count products", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := int((total + int64(pagination.PageSize) - 1) / int64(pagination.PageSize))
	if totalPages == 0 {
		totalPages = 1
	}

	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	var productModels []model.ProductModel
	result := query.
		Order(fmt.Sprintf("%s %s", filter.SortBy, direction)).
		Offset(offset).
		Limit(pagination.PageSize).
		Find(&productModels)
	if result.Error != nil {
		return nil, domainerror.NewStorageError("list products", result.Error)
	}

	products := make([]*entity.Product, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToEntity()
	}

	return &entity.ProductListResult{
		Products:   products,
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Update updates an existing product in the database.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", product.ID).
		Select("*").Omit("id").Updates(productModel)
	if result.Error != nil {
		return domainerror.NewStorageError("update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}

// Delete removes a product from the database.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerror.NewStorageError("delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}
