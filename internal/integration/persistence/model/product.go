// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/domain/entity"
)

// ProductModel represents the products table in the database.
type ProductModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null;index"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts a ProductModel to a domain Product entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:           m.ID,
		Name:         m.Name,
		PricePerUnit: m.PricePerUnit,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ProductFromEntity creates a ProductModel from a domain Product entity.
func ProductFromEntity(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:           product.ID,
		Name:         product.Name,
		PricePerUnit: product.PricePerUnit,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}
