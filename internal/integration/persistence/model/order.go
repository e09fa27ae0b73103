// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/domain/entity"
)

// OrderModel represents the orders table in the database. CreatedAt is the
// order instant in UTC; all window queries run against it.
type OrderModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClassID       *uuid.UUID      `gorm:"type:uuid;index"`
	GenreID       *uuid.UUID      `gorm:"type:uuid;index"`
	Description   string          `gorm:"type:text"`
	Week          string          `gorm:"type:varchar(50)"`
	PagesOrSlides int             `gorm:"not null"`
	TotalCost     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Client  *ClientModel  `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"foreignKey:ProductID;references:ID"`
	Class   *ClassModel   `gorm:"foreignKey:ClassID;references:ID"`
	Genre   *GenreModel   `gorm:"foreignKey:GenreID;references:ID"`
}

// TableName returns the table name for the OrderModel.
func (OrderModel) TableName() string {
	return "orders"
}

// ToEntity converts an OrderModel to a domain Order entity.
func (m *OrderModel) ToEntity() *entity.Order {
	return &entity.Order{
		ID:            m.ID,
		ClientID:      m.ClientID,
		ProductID:     m.ProductID,
		ClassID:       m.ClassID,
		GenreID:       m.GenreID,
		Description:   m.Description,
		Week:          m.Week,
		PagesOrSlides: m.PagesOrSlides,
		TotalCost:     m.TotalCost,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToEntityWithRefs converts an OrderModel with preloaded references to an
// OrderWithRefs entity.
func (m *OrderModel) ToEntityWithRefs() *entity.OrderWithRefs {
	result := &entity.OrderWithRefs{
		Order: m.ToEntity(),
	}
	if m.Client != nil {
		result.Client = m.Client.ToEntity()
	}
	if m.Product != nil {
		result.Product = m.Product.ToEntity()
	}
	if m.Class != nil {
		result.Class = m.Class.ToEntity()
	}
	if m.Genre != nil {
		result.Genre = m.Genre.ToEntity()
	}
	return result
}

// OrderFromEntity creates an OrderModel from a domain Order entity.
func OrderFromEntity(order *entity.Order) *OrderModel {
	return &OrderModel{
		ID:            order.ID,
		ClientID:      order.ClientID,
		ProductID:     order.ProductID,
		ClassID:       order.ClassID,
		GenreID:       order.GenreID,
		Description:   order.Description,
		Week:          order.Week,
		PagesOrSlides: order.PagesOrSlides,
		TotalCost:     order.TotalCost,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
