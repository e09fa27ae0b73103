// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
	"github.com/scribe-ops/backend/internal/integration/persistence/model"
)

// orderRepository implements the adapter.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance.
func NewOrderRepository(db *gorm.DB) adapter.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create creates a new order in the database.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderModel := model.OrderFromEntity(order)
	if err := r.db.WithContext(ctx).Create(orderModel).Error; err != nil {
		return domainerror.NewStorageError("create order", err)
	}
	return nil
}

// FindByID retrieves an order by its ID.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderModel model.OrderModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&orderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOrderNotFound
		}
		return nil, domainerror.NewStorageError("find order", result.Error)
	}
	return orderModel.ToEntity(), nil
}

// FindByIDWithRefs retrieves an order with its references by ID.
func (r *orderRepository) FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.OrderWithRefs, error) {
	var orderModel model.OrderModel
	result := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Product").
		Preload("Class").
		Preload("Genre").
		Where("id = ?", id).
		First(&orderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOrderNotFound
		}
		return nil, domainerror.NewStorageError("find order", result.Error)
	}
	return orderModel.ToEntityWithRefs(), nil
}

// List retrieves orders based on filter criteria with pagination.
func (r *orderRepository) List(ctx context.Context, filter adapter.OrderFilter, pagination adapter.OrderPagination) (*entity.OrderListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.OrderModel{})

	if filter.ClientID != nil {
		query = query.Where("orders.client_id = ?", *filter.ClientID)
	}
	if filter.ProductID != nil {
		query = query.Where("orders.product_id = ?", *filter.ProductID)
	}
	if filter.StartDate != nil {
		query = query.Where("orders.created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("orders.created_at <= ?", *filter.EndDate)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.
			Joins("LEFT JOIN clients ON clients.id = orders.client_id").
			Joins("LEFT JOIN products ON products.id = orders.product_id").
			Joins("LEFT JOIN classes ON classes.id = orders.class_id").
			Joins("LEFT JOIN genres ON genres.id = orders.genre_id").
			Where(
				"LOWER(clients.name) LIKE ? OR LOWER(products.name) LIKE ? OR LOWER(classes.name) LIKE ? OR LOWER(genres.name) LIKE ? OR LOWER(orders.description) LIKE ?",
				pattern, pattern, pattern, pattern, pattern,
			)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, domainerror.NewStorageError("count orders", err)
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

	var orderModels []model.OrderModel
	result := query.
		Preload("Client").
		Preload("Product").
		Preload("Class").
		Preload("Genre").
		Order(fmt.Sprintf("orders.%s %s", filter.SortBy, direction)).
		Offset(offset).
		Limit(pagination.PageSize).
		Find(&orderModels)
	if result.Error != nil {
		return nil, domainerror.NewStorageError("list orders", result.Error)
	}

	orders := make([]*entity.OrderWithRefs, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToEntityWithRefs()
	}

	return &entity.OrderListResult{
		Orders:     orders,
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: totalPages,
	}, nil
}

// FindByClientInRange retrieves a client's orders within the inclusive UTC
// window, with references, ordered by creation instant ascending.
func (r *orderRepository) FindByClientInRange(ctx context.Context, clientID uuid.UUID, startUTC, endUTC time.Time) ([]*entity.OrderWithRefs, error) {
	var orderModels []model.OrderModel
	result := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Product").
		Preload("Class").
		Preload("Genre").
		Where("client_id = ? AND created_at >= ? AND created_at <= ?", clientID, startUTC, endUTC).
		Order("created_at ASC").
		Find(&orderModels)
	if result.Error != nil {
		return nil, domainerror.NewStorageError("find client orders", result.Error)
	}

	orders := make([]*entity.OrderWithRefs, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToEntityWithRefs()
	}
	return orders, nil
}

// Totals returns ledger-wide order count and revenue in one aggregate pass.
func (r *orderRepository) Totals(ctx context.Context) (*entity.OrderTotals, error) {
	var row struct {
		TotalOrders  int64
		TotalRevenue decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COUNT(*) AS total_orders, COALESCE(SUM(total_cost), 0) AS total_revenue").
		Scan(&row)
	if result.Error != nil {
		return nil, domainerror.NewStorageError("aggregate orders", result.Error)
	}

	return &entity.OrderTotals{
		TotalOrders:  row.TotalOrders,
		TotalRevenue: row.TotalRevenue,
	}, nil
}

// Update updates an existing order in the database.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderModel := model.OrderFromEntity(order)
	result := r.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", order.ID).
		Select("*").Omit("id").Updates(orderModel)
	if result.Error != nil {
		return domainerror.NewStorageError("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOrderNotFound
	}
	return nil
}

// Delete removes an order from the database.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OrderModel{})
	if result.Error != nil {
		return domainerror.NewStorageError("delete order", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOrderNotFound
	}
	return nil
}
