// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
	"github.com/scribe-ops/backend/internal/integration/persistence/model"
)

// clientRepository implements the adapter.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance.
func NewClientRepository(db *gorm.DB) adapter.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// Create creates a new client in the database.
func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	if err := r.db.WithContext(ctx).Create(clientModel).Error; err != nil {
		return domainerror.NewStorageError("create client", err)
	}
	return nil
}

// FindByID retrieves a client by its ID.
func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientModel model.ClientModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&clientModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClientNotFound
		}
		return nil, domainerror.NewStorageError("find client", result.Error)
	}
	return clientModel.ToEntity(), nil
}

// List retrieves clients based on filter criteria with pagination.
func (r *clientRepository) List(ctx context.Context, filter adapter.ClientFilter, pagination adapter.ClientPagination) (*entity.ClientListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.ClientModel{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(institution) LIKE ?", pattern, pattern)
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
		return nil, domainerror.NewStorageError("count clients", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := int((total + int64(pagination.PageSize) - 1) / int64(pagination.PageSize))
	if totalPages == 0 {
		totalPages = 1
	}

	var clientModels []model.ClientModel
	result := query.
		Order("name ASC").
		Offset(offset).
		Limit(pagination.PageSize).
		Find(&clientModels)
	if result.Error != nil {
		return nil, domainerror.NewStorageError("list clients", result.Error)
	}

	clients := make([]*entity.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = clientModels[i].ToEntity()
	}

	return &entity.ClientListResult{
		Clients:    clients,
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Update updates an existing client in the database.
func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	result := r.db.WithContext(ctx).Model(&model.ClientModel{}).Where("id = ?", client.ID).
		Select("*").Omit("id").Updates(clientModel)
	if result.Error != nil {
		return domainerror.NewStorageError("update client", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrClientNotFound
	}
	return nil
}

// Delete removes a client and its orders from the database.
func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&model.OrderModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.ClientModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrClientNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return err
		}
		return domainerror.NewStorageError("delete client", err)
	}
	return nil
}
