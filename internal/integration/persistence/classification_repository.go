// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
	"github.com/scribe-ops/backend/internal/integration/persistence/model"
)

// classRepository implements the adapter.ClassRepository interface.
type classRepository struct {
	db *gorm.DB
}

// NewClassRepository creates a new class repository instance.
func NewClassRepository(db *gorm.DB) adapter.ClassRepository {
	return &classRepository{
		db: db,
	}
}

// Create creates a new class in the database.
func (r *classRepository) Create(ctx context.Context, class *entity.Class) error {
	classModel := model.ClassFromEntity(class)
	if err := r.db.WithContext(ctx).Create(classModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerror.ErrClassificationExists
		}
		return domainerror.NewStorageError("create class", err)
	}
	return nil
}

// FindByID retrieves a class by its ID.
func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	var classModel model.ClassModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&classModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClassificationNotFound
		}
		return nil, domainerror.NewStorageError("find class", result.Error)
	}
	return classModel.ToEntity(), nil
}

// FindByName retrieves a class by its exact name.
func (r *classRepository) FindByName(ctx context.Context, name string) (*entity.Class, error) {
	var classModel model.ClassModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&classModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClassificationNotFound
		}
		return nil, domainerror.NewStorageError("find class", result.Error)
	}
	return classModel.ToEntity(), nil
}

// List retrieves all classes ordered by name.
func (r *classRepository) List(ctx context.Context) ([]*entity.Class, error) {
	var classModels []model.ClassModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&classModels)
	if result.Error != nil {
		return nil, domainerror.NewStorageError("list classes", result.Error)
	}

	classes := make([]*entity.Class, len(classModels))
	for i := range classModels {
		classes[i] = classModels[i].ToEntity()
	}
	return classes, nil
}

// genreRepository implements the adapter.GenreRepository interface.
type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new genre repository instance.
func NewGenreRepository(db *gorm.DB) adapter.GenreRepository {
	return &genreRepository{
		db: db,
	}
}

// Create creates a new genre in the database.
func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	genreModel := model.GenreFromEntity(genre)
	if err := r.db.WithContext(ctx).Create(genreModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerror.ErrClassificationExists
		}
		return domainerror.NewStorageError("create genre", err)
	}
	return nil
}

// FindByID retrieves a genre by its ID.
func (r *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	var genreModel model.GenreModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&genreModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClassificationNotFound
		}
		return nil, domainerror.NewStorageError("find genre", result.Error)
	}
	return genreModel.ToEntity(), nil
}

// FindByName retrieves a genre by its exact name.
func (r *genreRepository) FindByName(ctx context.Context, name string) (*entity.Genre, error) {
	var genreModel model.GenreModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&genreModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClassificationNotFound
		}
		return nil, domainerror.NewStorageError("find genre", result.Error)
	}
	return genreModel.ToEntity(), nil
}

// List retrieves all genres ordered by name.
func (r *genreRepository) List(ctx context.Context) ([]*entity.Genre, error) {
	var genreModels []model.GenreModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&genreModels)
	if result.Error != nil {
		return nil, domainerror.NewStorageError("list genres", result.Error)
	}

	genres := make([]*entity.Genre, len(genreModels))
	for i := range genreModels {
		genres[i] = genreModels[i].ToEntity()
	}
	return genres, nil
}
