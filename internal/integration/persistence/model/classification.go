// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/domain/entity"
)

// ClassModel represents the classes table in the database.
type ClassModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ClassModel.
func (ClassModel) TableName() string {
	return "classes"
}

// ToEntity converts a ClassModel to a domain Class entity.
func (m *ClassModel) ToEntity() *entity.Class {
	return &entity.Class{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ClassFromEntity creates a ClassModel from a domain Class entity.
func ClassFromEntity(class *entity.Class) *ClassModel {
	return &ClassModel{
		ID:        class.ID,
		Name:      class.Name,
		CreatedAt: class.CreatedAt,
		UpdatedAt: class.UpdatedAt,
	}
}

// GenreModel represents the genres table in the database.
type GenreModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GenreModel.
func (GenreModel) TableName() string {
	return "genres"
}

// ToEntity converts a GenreModel to a domain Genre entity.
func (m *GenreModel) ToEntity() *entity.Genre {
	return &entity.Genre{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// GenreFromEntity creates a GenreModel from a domain Genre entity.
func GenreFromEntity(genre *entity.Genre) *GenreModel {
	return &GenreModel{
		ID:        genre.ID,
		Name:      genre.Name,
		CreatedAt: genre.CreatedAt,
		UpdatedAt: genre.UpdatedAt,
	}
}
