// Package categoryrepo answers category existence checks for the customer
// order list's category filter.
package categoryrepo

import (
	"context"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryDTO represents the database structure for product categories.
type CategoryDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Add saves a new category record. Used by catalog seeding and tests.
func (r *GormCategoryRepository) Add(ctx context.Context, id kernel.UUID, name string) error {
	if err := id.Validate(); err != nil {
		return err
	}

	dto := CategoryDTO{ID: id.Bytes(), Name: name}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Exists reports whether a category with the given id exists.
func (r *GormCategoryRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&CategoryDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
