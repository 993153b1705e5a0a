package storerepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/store"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStoreRepository implements StoreRepository using GORM.
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GORM store repository.
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// Add saves a new store record. Used by catalog seeding and tests; the
// ordering flows only read.
func (r *GormStoreRepository) Add(ctx context.Context, record *store.Store) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a store by ID.
func (r *GormStoreRepository) Get(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storeId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
