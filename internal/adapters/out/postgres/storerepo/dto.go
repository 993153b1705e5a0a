// Package storerepo resolves store records for order placement.
package storerepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for store records.
type StoreDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for store entities.
func (StoreDTO) TableName() string {
	return "stores"
}

func fromDomain(record *store.Store) StoreDTO {
	return StoreDTO{
		ID:   record.ID().Bytes(),
		Name: record.Name(),
	}
}

func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return store.NewStore(id, dto.Name)
}
