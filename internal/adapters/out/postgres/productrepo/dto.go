// Package productrepo resolves catalog products for order placement.
package productrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for catalog products.
// The category index serves the customer list's category filter join.
type ProductDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID      uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	UnitPriceAmount int64
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(record *product.Product) ProductDTO {
	return ProductDTO{
		ID:              record.ID().Bytes(),
		CategoryID:      record.CategoryID().Bytes(),
		Name:            record.Name(),
		UnitPriceAmount: record.UnitPrice().Amount(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewPrice(dto.UnitPriceAmount)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, categoryID, dto.Name, unitPrice)
}
