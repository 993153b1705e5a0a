// Package product holds the catalog product record as the ordering core sees
// it: a reference resolved by id, never owned. Orders snapshot the name and
// unit price at placement, so later catalog changes do not affect them.
package product

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry: id, display name, current unit price, and the
// category it belongs to.
type Product struct {
	id         kernel.UUID
	categoryID kernel.UUID
	name       string
	unitPrice  kernel.Price

	isConstructed bool
}

// NewProduct creates a Product record with a validated id, category and name.
func NewProduct(id, categoryID kernel.UUID, name string, unitPrice kernel.Price) (*Product, error) {
	if err := errors.Join(
		id.Validate(),
		categoryID.Validate(),
	); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}

	return &Product{
		id:            id,
		categoryID:    categoryID,
		name:          name,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product was created via NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// CategoryID returns the identifier of the category the product belongs to.
func (p *Product) CategoryID() kernel.UUID {
	return p.categoryID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the product's current unit price.
func (p *Product) UnitPrice() kernel.Price {
	return p.unitPrice
}
