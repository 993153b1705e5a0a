package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

// Line is one priced (product, quantity) entry within an order.
//
// The product name and unit price are captured at order time: the line total
// equals unit price at placement multiplied by quantity, independent of later
// catalog price changes. Lines are created together with their order and
// never mutated afterward.
type Line struct {
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	quantity    int
	total       kernel.Price

	isConstructed bool
}

// NewLine creates a priced order line from the product snapshot taken at
// order time. The line total is computed as unitPrice × quantity.
func NewLine(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Price,
) (Line, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
	); err != nil {
		return Line{}, err
	}

	if productName == "" {
		return Line{}, errs.NewValueIsRequiredError("product name")
	}

	total, err := unitPrice.MultiplyBy(quantity)
	if err != nil {
		return Line{}, err
	}

	return Line{
		id:            id,
		productID:     productID,
		productName:   productName,
		quantity:      quantity,
		total:         total,
		isConstructed: true,
	}, nil
}

// RestoreLine reconstructs a Line from persistence with its stored total.
func RestoreLine(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	total kernel.Price,
) (Line, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
	); err != nil {
		return Line{}, err
	}

	if productName == "" {
		return Line{}, errs.NewValueIsRequiredError("product name")
	}

	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		id:            id,
		productID:     productID,
		productName:   productName,
		quantity:      quantity,
		total:         total,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was created via a constructor.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// ProductID returns the referenced product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the product name captured at order time.
func (l Line) ProductName() string {
	return l.productName
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Total returns the line total price.
func (l Line) Total() kernel.Price {
	return l.total
}
