package services

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// ItemRequest is one requested (product, quantity) pair from an order request.
type ItemRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// LinePricer is a domain service that translates requested items into priced
// order lines, snapshotting each product's name and unit price at order time.
//
// Pricing is all-or-nothing: if any requested product is missing from the
// resolved set, the whole request fails and no lines are returned. The caller
// resolves the products through its repository and passes them in; the pricer
// itself performs no I/O.
type LinePricer struct{}

// NewLinePricer creates a new LinePricer instance.
func NewLinePricer() LinePricer {
	return LinePricer{}
}

// Price builds one order line per requested item.
//
// Each line's total is the product's unit price at order time multiplied by
// the requested quantity; the owning order computes the aggregate total from
// the returned lines. Fails with ObjectNotFound if an item references a
// product absent from resolved, with no partial result.
func (LinePricer) Price(items []ItemRequest, resolved []*product.Product) ([]order.Line, error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}

	byID := make(map[kernel.UUID]*product.Product, len(resolved))
	for _, p := range resolved {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID()] = p
	}

	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productId", item.ProductID.String())
		}

		line, err := order.NewLine(kernel.NewUUID(), p.ID(), p.Name(), item.Quantity, p.UnitPrice())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
