package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderDetailQueryIsNotConstructed = errors.New(
		"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
	)
)

// GetOrderDetailQuery retrieves a single order with its lines.
//
// Example:
//
//	query, err := NewGetOrderDetailQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s has %d lines\n", detail.ID, len(detail.Lines))
type GetOrderDetailQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a query to retrieve one order by id.
func NewGetOrderDetailQuery(orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}
