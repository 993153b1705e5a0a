// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The order header and its lines always persist together: an aggregate is
// stored whole or not at all.
type OrderRepository interface {
	// Add persists a new order aggregate with all its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate's mutable state
	// (status and cancellation record). Lines are immutable after creation
	// and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by unique identifier.
	// Within a transaction the header row is locked, so concurrent mutations
	// of the same order serialize instead of racing on a stale status.
	// Returns ObjectNotFoundError if the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
