package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetPendingBacklogQueryIsNotConstructed = errors.New(
		"GetPendingBacklogQuery must be created via NewGetPendingBacklogQuery constructor",
	)
)

// GetPendingBacklogQuery retrieves, per store, the orders that have been
// sitting in Pending longer than the given age. Used by the backlog
// monitoring job.
type GetPendingBacklogQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetPendingBacklogQuery creates a backlog query for orders pending longer
// than olderThan.
func NewGetPendingBacklogQuery(olderThan time.Duration) (GetPendingBacklogQuery, error) {
	if olderThan <= 0 {
		return GetPendingBacklogQuery{}, errs.NewValueIsOutOfRangeError(
			"olderThan", olderThan, "1ns", "unbounded")
	}

	return GetPendingBacklogQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingBacklogQueryIsNotConstructed)
}

// OlderThan returns the minimum pending age.
func (q GetPendingBacklogQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetPendingBacklogQueryResponse is one store's overdue pending backlog.
type GetPendingBacklogQueryResponse struct {
	StoreID      kernel.UUID
	PendingCount int64
	OldestAt     time.Time
}
