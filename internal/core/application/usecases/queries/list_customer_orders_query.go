package queries

import (
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
)

// ListCustomerOrdersQuery retrieves a page of the acting customer's own
// orders, narrowed by the optional filters: orders containing products of one
// category, order type, status, creation date range, and sort direction.
type ListCustomerOrdersQuery struct {
	actor      account.Actor
	categoryID *kernel.UUID
	filters    OrderFilters
	page       PageRequest

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery creates a customer order list query.
// categoryID may be nil; if set, its existence is checked when the query is
// handled.
func NewListCustomerOrdersQuery(
	actor account.Actor,
	categoryID *kernel.UUID,
	filters OrderFilters,
	page PageRequest,
) (ListCustomerOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, err
	}
	if page.Number() < 1 {
		return ListCustomerOrdersQuery{}, errs.NewValueIsRequiredError("page")
	}
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return ListCustomerOrdersQuery{}, err
		}
	}
	if err := filters.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, err
	}

	return ListCustomerOrdersQuery{
		actor:      actor,
		categoryID: categoryID,
		filters:    filters,
		page:       page,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q ListCustomerOrdersQuery) Actor() account.Actor {
	return q.actor
}

// CategoryID returns the optional category filter, nil when unset.
func (q ListCustomerOrdersQuery) CategoryID() *kernel.UUID {
	return q.categoryID
}

// Filters returns the optional filters.
func (q ListCustomerOrdersQuery) Filters() OrderFilters {
	return q.filters
}

// Page returns the page descriptor.
func (q ListCustomerOrdersQuery) Page() PageRequest {
	return q.page
}
