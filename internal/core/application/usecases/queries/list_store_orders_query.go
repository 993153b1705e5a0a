package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrListStoreOrdersQueryIsNotConstructed = errors.New(
		"ListStoreOrdersQuery must be created via NewListStoreOrdersQuery constructor",
	)
)

// OrderFilters narrows an order list. Nil fields are ignored. Both the staff
// and the customer list queries accept the same filter set.
type OrderFilters struct {
	OrderType     *order.Type
	Status        *order.Status
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	SortAscending bool
}

// Validate checks the optional filter values and rejects an inverted date
// range.
func (f OrderFilters) Validate() error {
	if f.OrderType != nil {
		if err := f.OrderType.Validate(); err != nil {
			return err
		}
	}
	if f.Status != nil {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	if f.CreatedFrom != nil && f.CreatedTo != nil &&
		f.CreatedFrom.After(*f.CreatedTo) {
		return errs.NewValueIsInvalidError("dateRange")
	}
	return nil
}

// ListStoreOrdersQuery retrieves a page of a store's orders for its staff.
type ListStoreOrdersQuery struct {
	storeID kernel.UUID
	actor   account.Actor
	filters OrderFilters
	page    PageRequest

	guard guard.ConstructorGuard
}

// NewListStoreOrdersQuery creates a staff order list query.
// Optional filter values are validated here; the role check happens when the
// query is handled.
func NewListStoreOrdersQuery(
	storeID kernel.UUID,
	actor account.Actor,
	filters OrderFilters,
	page PageRequest,
) (ListStoreOrdersQuery, error) {
	if err := storeID.Validate(); err != nil {
		return ListStoreOrdersQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return ListStoreOrdersQuery{}, err
	}
	if page.Number() < 1 {
		return ListStoreOrdersQuery{}, errs.NewValueIsRequiredError("page")
	}
	if err := filters.Validate(); err != nil {
		return ListStoreOrdersQuery{}, err
	}

	return ListStoreOrdersQuery{
		storeID: storeID,
		actor:   actor,
		filters: filters,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListStoreOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListStoreOrdersQueryIsNotConstructed)
}

// StoreID returns the store whose orders are listed.
func (q ListStoreOrdersQuery) StoreID() kernel.UUID {
	return q.storeID
}

// Actor returns the acting user.
func (q ListStoreOrdersQuery) Actor() account.Actor {
	return q.actor
}

// Filters returns the optional filters.
func (q ListStoreOrdersQuery) Filters() OrderFilters {
	return q.filters
}

// Page returns the page descriptor.
func (q ListStoreOrdersQuery) Page() PageRequest {
	return q.page
}
