package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// CancellationWindow is the period after placement during which a customer
// may cancel their own order. Store staff are not subject to it.
const CancellationWindow = 5 * time.Minute

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Cancellation records who cancelled an order and when. Its presence on an
// order is the soft-delete marker: the record is retained, never removed.
type Cancellation struct {
	At time.Time
	By kernel.UUID
}

// Order represents a customer's placed purchase against one store. It is the
// aggregate root that owns the order lines and manages the order lifecycle
// from placement through staff progression to completion or cancellation.
//
// Order maintains these invariants:
//   - Total price equals the sum of its lines' totals
//   - Status transitions follow the adjacency table in Status
//   - A Delivery order always carries a delivery address
//   - Cancellation is recorded exactly once and is terminal
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// storeID references the store the order was placed against
	storeID kernel.UUID

	// customerID references the user who placed the order
	customerID kernel.UUID

	// orderType distinguishes delivery from pickup
	orderType Type

	// deliveryAddress is required iff orderType requires delivery
	deliveryAddress string

	// note is the customer's free-text request
	note string

	// lines are the priced order lines, owned by this order
	lines []Line

	// total is the sum of the line totals
	total kernel.Price

	// status is the current state in the order lifecycle
	status Status

	// createdAt anchors the customer cancellation window
	createdAt time.Time

	// cancellation is set exactly once when the order is cancelled
	cancellation *Cancellation

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status owning the given lines.
// This is the only way to create a valid new order, ensuring all business
// invariants hold: identifiers must be valid, the type must be valid, a
// delivery order must carry an address, and at least one line is required.
// The total is computed from the lines.
func NewOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	customerID kernel.UUID,
	orderType Type,
	deliveryAddress string,
	note string,
	lines []Line,
	placedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		storeID.Validate(),
		customerID.Validate(),
		orderType.Validate(),
	); err != nil {
		return nil, err
	}

	if orderType.RequiresAddress() && deliveryAddress == "" {
		return nil, errs.NewValueIsRequiredError("delivery address")
	}

	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}

	var total kernel.Price
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(line.Total())
	}

	return &Order{
		id:              id,
		storeID:         storeID,
		customerID:      customerID,
		orderType:       orderType,
		deliveryAddress: deliveryAddress,
		note:            note,
		lines:           lines,
		total:           total,
		status:          Pending,
		createdAt:       placedAt,
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored state.
// Unlike NewOrder it accepts any valid status and an optional cancellation
// record, but still verifies the total-equals-sum-of-lines invariant.
func RestoreOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	customerID kernel.UUID,
	orderType Type,
	deliveryAddress string,
	note string,
	lines []Line,
	status Status,
	createdAt time.Time,
	cancellation *Cancellation,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		storeID.Validate(),
		customerID.Validate(),
		orderType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	var total kernel.Price
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(line.Total())
	}

	return &Order{
		id:              id,
		storeID:         storeID,
		customerID:      customerID,
		orderType:       orderType,
		deliveryAddress: deliveryAddress,
		note:            note,
		lines:           lines,
		total:           total,
		status:          status,
		createdAt:       createdAt,
		cancellation:    cancellation,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StoreID returns the identifier of the store the order was placed against.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// CustomerID returns the identifier of the user who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Type returns the order's fulfilment type.
func (o *Order) Type() Type {
	return o.orderType
}

// DeliveryAddress returns the delivery address, empty for pickup orders.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Note returns the customer's free-text request.
func (o *Order) Note() string {
	return o.note
}

// Lines returns the order lines owned by this order.
func (o *Order) Lines() []Line {
	return o.lines
}

// Total returns the order total, equal to the sum of the line totals.
func (o *Order) Total() kernel.Price {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Cancellation returns the cancellation record, or nil if the order has not
// been cancelled.
func (o *Order) Cancellation() *Cancellation {
	return o.cancellation
}

// ProgressTo advances the order along the staff-driven progression path.
//
// The transition must be a legal adjacency-table edge; terminal sources,
// skipped states, and Cancelled as a target are rejected with an
// InvalidStateError.
func (o *Order) ProgressTo(target Status) error {
	newStatus, err := o.status.ProgressTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels the order on behalf of the given actor at the given time.
//
// Business rules:
//   - An order with a cancellation record fails with ErrOrderAlreadyCancelled
//   - A Customer actor must cancel within CancellationWindow of placement;
//     past it the attempt fails with ErrCancellationWindowExpired
//   - Store staff are not subject to the window
//   - A completed order cannot be cancelled
//
// On success the status becomes Cancelled and the cancellation record is set
// to the acting user and the given time. The order is retained (soft delete).
func (o *Order) Cancel(actor account.Actor, at time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if o.cancellation != nil {
		return errs.NewInvalidStateErrorWithCause("order", ErrOrderAlreadyCancelled)
	}

	if actor.Role() == account.Customer && at.Sub(o.createdAt) > CancellationWindow {
		return errs.NewInvalidStateErrorWithCause("order", ErrCancellationWindowExpired)
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellation = &Cancellation{At: at, By: actor.ID()}
	return nil
}
