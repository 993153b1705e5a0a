package commands

import (
	"errors"
	"math"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to place a new order against a store.
// Carries the acting user, the target store, the fulfilment type with its
// address, an optional request note, and the requested (product, quantity)
// items.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	storeID         kernel.UUID
	actor           account.Actor
	orderType       order.Type
	deliveryAddress string
	note            string
	items           []services.ItemRequest

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates identifiers, the order type, the delivery address requirement,
// and that at least one item with a positive quantity is requested.
func NewPlaceOrderCommand(
	storeID kernel.UUID,
	actor account.Actor,
	orderType order.Type,
	deliveryAddress string,
	note string,
	items []services.ItemRequest,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStoreID(storeID),
		cmd.setActor(actor),
		cmd.setFulfilment(orderType, deliveryAddress),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// StoreID returns the identifier of the store the order targets.
func (c PlaceOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Actor returns the acting user.
func (c PlaceOrderCommand) Actor() account.Actor {
	return c.actor
}

// OrderType returns the requested fulfilment type.
func (c PlaceOrderCommand) OrderType() order.Type {
	return c.orderType
}

// DeliveryAddress returns the delivery address, empty for pickup orders.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Note returns the customer's free-text request.
func (c PlaceOrderCommand) Note() string {
	return c.note
}

// Items returns the requested (product, quantity) pairs.
func (c PlaceOrderCommand) Items() []services.ItemRequest {
	return c.items
}

func (c *PlaceOrderCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	c.storeID = storeID
	return nil
}

func (c *PlaceOrderCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *PlaceOrderCommand) setFulfilment(orderType order.Type, deliveryAddress string) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	if orderType.RequiresAddress() && deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}

	c.orderType = orderType
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *PlaceOrderCommand) setItems(items []services.ItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsOutOfRangeError("quantity", item.Quantity, 1, math.MaxInt32)
		}
	}

	c.items = items
	return nil
}
