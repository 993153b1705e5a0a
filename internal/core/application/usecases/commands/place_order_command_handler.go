package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
//
// Only Customer and Owner roles may place orders. The target store and every
// requested product must exist; any miss aborts the whole request before any
// write. The order persists atomically with all its priced lines in Pending
// status — either the complete aggregate commits or nothing does.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	pricer     services.LinePricer
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlacementUoWFactory for transactional persistence and lookups.
func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewLinePricer(),
	}
}

// Handle processes the order placement command and returns the created
// aggregate. Fails with PermissionDenied if the acting role may not place
// orders, and with ObjectNotFound if the store or any product is missing.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().Role().CanPlaceOrder() {
		return nil, errs.NewPermissionDeniedError("place order", cmd.Actor().Role().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	targetStore, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		p, productErr := uow.ProductRepository().Get(ctx, item.ProductID)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, p)
	}

	lines, err := h.pricer.Price(cmd.Items(), products)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		kernel.NewUUID(),
		targetStore.ID(),
		cmd.Actor().ID(),
		cmd.OrderType(),
		cmd.DeliveryAddress(),
		cmd.Note(),
		lines,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
