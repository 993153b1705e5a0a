package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles the staff-driven status progression.
//
// The order is read under a row lock inside the transaction, so two
// simultaneous updates of the same order serialize instead of both passing a
// stale status check. Terminal orders and illegal transitions are rejected by
// the aggregate with an InvalidStateError.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances the order to the requested status and returns the updated
// aggregate. Fails with ObjectNotFound if the order is missing and with
// InvalidState if the transition is not a legal progression edge.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ProgressTo(cmd.Target()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
