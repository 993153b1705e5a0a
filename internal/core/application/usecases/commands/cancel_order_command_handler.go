package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler handles order cancellation.
//
// The order is read under a row lock inside the transaction; the aggregate
// enforces the already-cancelled check and the customer cancellation window,
// then the status flip and the cancellation record persist together.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the order on behalf of the acting user.
// Fails with ObjectNotFound if the order is missing, ErrOrderAlreadyCancelled
// if it already carries a cancellation record, and
// ErrCancellationWindowExpired for customers past the grace window.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(cmd.Actor(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
