package commands_test

import (
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, time.Now())
	actor := newTestActor(t, account.Customer)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	require.NotNil(t, aggregate.Cancellation())
	assert.True(t, aggregate.Cancellation().By.IsEqual(actor.ID()))

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_WindowExpired(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, time.Now().Add(-order.CancellationWindow-time.Minute))

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), newTestActor(t, account.Customer))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrCancellationWindowExpired)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Pending, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_StaffIgnoresWindow(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, time.Now().Add(-time.Hour))

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), newTestActor(t, account.Owner))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, time.Now())
	staff := newTestActor(t, account.Owner)
	require.NoError(t, aggregate.Cancel(staff, time.Now()))

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), staff)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrOrderAlreadyCancelled)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelOrderCommand(
		newTestOrder(t, time.Now()).ID(), newTestActor(t, account.Customer))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, cmd.OrderID()).
			Return(nil, errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, time.Now())

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), newTestActor(t, account.Customer))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory)

	err := h.Handle(ctx, commands.CancelOrderCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
