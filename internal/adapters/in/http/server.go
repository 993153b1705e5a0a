// Package http exposes the ordering use cases over an Echo HTTP API.
//
// The acting identity arrives in the X-User-Id and X-User-Role headers, set
// by the upstream auth layer; this service trusts them.
package http

import (
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	getOrderDetailHandler     queries.GetOrderDetailQueryHandler
	listStoreOrdersHandler    queries.ListStoreOrdersQueryHandler
	listCustomerOrdersHandler queries.ListCustomerOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderDetailHandler queries.GetOrderDetailQueryHandler,
	listStoreOrdersHandler queries.ListStoreOrdersQueryHandler,
	listCustomerOrdersHandler queries.ListCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:         placeOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		cancelOrderHandler:        cancelOrderHandler,
		getOrderDetailHandler:     getOrderDetailHandler,
		listStoreOrdersHandler:    listStoreOrdersHandler,
		listCustomerOrdersHandler: listCustomerOrdersHandler,
	}
}

// RegisterRoutes attaches all endpoints to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.ListCustomerOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId", s.UpdateOrderStatus)
	api.DELETE("/orders/:orderId", s.CancelOrder)
	api.GET("/stores/:storeId/orders", s.ListStoreOrders)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	var request PlaceOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	storeID, err := kernel.UUIDFromString(request.StoreID)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	orderType, err := order.TypeFromString(request.OrderType)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	items := make([]services.ItemRequest, 0, len(request.Items))
	for _, item := range request.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return ctx.JSON(errorResponse(itemErr))
		}
		items = append(items, services.ItemRequest{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(
		storeID, actor, orderType, request.DeliveryAddress, request.Note, items)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(placed))
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order with
// its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	detail, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	return ctx.JSON(http.StatusOK, detailToResponse(detail))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:orderId - advances the order
// status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	response := orderToResponse(updated)
	response.Lines = nil
	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles DELETE /api/v1/orders/:orderId - cancels the order on
// behalf of the acting user.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(errorResponse(err))
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListStoreOrders handles GET /api/v1/stores/:storeId/orders - lists a
// store's orders for its staff.
func (s *Server) ListStoreOrders(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	storeID, err := kernel.UUIDFromString(ctx.Param("storeId"))
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	filters, err := orderFiltersFromQuery(ctx)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	page, err := pageFromQuery(ctx)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	query, err := queries.NewListStoreOrdersQuery(storeID, actor, filters, page)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	result, err := s.listStoreOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	return ctx.JSON(http.StatusOK, pageToResponse(result))
}

// ListCustomerOrders handles GET /api/v1/orders - lists the acting customer's
// own orders.
func (s *Server) ListCustomerOrders(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	var categoryID *kernel.UUID
	if raw := ctx.QueryParam("categoryId"); raw != "" {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return ctx.JSON(errorResponse(idErr))
		}
		categoryID = &id
	}

	filters, err := orderFiltersFromQuery(ctx)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	page, err := pageFromQuery(ctx)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	query, err := queries.NewListCustomerOrdersQuery(actor, categoryID, filters, page)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	result, err := s.listCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	return ctx.JSON(http.StatusOK, pageToResponse(result))
}

// actorFromHeaders builds the trusted acting identity from the auth headers.
func actorFromHeaders(ctx echo.Context) (account.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return account.Actor{}, err
	}

	role, err := account.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return account.Actor{}, err
	}

	return account.NewActor(id, role)
}

func orderFiltersFromQuery(ctx echo.Context) (queries.OrderFilters, error) {
	var filters queries.OrderFilters

	if raw := ctx.QueryParam("orderType"); raw != "" {
		orderType, err := order.TypeFromString(raw)
		if err != nil {
			return queries.OrderFilters{}, err
		}
		filters.OrderType = &orderType
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return queries.OrderFilters{}, err
		}
		filters.Status = &status
	}

	if raw := ctx.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return queries.OrderFilters{}, errs.NewValueIsInvalidErrorWithCause("from", err)
		}
		filters.CreatedFrom = &from
	}

	if raw := ctx.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return queries.OrderFilters{}, errs.NewValueIsInvalidErrorWithCause("to", err)
		}
		filters.CreatedTo = &to
	}

	filters.SortAscending = ctx.QueryParam("sort") == "asc"

	return filters, nil
}

func pageFromQuery(ctx echo.Context) (queries.PageRequest, error) {
	number := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		if err := echo.QueryParamsBinder(ctx).Int("page", &number).BindError(); err != nil {
			return queries.PageRequest{}, errs.NewValueIsInvalidErrorWithCause("page", err)
		}
	}

	size := 0
	if raw := ctx.QueryParam("size"); raw != "" {
		if err := echo.QueryParamsBinder(ctx).Int("size", &size).BindError(); err != nil {
			return queries.PageRequest{}, errs.NewValueIsInvalidErrorWithCause("size", err)
		}
	}

	return queries.NewPageRequest(number, size)
}
