package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
)

// PlaceOrderRequest is the JSON body for POST /api/v1/orders.
type PlaceOrderRequest struct {
	StoreID         string             `json:"storeId"`
	OrderType       string             `json:"orderType"`
	DeliveryAddress string             `json:"deliveryAddress,omitempty"`
	Note            string             `json:"note,omitempty"`
	Items           []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one (product, quantity) entry of a placement request.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateOrderStatusRequest is the JSON body for PUT /api/v1/orders/:orderId.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderLineResponse is one order line in an order detail response.
type OrderLineResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	TotalAmount int64  `json:"totalAmount"`
}

// OrderResponse is the JSON representation of an order. Lines are present on
// detail and placement responses and omitted from list items.
type OrderResponse struct {
	ID              string              `json:"id"`
	StoreID         string              `json:"storeId"`
	CustomerID      string              `json:"customerId"`
	OrderType       string              `json:"orderType"`
	Status          string              `json:"status"`
	DeliveryAddress string              `json:"deliveryAddress,omitempty"`
	Note            string              `json:"note,omitempty"`
	TotalAmount     int64               `json:"totalAmount"`
	CreatedAt       time.Time           `json:"createdAt"`
	CancelledAt     *time.Time          `json:"cancelledAt,omitempty"`
	Lines           []OrderLineResponse `json:"lines,omitempty"`
}

// OrderPageResponse is one page of order summaries.
type OrderPageResponse struct {
	Items      []OrderResponse `json:"items"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalCount int64           `json:"totalCount"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineResponse{
			ID:          line.ID().String(),
			ProductID:   line.ProductID().String(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
			TotalAmount: line.Total().Amount(),
		})
	}

	var cancelledAt *time.Time
	if c := aggregate.Cancellation(); c != nil {
		at := c.At
		cancelledAt = &at
	}

	return OrderResponse{
		ID:              aggregate.ID().String(),
		StoreID:         aggregate.StoreID().String(),
		CustomerID:      aggregate.CustomerID().String(),
		OrderType:       aggregate.Type().String(),
		Status:          aggregate.Status().String(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Note:            aggregate.Note(),
		TotalAmount:     aggregate.Total().Amount(),
		CreatedAt:       aggregate.CreatedAt(),
		CancelledAt:     cancelledAt,
		Lines:           lines,
	}
}

func summaryToResponse(summary queries.OrderSummaryResponse) OrderResponse {
	return OrderResponse{
		ID:              summary.ID.String(),
		StoreID:         summary.StoreID.String(),
		CustomerID:      summary.CustomerID.String(),
		OrderType:       summary.OrderType.String(),
		Status:          summary.Status.String(),
		DeliveryAddress: summary.DeliveryAddress,
		Note:            summary.Note,
		TotalAmount:     summary.TotalAmount,
		CreatedAt:       summary.CreatedAt,
		CancelledAt:     summary.CancelledAt,
	}
}

func detailToResponse(detail queries.OrderDetailResponse) OrderResponse {
	response := summaryToResponse(detail.OrderSummaryResponse)
	response.Lines = make([]OrderLineResponse, 0, len(detail.Lines))
	for _, line := range detail.Lines {
		response.Lines = append(response.Lines, OrderLineResponse{
			ID:          line.ID.String(),
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			TotalAmount: line.TotalAmount,
		})
	}
	return response
}

func pageToResponse(page queries.OrderPageResponse) OrderPageResponse {
	items := make([]OrderResponse, 0, len(page.Items))
	for _, summary := range page.Items {
		items = append(items, summaryToResponse(summary))
	}

	return OrderPageResponse{
		Items:      items,
		Page:       page.PageNumber,
		Size:       page.PageSize,
		TotalCount: page.TotalCount,
	}
}
