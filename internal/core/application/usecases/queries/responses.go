package queries

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderSummaryResponse represents an order without its lines, as returned by
// the list queries and embedded in the detail response.
type OrderSummaryResponse struct {
	ID              kernel.UUID
	StoreID         kernel.UUID
	CustomerID      kernel.UUID
	OrderType       order.Type
	Status          order.Status
	DeliveryAddress string
	Note            string
	TotalAmount     int64
	CreatedAt       time.Time
	CancelledAt     *time.Time
}

// OrderLineResponse represents a single order line in the detail response.
type OrderLineResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	TotalAmount int64
}

// OrderDetailResponse represents a full order: summary plus lines.
type OrderDetailResponse struct {
	OrderSummaryResponse
	Lines []OrderLineResponse
}

// OrderPageResponse is one page of order summaries with the total match count.
type OrderPageResponse struct {
	Items      []OrderSummaryResponse
	PageNumber int
	PageSize   int
	TotalCount int64
}

// orderRow is the scan target for order header reads.
type orderRow struct {
	ID              uuid.UUID
	StoreID         uuid.UUID
	CustomerID      uuid.UUID
	OrderType       int
	Status          int
	DeliveryAddress string
	Note            string
	TotalAmount     int64
	CreatedAt       time.Time
	CancelledAt     *time.Time
}

func (r orderRow) toSummary() (OrderSummaryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	storeID, err := kernel.UUIDFromBytes(r.StoreID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	return OrderSummaryResponse{
		ID:              id,
		StoreID:         storeID,
		CustomerID:      customerID,
		OrderType:       order.Type(r.OrderType),
		Status:          order.Status(r.Status),
		DeliveryAddress: r.DeliveryAddress,
		Note:            r.Note,
		TotalAmount:     r.TotalAmount,
		CreatedAt:       r.CreatedAt,
		CancelledAt:     r.CancelledAt,
	}, nil
}

// lineRow is the scan target for order line reads.
type lineRow struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	TotalAmount int64
}

func (r lineRow) toResponse() (OrderLineResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderLineResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(r.ProductID[:])
	if err != nil {
		return OrderLineResponse{}, err
	}

	return OrderLineResponse{
		ID:          id,
		ProductID:   productID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		TotalAmount: r.TotalAmount,
	}, nil
}
