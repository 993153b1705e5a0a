// Package orderrepo persists the order aggregate. It maps the aggregate and
// its owned lines to the orders and order_lines tables, writing and reading
// both inside the surrounding unit of work's transaction.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The cancellation record maps to a nullable (cancelled_at, cancelled_by)
// pair; both are set together or not at all.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID         uuid.UUID `gorm:"type:uuid;index"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	OrderType       int
	DeliveryAddress string
	Note            string
	TotalAmount     int64
	Status          int `gorm:"index"`
	CreatedAt       time.Time
	CancelledAt     *time.Time
	CancelledBy     *uuid.UUID `gorm:"type:uuid"`
	Lines           []LineDTO  `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line row. Lines are immutable after creation;
// they are inserted with the header and only ever read afterwards.
type LineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string
	Quantity    int
	TotalAmount int64
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation,
// including its lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	var cancelledAt *time.Time
	var cancelledBy *uuid.UUID
	if c := aggregate.Cancellation(); c != nil {
		at := c.At
		by := c.By.Bytes()
		cancelledAt = &at
		cancelledBy = &by
	}

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ID:          line.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   line.ProductID().Bytes(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
			TotalAmount: line.Total().Amount(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		StoreID:         aggregate.StoreID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		OrderType:       int(aggregate.Type()),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Note:            aggregate.Note(),
		TotalAmount:     aggregate.Total().Amount(),
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		CancelledAt:     cancelledAt,
		CancelledBy:     cancelledBy,
		Lines:           lines,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var cancellation *order.Cancellation
	if dto.CancelledAt != nil && dto.CancelledBy != nil {
		by, byErr := kernel.UUIDFromBytes((*dto.CancelledBy)[:])
		if byErr != nil {
			return nil, byErr
		}
		cancellation = &order.Cancellation{At: *dto.CancelledAt, By: by}
	}

	return order.RestoreOrder(
		id,
		storeID,
		customerID,
		order.Type(dto.OrderType),
		dto.DeliveryAddress,
		dto.Note,
		lines,
		order.Status(dto.Status),
		dto.CreatedAt,
		cancellation,
	)
}

func lineToDomain(dto LineDTO) (order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Line{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Line{}, err
	}

	total, err := kernel.NewPrice(dto.TotalAmount)
	if err != nil {
		return order.Line{}, err
	}

	return order.RestoreLine(id, productID, dto.ProductName, dto.Quantity, total)
}
