package queries

import (
	"context"
	"errors"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler reads a single order with its lines from the
// database, bypassing the aggregate.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle returns the order summary plus its lines.
// Returns ObjectNotFoundError if no order with the given id exists.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("id = ?", query.OrderID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderDetailResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return OrderDetailResponse{}, err
	}

	summary, err := row.toSummary()
	if err != nil {
		return OrderDetailResponse{}, err
	}

	var lineRows []lineRow
	err = h.db.WithContext(ctx).
		Table("order_lines").
		Where("order_id = ?", query.OrderID().Bytes()).
		Order("id").
		Find(&lineRows).Error
	if err != nil {
		return OrderDetailResponse{}, err
	}

	lines := make([]OrderLineResponse, 0, len(lineRows))
	for _, lr := range lineRows {
		line, lineErr := lr.toResponse()
		if lineErr != nil {
			return OrderDetailResponse{}, lineErr
		}
		lines = append(lines, line)
	}

	return OrderDetailResponse{
		OrderSummaryResponse: summary,
		Lines:                lines,
	}, nil
}
