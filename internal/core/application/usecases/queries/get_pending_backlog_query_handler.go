package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingBacklogQueryHandler aggregates overdue pending orders per store.
type GetPendingBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingBacklogQueryHandler creates a handler for backlog queries.
func NewGetPendingBacklogQueryHandler(db *gorm.DB) GetPendingBacklogQueryHandler {
	return GetPendingBacklogQueryHandler{db: db}
}

// Handle returns one row per store that has at least one order pending longer
// than the query's age, with the overdue count and the oldest creation time.
func (h GetPendingBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetPendingBacklogQuery,
) ([]GetPendingBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-query.OlderThan())
	backlog := make([]GetPendingBacklogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			store_id,
			COUNT(*),
			MIN(created_at)
		FROM orders
		WHERE status = ?
		  AND created_at < ?
		GROUP BY store_id
		ORDER BY MIN(created_at)
	`, int(order.Pending), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var storeID uuid.UUID
		var count int64
		var oldestAt time.Time

		if err = rows.Scan(&storeID, &count, &oldestAt); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(storeID[:])
		if idErr != nil {
			return nil, idErr
		}

		backlog = append(backlog, GetPendingBacklogQueryResponse{
			StoreID:      id,
			PendingCount: count,
			OldestAt:     oldestAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return backlog, nil
}
