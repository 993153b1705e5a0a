package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListStoreOrdersQueryHandler reads a page of a store's orders for its staff.
type ListStoreOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListStoreOrdersQueryHandler creates a handler for staff order lists.
func NewListStoreOrdersQueryHandler(db *gorm.DB) ListStoreOrdersQueryHandler {
	return ListStoreOrdersQueryHandler{db: db}
}

// Handle returns a page of order summaries scoped to the store, newest first
// unless ascending sort is requested. Only store staff may list a store's
// orders; other roles fail with PermissionDeniedError.
func (h ListStoreOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListStoreOrdersQuery,
) (OrderPageResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderPageResponse{}, err
	}

	role := query.Actor().Role()
	if !role.IsStoreStaff() {
		return OrderPageResponse{}, errs.NewPermissionDeniedError("list store orders", role.String())
	}

	filters := query.Filters()
	tx := h.db.WithContext(ctx).
		Table("orders").
		Where("store_id = ?", query.StoreID().Bytes())

	if filters.OrderType != nil {
		tx = tx.Where("order_type = ?", int(*filters.OrderType))
	}
	if filters.Status != nil {
		tx = tx.Where("status = ?", int(*filters.Status))
	}
	if filters.CreatedFrom != nil {
		tx = tx.Where("created_at >= ?", *filters.CreatedFrom)
	}
	if filters.CreatedTo != nil {
		tx = tx.Where("created_at <= ?", *filters.CreatedTo)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return OrderPageResponse{}, err
	}

	sort := "created_at DESC"
	if filters.SortAscending {
		sort = "created_at ASC"
	}

	page := query.Page()
	var rows []orderRow
	err := tx.
		Order(sort).
		Offset(page.Offset()).
		Limit(page.Size()).
		Find(&rows).Error
	if err != nil {
		return OrderPageResponse{}, err
	}

	items := make([]OrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		summary, rowErr := row.toSummary()
		if rowErr != nil {
			return OrderPageResponse{}, rowErr
		}
		items = append(items, summary)
	}

	return OrderPageResponse{
		Items:      items,
		PageNumber: page.Number(),
		PageSize:   page.Size(),
		TotalCount: total,
	}, nil
}
