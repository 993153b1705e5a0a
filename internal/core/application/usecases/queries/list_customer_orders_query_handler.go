package queries

import (
	"context"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListCustomerOrdersQueryHandler reads a page of the acting customer's own
// orders. The optional category filter is resolved against the catalog before
// the list query runs, so an unknown category fails fast instead of silently
// matching nothing.
type ListCustomerOrdersQueryHandler struct {
	db         *gorm.DB
	categories ports.CategoryRepository
}

// NewListCustomerOrdersQueryHandler creates a handler for customer order lists.
func NewListCustomerOrdersQueryHandler(
	db *gorm.DB,
	categories ports.CategoryRepository,
) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db, categories: categories}
}

// Handle returns a page of the customer's order summaries, newest first
// unless ascending sort is requested. Only customers may use this query; an
// unknown category filter fails with ObjectNotFoundError.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) (OrderPageResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderPageResponse{}, err
	}

	role := query.Actor().Role()
	if role != account.Customer {
		return OrderPageResponse{}, errs.NewPermissionDeniedError("list customer orders", role.String())
	}

	if categoryID := query.CategoryID(); categoryID != nil {
		exists, err := h.categories.Exists(ctx, *categoryID)
		if err != nil {
			return OrderPageResponse{}, err
		}
		if !exists {
			return OrderPageResponse{}, errs.NewObjectNotFoundError("categoryId", categoryID.String())
		}
	}

	tx := h.db.WithContext(ctx).
		Table("orders").
		Where("orders.customer_id = ?", query.Actor().ID().Bytes())

	if categoryID := query.CategoryID(); categoryID != nil {
		tx = tx.Where(
			`orders.id IN (
				SELECT order_lines.order_id
				FROM order_lines
				JOIN products ON products.id = order_lines.product_id
				WHERE products.category_id = ?
			)`,
			categoryID.Bytes(),
		)
	}

	filters := query.Filters()
	if filters.OrderType != nil {
		tx = tx.Where("orders.order_type = ?", int(*filters.OrderType))
	}
	if filters.Status != nil {
		tx = tx.Where("orders.status = ?", int(*filters.Status))
	}
	if filters.CreatedFrom != nil {
		tx = tx.Where("orders.created_at >= ?", *filters.CreatedFrom)
	}
	if filters.CreatedTo != nil {
		tx = tx.Where("orders.created_at <= ?", *filters.CreatedTo)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return OrderPageResponse{}, err
	}

	sort := "orders.created_at DESC"
	if filters.SortAscending {
		sort = "orders.created_at ASC"
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
