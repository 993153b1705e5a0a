package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/store"
)

// StoreRepository resolves store records by id.
type StoreRepository interface {
	// Get retrieves a store by id.
	// Returns ObjectNotFoundError if the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)
}

// ProductRepository resolves catalog products by id.
type ProductRepository interface {
	// Get retrieves a product by id.
	// Returns ObjectNotFoundError if the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

// CategoryRepository answers category existence checks for list filters.
type CategoryRepository interface {
	// Exists reports whether a category with the given id exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
