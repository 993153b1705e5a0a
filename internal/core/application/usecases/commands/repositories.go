// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// authorization, transaction management, and persistence.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure each operation is atomic: all writes commit or
// none do.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogRepoFactory provides access to store and product lookups within a transaction.
	CatalogRepoFactory interface {
		StoreRepository() ports.StoreRepository
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for operations that only touch an
	// existing order aggregate (status updates, cancellation).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW manages transactions for order placement, which resolves
	// the store and products and persists the new aggregate in one scope.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}
)
