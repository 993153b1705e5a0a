// Package store holds the store record as the ordering core sees it:
// a reference resolved by id, never owned.
package store

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrStoreIsNotConstructed is returned when a Store instance was not created
// through the NewStore factory method.
var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

// Store identifies one store orders are placed against.
type Store struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewStore creates a Store record with a validated id and name.
func NewStore(id kernel.UUID, name string) (*Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("store name")
	}

	return &Store{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Store was created via NewStore.
func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name returns the store's display name.
func (s *Store) Name() string {
	return s.name
}
