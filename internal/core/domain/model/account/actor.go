package account

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the verified identity on whose behalf an operation executes.
// It is a value object carrying the user id and role supplied by the
// upstream authentication layer.
type Actor struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewActor creates an Actor with a validated id and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor was created via NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the acting user's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}
