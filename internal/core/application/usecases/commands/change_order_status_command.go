package commands

import (
	"errors"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move a single order to a
// target status on behalf of an acting user.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	target  order.Status
	actor   kernel.ActorID

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to transition one order.
// The target must be a member of the order status registry; whether the
// transition itself is legal is decided against the loaded order.
func NewChangeOrderStatusCommand(
	orderID kernel.ID,
	target string,
	actor kernel.ActorID,
) (ChangeOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	targetStatus, err := order.StatusFromString(target)
	if err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	if err = actor.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		target:  targetStatus,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identity of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

// Target returns the requested target status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// Actor returns the user requesting the transition.
func (c ChangeOrderStatusCommand) Actor() kernel.ActorID {
	return c.actor
}
