package commands

import (
	"errors"
	"slices"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/pkg/guard"
)

var ErrChangeOrdersStatusCommandIsNotConstructed = errors.New(
	"ChangeOrdersStatusCommand must be created via NewChangeOrdersStatusCommand constructor",
)

// ChangeOrdersStatusCommand represents a request to move a batch of orders to
// one target status. The batch is all-or-nothing: a single missing order or a
// single illegal transition fails the whole command.
type ChangeOrdersStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.ID
	target   order.Status
	actor    kernel.ActorID

	guard guard.ConstructorGuard
}

// NewChangeOrdersStatusCommand creates a command to transition a batch of orders.
func NewChangeOrdersStatusCommand(
	orderIDs []kernel.ID,
	target string,
	actor kernel.ActorID,
) (ChangeOrdersStatusCommand, error) {
	if err := validateIDs(orderIDs); err != nil {
		return ChangeOrdersStatusCommand{}, err
	}
	targetStatus, err := order.StatusFromString(target)
	if err != nil {
		return ChangeOrdersStatusCommand{}, err
	}
	if err = actor.Validate(); err != nil {
		return ChangeOrdersStatusCommand{}, err
	}

	return ChangeOrdersStatusCommand{
		orderIDs: slices.Clone(orderIDs),
		target:   targetStatus,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrdersStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrdersStatusCommandIsNotConstructed)
}

// OrderIDs returns the identities of the orders to transition.
func (c ChangeOrdersStatusCommand) OrderIDs() []kernel.ID {
	return slices.Clone(c.orderIDs)
}

// Target returns the requested target status.
func (c ChangeOrdersStatusCommand) Target() order.Status {
	return c.target
}

// Actor returns the user requesting the transitions.
func (c ChangeOrdersStatusCommand) Actor() kernel.ActorID {
	return c.actor
}
