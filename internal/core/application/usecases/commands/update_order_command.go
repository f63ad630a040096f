package commands

import (
	"errors"
	"slices"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace the line collection of an
// editable order. Lines are never patched individually.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	lines   []LineInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to replace an order's lines.
func NewUpdateOrderCommand(orderID kernel.ID, lines []LineInput) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}
	if len(lines) == 0 {
		return UpdateOrderCommand{}, ErrOrderLinesAreRequired
	}

	return UpdateOrderCommand{
		orderID: orderID,
		lines:   slices.Clone(lines),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identity of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Lines returns the replacement line positions.
func (c UpdateOrderCommand) Lines() []LineInput {
	return slices.Clone(c.lines)
}
