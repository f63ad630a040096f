package commands

import (
	"errors"
	"slices"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/guard"
)

var ErrDeleteOrdersCommandIsNotConstructed = errors.New(
	"DeleteOrdersCommand must be created via NewDeleteOrdersCommand constructor",
)

// DeleteOrdersCommand represents a request to soft-delete a batch of orders.
type DeleteOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteOrdersCommand creates a command to soft-delete a batch of orders.
func NewDeleteOrdersCommand(orderIDs []kernel.ID) (DeleteOrdersCommand, error) {
	if err := validateIDs(orderIDs); err != nil {
		return DeleteOrdersCommand{}, err
	}

	return DeleteOrdersCommand{
		orderIDs: slices.Clone(orderIDs),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrdersCommandIsNotConstructed)
}

// OrderIDs returns the identities of the orders to delete.
func (c DeleteOrdersCommand) OrderIDs() []kernel.ID {
	return slices.Clone(c.orderIDs)
}
