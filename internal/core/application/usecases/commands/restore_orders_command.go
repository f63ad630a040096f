package commands

import (
	"errors"
	"slices"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/guard"
)

var ErrRestoreOrdersCommandIsNotConstructed = errors.New(
	"RestoreOrdersCommand must be created via NewRestoreOrdersCommand constructor",
)

// RestoreOrdersCommand represents a request to restore a batch of
// soft-deleted orders.
type RestoreOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.ID

	guard guard.ConstructorGuard
}

// NewRestoreOrdersCommand creates a command to restore a batch of orders.
func NewRestoreOrdersCommand(orderIDs []kernel.ID) (RestoreOrdersCommand, error) {
	if err := validateIDs(orderIDs); err != nil {
		return RestoreOrdersCommand{}, err
	}

	return RestoreOrdersCommand{
		orderIDs: slices.Clone(orderIDs),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRestoreOrdersCommandIsNotConstructed)
}

// OrderIDs returns the identities of the orders to restore.
func (c RestoreOrdersCommand) OrderIDs() []kernel.ID {
	return slices.Clone(c.orderIDs)
}
