package commands

import (
	"errors"
	"slices"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/guard"
)

var ErrDeleteReceiptsCommandIsNotConstructed = errors.New(
	"DeleteReceiptsCommand must be created via NewDeleteReceiptsCommand constructor",
)

// DeleteReceiptsCommand represents a request to soft-delete a batch of receipts.
type DeleteReceiptsCommand struct { //nolint:recvcheck //using for validation
	receiptIDs []kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteReceiptsCommand creates a command to soft-delete a batch of receipts.
func NewDeleteReceiptsCommand(receiptIDs []kernel.ID) (DeleteReceiptsCommand, error) {
	if err := validateIDs(receiptIDs); err != nil {
		return DeleteReceiptsCommand{}, err
	}

	return DeleteReceiptsCommand{
		receiptIDs: slices.Clone(receiptIDs),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReceiptsCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReceiptsCommandIsNotConstructed)
}

// ReceiptIDs returns the identities of the receipts to delete.
func (c DeleteReceiptsCommand) ReceiptIDs() []kernel.ID {
	return slices.Clone(c.receiptIDs)
}
