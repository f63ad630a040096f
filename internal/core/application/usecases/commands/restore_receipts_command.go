package commands

import (
	"errors"
	"slices"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/guard"
)

var ErrRestoreReceiptsCommandIsNotConstructed = errors.New(
	"RestoreReceiptsCommand must be created via NewRestoreReceiptsCommand constructor",
)

// RestoreReceiptsCommand represents a request to restore a batch of
// soft-deleted receipts.
type RestoreReceiptsCommand struct { //nolint:recvcheck //using for validation
	receiptIDs []kernel.ID

	guard guard.ConstructorGuard
}

// NewRestoreReceiptsCommand creates a command to restore a batch of receipts.
func NewRestoreReceiptsCommand(receiptIDs []kernel.ID) (RestoreReceiptsCommand, error) {
	if err := validateIDs(receiptIDs); err != nil {
		return RestoreReceiptsCommand{}, err
	}

	return RestoreReceiptsCommand{
		receiptIDs: slices.Clone(receiptIDs),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreReceiptsCommand) Validate() error {
	return c.guard.Validate(ErrRestoreReceiptsCommandIsNotConstructed)
}

// ReceiptIDs returns the identities of the receipts to restore.
func (c RestoreReceiptsCommand) ReceiptIDs() []kernel.ID {
	return slices.Clone(c.receiptIDs)
}
