package commands

import (
	"errors"
	"slices"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/pkg/guard"
)

var ErrChangeReceiptsStatusCommandIsNotConstructed = errors.New(
	"ChangeReceiptsStatusCommand must be created via NewChangeReceiptsStatusCommand constructor",
)

// ChangeReceiptsStatusCommand represents a request to move a batch of
// receipts to one target status as an all-or-nothing unit.
type ChangeReceiptsStatusCommand struct { //nolint:recvcheck //using for validation
	receiptIDs []kernel.ID
	target     receipt.Status

	guard guard.ConstructorGuard
}

// NewChangeReceiptsStatusCommand creates a command to transition a batch of receipts.
func NewChangeReceiptsStatusCommand(receiptIDs []kernel.ID, target string) (ChangeReceiptsStatusCommand, error) {
	if err := validateIDs(receiptIDs); err != nil {
		return ChangeReceiptsStatusCommand{}, err
	}
	targetStatus, err := receipt.StatusFromString(target)
	if err != nil {
		return ChangeReceiptsStatusCommand{}, err
	}

	return ChangeReceiptsStatusCommand{
		receiptIDs: slices.Clone(receiptIDs),
		target:     targetStatus,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeReceiptsStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeReceiptsStatusCommandIsNotConstructed)
}

// ReceiptIDs returns the identities of the receipts to transition.
func (c ChangeReceiptsStatusCommand) ReceiptIDs() []kernel.ID {
	return slices.Clone(c.receiptIDs)
}

// Target returns the requested target status.
func (c ChangeReceiptsStatusCommand) Target() receipt.Status {
	return c.target
}
