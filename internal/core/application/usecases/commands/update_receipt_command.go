package commands

import (
	"errors"
	"slices"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/guard"
)

var ErrUpdateReceiptCommandIsNotConstructed = errors.New(
	"UpdateReceiptCommand must be created via NewUpdateReceiptCommand constructor",
)

// UpdateReceiptCommand represents a request to replace the line collection of
// a working receipt.
type UpdateReceiptCommand struct { //nolint:recvcheck //using for validation
	receiptID kernel.ID
	lines     []LineInput

	guard guard.ConstructorGuard
}

// NewUpdateReceiptCommand creates a command to replace a receipt's lines.
func NewUpdateReceiptCommand(receiptID kernel.ID, lines []LineInput) (UpdateReceiptCommand, error) {
	if err := receiptID.Validate(); err != nil {
		return UpdateReceiptCommand{}, err
	}
	if len(lines) == 0 {
		return UpdateReceiptCommand{}, ErrReceiptLinesAreRequired
	}

	return UpdateReceiptCommand{
		receiptID: receiptID,
		lines:     slices.Clone(lines),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReceiptCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReceiptCommandIsNotConstructed)
}

// ReceiptID returns the identity of the receipt to update.
func (c UpdateReceiptCommand) ReceiptID() kernel.ID {
	return c.receiptID
}

// Lines returns the replacement line positions.
func (c UpdateReceiptCommand) Lines() []LineInput {
	return slices.Clone(c.lines)
}
