package commands

import (
	"errors"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/pkg/guard"
)

var ErrChangeReceiptStatusCommandIsNotConstructed = errors.New(
	"ChangeReceiptStatusCommand must be created via NewChangeReceiptStatusCommand constructor",
)

// ChangeReceiptStatusCommand represents a request to move a single receipt to
// a target status.
type ChangeReceiptStatusCommand struct { //nolint:recvcheck //using for validation
	receiptID kernel.ID
	target    receipt.Status

	guard guard.ConstructorGuard
}

// NewChangeReceiptStatusCommand creates a command to transition one receipt.
func NewChangeReceiptStatusCommand(receiptID kernel.ID, target string) (ChangeReceiptStatusCommand, error) {
	if err := receiptID.Validate(); err != nil {
		return ChangeReceiptStatusCommand{}, err
	}
	targetStatus, err := receipt.StatusFromString(target)
	if err != nil {
		return ChangeReceiptStatusCommand{}, err
	}

	return ChangeReceiptStatusCommand{
		receiptID: receiptID,
		target:    targetStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeReceiptStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeReceiptStatusCommandIsNotConstructed)
}

// ReceiptID returns the identity of the receipt to transition.
func (c ChangeReceiptStatusCommand) ReceiptID() kernel.ID {
	return c.receiptID
}

// Target returns the requested target status.
func (c ChangeReceiptStatusCommand) Target() receipt.Status {
	return c.target
}
