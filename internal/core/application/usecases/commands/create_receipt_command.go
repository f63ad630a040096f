package commands

import (
	"errors"
	"fmt"
	"slices"

	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/pkg/errs"
	"stockflow/internal/pkg/guard"
)

var (
	ErrCreateReceiptCommandIsNotConstructed = errors.New(
		"CreateReceiptCommand must be created via NewCreateReceiptCommand constructor",
	)
	ErrReceiptLinesAreRequired = errors.New("at least one receipt line is required")
)

// CreateReceiptCommand represents a request to register a new inventory receipt.
type CreateReceiptCommand struct { //nolint:recvcheck //using for validation
	status string
	lines  []LineInput

	guard guard.ConstructorGuard
}

// NewCreateReceiptCommand creates a command to register a new receipt.
// An empty status string means "use the initial working status"; a non-empty
// one must be a member of the registry and non-terminal.
func NewCreateReceiptCommand(status string, lines []LineInput) (CreateReceiptCommand, error) {
	if len(lines) == 0 {
		return CreateReceiptCommand{}, ErrReceiptLinesAreRequired
	}
	if status != "" {
		parsed, err := receipt.StatusFromString(status)
		if err != nil {
			return CreateReceiptCommand{}, err
		}
		if parsed.IsTerminal() {
			return CreateReceiptCommand{}, errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("terminal status %s cannot be assigned at creation", parsed))
		}
	}

	return CreateReceiptCommand{
		status: status,
		lines:  slices.Clone(lines),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReceiptCommand) Validate() error {
	return c.guard.Validate(ErrCreateReceiptCommandIsNotConstructed)
}

// Status returns the requested initial status, defaulting to working.
func (c CreateReceiptCommand) Status() receipt.Status {
	if c.status == "" {
		return receipt.InitialStatus
	}
	return receipt.Status(c.status)
}

// Lines returns the requested line positions.
func (c CreateReceiptCommand) Lines() []LineInput {
	return slices.Clone(c.lines)
}
