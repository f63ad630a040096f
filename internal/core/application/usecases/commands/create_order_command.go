package commands

import (
	"errors"
	"fmt"
	"slices"

	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/pkg/errs"
	"stockflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
)

// CreateOrderCommand represents a request to register a new sales order.
// The status is optional; an empty status falls back to the initial pending
// state.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	status string
	lines  []LineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new sales order.
// An empty status string means "use the initial status"; a non-empty one must
// be a member of the order status registry and non-terminal, so no order is
// minted completed, refunded or cancelled without passing the transition table.
func NewCreateOrderCommand(status string, lines []LineInput) (CreateOrderCommand, error) {
	if len(lines) == 0 {
		return CreateOrderCommand{}, ErrOrderLinesAreRequired
	}
	if status != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return CreateOrderCommand{}, err
		}
		if parsed.IsTerminal() {
			return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("terminal status %s cannot be assigned at creation", parsed))
		}
	}

	return CreateOrderCommand{
		status: status,
		lines:  slices.Clone(lines),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Status returns the requested initial status, or the registry's initial
// status when none was supplied.
func (c CreateOrderCommand) Status() order.Status {
	if c.status == "" {
		return order.InitialStatus
	}
	return order.Status(c.status)
}

// Lines returns the requested line positions.
func (c CreateOrderCommand) Lines() []LineInput {
	return slices.Clone(c.lines)
}
