package commands

import (
	"errors"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrStaleTTLIsInvalid = errors.New("stale TTL must be greater than 0")
)

// CancelStaleOrdersCommand represents a request to cancel every active order
// that has been sitting in pending longer than the given TTL. Issued by the
// background job on behalf of a system actor.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl   time.Duration
	actor kernel.ActorID

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale pending orders.
func NewCancelStaleOrdersCommand(ttl time.Duration, actor kernel.ActorID) (CancelStaleOrdersCommand, error) {
	if ttl <= 0 {
		return CancelStaleOrdersCommand{}, ErrStaleTTLIsInvalid
	}
	if err := actor.Validate(); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return CancelStaleOrdersCommand{
		ttl:   ttl,
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// TTL returns how long an order may stay pending before it is cancelled.
func (c CancelStaleOrdersCommand) TTL() time.Duration {
	return c.ttl
}

// Actor returns the system actor the cancellations are attributed to.
func (c CancelStaleOrdersCommand) Actor() kernel.ActorID {
	return c.actor
}
