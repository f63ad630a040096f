package ports

import (
	"context"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All reads filter strictly by the requested FetchMode so that callers never
// see records outside the soft-delete view they asked for.
type OrderRepository interface {
	// Add persists a new order and assigns its database-generated identity.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, lines included.
	// The line collection is replaced wholesale.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves one order by identity within the given view.
	// Returns an ObjectNotFoundError when no matching record exists.
	Get(ctx context.Context, id kernel.ID, mode FetchMode) (*order.Order, error)

	// GetByIDs retrieves all orders matching the given identities within the
	// given view. Missing ids are not an error at this level; completeness is
	// the caller's check.
	GetByIDs(ctx context.Context, ids []kernel.ID, mode FetchMode) ([]*order.Order, error)

	// GetAllPendingBefore retrieves active orders still pending whose last
	// status change is older than the cutoff. Used by the stale-order job.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
