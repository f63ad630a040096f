package queries

import (
	"errors"
	"slices"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders for back-office screens.
// The listing can be narrowed to a soft-delete view, to a set of statuses,
// and to explicit identities. All filters combine with AND.
type GetOrdersQuery struct {
	deleted  DeletedFilter
	statuses []order.Status
	ids      []kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query.
// An empty deleted value means the active view; statuses and ids are optional
// narrowing filters.
func NewGetOrdersQuery(deleted string, statuses []string, ids []kernel.ID) (GetOrdersQuery, error) {
	filter, err := DeletedFilterFromString(deleted)
	if err != nil {
		return GetOrdersQuery{}, err
	}

	parsed := make([]order.Status, 0, len(statuses))
	for _, s := range statuses {
		status, statusErr := order.StatusFromString(s)
		if statusErr != nil {
			return GetOrdersQuery{}, statusErr
		}
		parsed = append(parsed, status)
	}

	for _, id := range ids {
		if idErr := id.Validate(); idErr != nil {
			return GetOrdersQuery{}, idErr
		}
	}

	return GetOrdersQuery{
		deleted:  filter,
		statuses: parsed,
		ids:      slices.Clone(ids),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Deleted returns the requested soft-delete view.
func (q GetOrdersQuery) Deleted() DeletedFilter {
	return q.deleted
}

// Statuses returns the status filter, empty when not narrowed.
func (q GetOrdersQuery) Statuses() []order.Status {
	return slices.Clone(q.statuses)
}

// IDs returns the identity filter, empty when not narrowed.
func (q GetOrdersQuery) IDs() []kernel.ID {
	return slices.Clone(q.ids)
}

// GetOrdersQueryResponse is one order row of the listing.
// TotalAmount is the sum over the order's lines, computed by the database.
type GetOrdersQueryResponse struct {
	ID                  kernel.ID
	Status              order.Status
	LastStatusChangedAt time.Time
	DeletedAt           *time.Time
	FinishedBy          *kernel.ActorID
	TotalAmount         decimal.Decimal
}
