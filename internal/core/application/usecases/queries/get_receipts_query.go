package queries

import (
	"errors"
	"slices"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetReceiptsQueryIsNotConstructed = errors.New(
	"GetReceiptsQuery must be created via NewGetReceiptsQuery constructor",
)

// GetReceiptsQuery lists goods receipts, narrowed the same way as the order
// listing: soft-delete view, statuses, explicit identities.
type GetReceiptsQuery struct {
	deleted  DeletedFilter
	statuses []receipt.Status
	ids      []kernel.ID

	guard guard.ConstructorGuard
}

// NewGetReceiptsQuery creates a receipt listing query.
func NewGetReceiptsQuery(deleted string, statuses []string, ids []kernel.ID) (GetReceiptsQuery, error) {
	filter, err := DeletedFilterFromString(deleted)
	if err != nil {
		return GetReceiptsQuery{}, err
	}

	parsed := make([]receipt.Status, 0, len(statuses))
	for _, s := range statuses {
		status, statusErr := receipt.StatusFromString(s)
		if statusErr != nil {
			return GetReceiptsQuery{}, statusErr
		}
		parsed = append(parsed, status)
	}

	for _, id := range ids {
		if idErr := id.Validate(); idErr != nil {
			return GetReceiptsQuery{}, idErr
		}
	}

	return GetReceiptsQuery{
		deleted:  filter,
		statuses: parsed,
		ids:      slices.Clone(ids),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReceiptsQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiptsQueryIsNotConstructed)
}

// Deleted returns the requested soft-delete view.
func (q GetReceiptsQuery) Deleted() DeletedFilter {
	return q.deleted
}

// Statuses returns the status filter, empty when not narrowed.
func (q GetReceiptsQuery) Statuses() []receipt.Status {
	return slices.Clone(q.statuses)
}

// IDs returns the identity filter, empty when not narrowed.
func (q GetReceiptsQuery) IDs() []kernel.ID {
	return slices.Clone(q.ids)
}

// GetReceiptsQueryResponse is one receipt row of the listing.
type GetReceiptsQueryResponse struct {
	ID                  kernel.ID
	Status              receipt.Status
	LastStatusChangedAt time.Time
	DeletedAt           *time.Time
	TotalAmount         decimal.Decimal
}
