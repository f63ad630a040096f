package queries

import (
	"fmt"

	"stockflow/internal/pkg/errs"
)

// DeletedFilter selects which soft-delete view a listing query reads.
// The default view hides deleted records; callers can ask explicitly for the
// trash view or for both at once.
type DeletedFilter string

const (
	// DeletedFilterActive returns only records that are not soft-deleted.
	DeletedFilterActive DeletedFilter = "active"

	// DeletedFilterDeleted returns only soft-deleted records.
	DeletedFilterDeleted DeletedFilter = "deleted"

	// DeletedFilterAll returns records regardless of deletion state.
	DeletedFilterAll DeletedFilter = "all"
)

// DeletedFilterFromString parses an externally supplied filter value.
// The empty string means the default active view.
func DeletedFilterFromString(s string) (DeletedFilter, error) {
	switch s {
	case "", string(DeletedFilterActive):
		return DeletedFilterActive, nil
	case string(DeletedFilterDeleted):
		return DeletedFilterDeleted, nil
	case string(DeletedFilterAll):
		return DeletedFilterAll, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("deleted",
			fmt.Errorf("%q is not one of active, deleted, all", s))
	}
}

// condition returns the SQL predicate implementing the filter, or the empty
// string when no predicate is needed.
func (f DeletedFilter) condition(column string) string {
	switch f {
	case DeletedFilterActive:
		return column + " IS NULL"
	case DeletedFilterDeleted:
		return column + " IS NOT NULL"
	default:
		return ""
	}
}
