package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoLines is returned when an order is created or updated with an
	// empty line collection.
	ErrOrderHasNoLines = errors.New("order must contain at least one line")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a persisted identity.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is immutable once assigned")
)

// Order is the sales-order aggregate root. It owns its line collection and
// guards the full lifecycle: validated status transitions, the edit window,
// and the soft-delete/restore cycle.
//
// Invariants:
//   - status is always a member of the order status registry
//   - status only changes along edges of the transition table
//   - a soft-deleted order rejects all transitions and edits until restored
//   - finishedBy is stamped exactly once, on the transition into completed
//   - the line collection is never empty and is replaced wholesale on update
type Order struct {
	id                  kernel.ID
	status              Status
	lines               []Line
	deletedAt           *time.Time
	lastStatusChangedAt time.Time
	finishedBy          *kernel.ActorID

	isConstructed bool
}

// NewOrder creates a new order in the initial pending status.
// The identity is assigned later by the repository on first insert.
func NewOrder(lines []Line, now time.Time) (*Order, error) {
	return NewOrderWithStatus(InitialStatus, lines, now)
}

// NewOrderWithStatus creates a new order in an explicitly supplied status.
// Used by callers that register orders already progressed outside the system,
// for example imported confirmed orders. Terminal statuses are refused: a
// completed order must carry the actor who finished it, and that stamp only
// happens on the transition into completed.
func NewOrderWithStatus(status Status, lines []Line, now time.Time) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status.IsTerminal() {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("terminal status %s cannot be assigned at creation", status))
	}
	if len(lines) == 0 {
		return nil, ErrOrderHasNoLines
	}

	return &Order{
		status:              status,
		lines:               slices.Clone(lines),
		lastStatusChangedAt: now,
		isConstructed:       true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without replaying its
// lifecycle. The stored state is trusted but still checked against the
// registry so corrupt rows surface immediately.
func RestoreOrder(
	id kernel.ID,
	status Status,
	lines []Line,
	lastStatusChangedAt time.Time,
	deletedAt *time.Time,
	finishedBy *kernel.ActorID,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrOrderHasNoLines
	}

	return &Order{
		id:                  id,
		status:              status,
		lines:               slices.Clone(lines),
		lastStatusChangedAt: lastStatusChangedAt,
		deletedAt:           deletedAt,
		finishedBy:          finishedBy,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Order instance was constructed through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID sets the database-generated identity after the first insert.
// The identity is immutable: assigning over an existing one is an error.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrOrderIDAlreadyAssigned
	}
	o.id = id
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identity. Zero until the first insert.
func (o *Order) ID() kernel.ID {
	return o.id
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Lines returns a copy of the order's line collection.
func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

// DeletedAt returns the soft-delete timestamp, or nil for an active order.
func (o *Order) DeletedAt() *time.Time {
	return o.deletedAt
}

// IsDeleted reports whether the order is soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.deletedAt != nil
}

// LastStatusChangedAt returns the time of the last accepted transition.
func (o *Order) LastStatusChangedAt() time.Time {
	return o.lastStatusChangedAt
}

// FinishedBy returns the actor that completed the order, or nil while the
// order has not reached completed.
func (o *Order) FinishedBy() *kernel.ActorID {
	return o.finishedBy
}

// ChangeStatus moves the order to target if the transition table allows it.
//
// A soft-deleted order rejects every transition. On success the order records
// the transition time, and the transition into completed stamps the acting
// user as FinishedBy. completed has no outgoing edges, so the stamp can never
// be overwritten.
func (o *Order) ChangeStatus(target Status, actor kernel.ActorID, now time.Time) error {
	if o.IsDeleted() {
		return errs.NewStateConflictErrorWithCause("order",
			fmt.Errorf("order %s is deleted", o.id))
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransition(target) {
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	}

	o.status = target
	o.lastStatusChangedAt = now
	if target == StatusCompleted {
		finisher := actor
		o.finishedBy = &finisher
	}
	return nil
}

// EnsureEditable returns a conflict error unless the order is active and in a
// status that still permits field edits.
func (o *Order) EnsureEditable() error {
	if o.IsDeleted() {
		return errs.NewStateConflictErrorWithCause("order",
			fmt.Errorf("order %s is deleted", o.id))
	}
	if !o.status.IsEditable() {
		return errs.NewStateConflictErrorWithCause("order",
			fmt.Errorf("status %s does not permit edits", o.status))
	}
	return nil
}

// ReplaceLines swaps the entire line collection of an editable order.
// Lines are never patched individually: an update carries the complete new set.
func (o *Order) ReplaceLines(lines []Line) error {
	if err := o.EnsureEditable(); err != nil {
		return err
	}
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	o.lines = slices.Clone(lines)
	return nil
}

// Delete soft-deletes the order by stamping the deletion time.
//
// An already-deleted order is reported as not found, matching the view of a
// caller who only sees active records. In-flight statuses block deletion:
// such orders must go through cancellation instead.
func (o *Order) Delete(now time.Time) error {
	if o.IsDeleted() {
		return errs.NewObjectNotFoundError("order", o.id.String())
	}
	if o.status.IsCannotDelete() {
		return errs.NewStateConflictErrorWithCause("order",
			fmt.Errorf("status %s does not permit deletion", o.status))
	}

	o.deletedAt = &now
	return nil
}

// Restore clears the soft-delete marker. The order resumes in whatever status
// it was deleted in; restore never touches the status.
func (o *Order) Restore() error {
	if !o.IsDeleted() {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order %s is not deleted", o.id))
	}

	o.deletedAt = nil
	return nil
}
