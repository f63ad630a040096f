package receipt

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/errs"
)

var (
	// ErrReceiptIsNotConstructed is returned when a Receipt instance was not
	// created through NewReceipt or RestoreReceipt.
	ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt or RestoreReceipt")

	// ErrReceiptHasNoLines is returned when a receipt is created or updated
	// with an empty line collection.
	ErrReceiptHasNoLines = errors.New("receipt must contain at least one line")

	// ErrReceiptIDAlreadyAssigned is returned when AssignID is called on a
	// receipt that already carries a persisted identity.
	ErrReceiptIDAlreadyAssigned = errors.New("receipt ID is immutable once assigned")
)

// Receipt is the inventory-receipt aggregate root. It follows the same
// lifecycle discipline as the sales order: validated status transitions,
// edits only while working, soft delete with restore. Unlike orders,
// receipts record no finishing actor.
type Receipt struct {
	id                  kernel.ID
	status              Status
	lines               []Line
	deletedAt           *time.Time
	lastStatusChangedAt time.Time

	isConstructed bool
}

// NewReceipt creates a new receipt in the initial working status.
func NewReceipt(lines []Line, now time.Time) (*Receipt, error) {
	return NewReceiptWithStatus(InitialStatus, lines, now)
}

// NewReceiptWithStatus creates a new receipt in an explicitly supplied status.
// Terminal statuses are refused; a receipt enters finish or cancel only
// through the transition table.
func NewReceiptWithStatus(status Status, lines []Line, now time.Time) (*Receipt, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status.IsTerminal() {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("terminal status %s cannot be assigned at creation", status))
	}
	if len(lines) == 0 {
		return nil, ErrReceiptHasNoLines
	}

	return &Receipt{
		status:              status,
		lines:               slices.Clone(lines),
		lastStatusChangedAt: now,
		isConstructed:       true,
	}, nil
}

// RestoreReceipt reconstructs a receipt from persistence.
func RestoreReceipt(
	id kernel.ID,
	status Status,
	lines []Line,
	lastStatusChangedAt time.Time,
	deletedAt *time.Time,
) (*Receipt, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrReceiptHasNoLines
	}

	return &Receipt{
		id:                  id,
		status:              status,
		lines:               slices.Clone(lines),
		lastStatusChangedAt: lastStatusChangedAt,
		deletedAt:           deletedAt,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Receipt instance was constructed through a factory function.
func (r *Receipt) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReceiptIsNotConstructed
	}
	return nil
}

// AssignID sets the database-generated identity after the first insert.
func (r *Receipt) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !r.id.IsZero() {
		return ErrReceiptIDAlreadyAssigned
	}
	r.id = id
	return nil
}

// IsEqual compares two receipts by identity.
func (r *Receipt) IsEqual(other *Receipt) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the receipt's identity. Zero until the first insert.
func (r *Receipt) ID() kernel.ID {
	return r.id
}

// Status returns the current lifecycle status.
func (r *Receipt) Status() Status {
	return r.status
}

// Lines returns a copy of the receipt's line collection.
func (r *Receipt) Lines() []Line {
	return slices.Clone(r.lines)
}

// DeletedAt returns the soft-delete timestamp, or nil for an active receipt.
func (r *Receipt) DeletedAt() *time.Time {
	return r.deletedAt
}

// IsDeleted reports whether the receipt is soft-deleted.
func (r *Receipt) IsDeleted() bool {
	return r.deletedAt != nil
}

// LastStatusChangedAt returns the time of the last accepted transition.
func (r *Receipt) LastStatusChangedAt() time.Time {
	return r.lastStatusChangedAt
}

// ChangeStatus moves the receipt to target if the transition table allows it.
// A soft-deleted receipt rejects every transition.
func (r *Receipt) ChangeStatus(target Status, now time.Time) error {
	if r.IsDeleted() {
		return errs.NewStateConflictErrorWithCause("receipt",
			fmt.Errorf("receipt %s is deleted", r.id))
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if !r.status.CanTransition(target) {
		return errs.NewInvalidTransitionError(r.status.String(), target.String())
	}

	r.status = target
	r.lastStatusChangedAt = now
	return nil
}

// EnsureEditable returns a conflict error unless the receipt is active and
// still working.
func (r *Receipt) EnsureEditable() error {
	if r.IsDeleted() {
		return errs.NewStateConflictErrorWithCause("receipt",
			fmt.Errorf("receipt %s is deleted", r.id))
	}
	if !r.status.IsEditable() {
		return errs.NewStateConflictErrorWithCause("receipt",
			fmt.Errorf("status %s does not permit edits", r.status))
	}
	return nil
}

// ReplaceLines swaps the entire line collection of an editable receipt.
func (r *Receipt) ReplaceLines(lines []Line) error {
	if err := r.EnsureEditable(); err != nil {
		return err
	}
	if len(lines) == 0 {
		return ErrReceiptHasNoLines
	}

	r.lines = slices.Clone(lines)
	return nil
}

// Delete soft-deletes the receipt. A working receipt cannot be deleted
// outright; it must be cancelled through the transition path first.
func (r *Receipt) Delete(now time.Time) error {
	if r.IsDeleted() {
		return errs.NewObjectNotFoundError("receipt", r.id.String())
	}
	if r.status.IsCannotDelete() {
		return errs.NewStateConflictErrorWithCause("receipt",
			fmt.Errorf("status %s does not permit deletion", r.status))
	}

	r.deletedAt = &now
	return nil
}

// Restore clears the soft-delete marker without touching the status.
func (r *Receipt) Restore() error {
	if !r.IsDeleted() {
		return errs.NewValueIsInvalidErrorWithCause("receipt",
			fmt.Errorf("receipt %s is not deleted", r.id))
	}

	r.deletedAt = nil
	return nil
}
