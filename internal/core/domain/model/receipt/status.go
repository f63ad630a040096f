package receipt

import (
	"fmt"

	"stockflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an inventory receipt.
//
// State transitions:
//
//	working ──┬──> finish
//	          └──> cancel
//
// finish and cancel are terminal. A working receipt is the only editable one,
// and it cannot be soft-deleted: it has to be finished or cancelled first.
type Status string

const (
	// StatusWorking is the initial status of a receipt still being processed.
	StatusWorking Status = "working"

	// StatusFinish indicates all received goods were booked in. Terminal.
	StatusFinish Status = "finish"

	// StatusCancel indicates the receipt was abandoned. Terminal.
	StatusCancel Status = "cancel"
)

// InitialStatus is the status assigned when a receipt is created without one.
const InitialStatus = StatusWorking

var transitions = map[Status][]Status{
	StatusWorking: {StatusFinish, StatusCancel},
	StatusFinish:  {},
	StatusCancel:  {},
}

// StatusFromString converts an externally supplied value into a Status.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// IsValid reports whether the status is a member of the receipt status registry.
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// Validate returns a validation error if the status is not a member of the registry.
func (s Status) Validate() error {
	if !s.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid receipt status", string(s)))
	}
	return nil
}

// IsEditable reports whether the receipt's fields may still be changed.
func (s Status) IsEditable() bool {
	return s == StatusWorking
}

// IsCannotDelete reports whether the status blocks soft deletion.
func (s Status) IsCannotDelete() bool {
	return s == StatusWorking
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	successors, ok := transitions[s]
	return ok && len(successors) == 0
}

// CanTransition reports whether the one-step transition from s to target is
// listed in the transition table. Unknown statuses and self-transitions are
// disallowed.
func (s Status) CanTransition(target Status) bool {
	successors, ok := transitions[s]
	if !ok {
		return false
	}
	for _, next := range successors {
		if next == target {
			return true
		}
	}
	return false
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	return string(s)
}
