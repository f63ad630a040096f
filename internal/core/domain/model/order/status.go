package order

import (
	"fmt"

	"stockflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a sales order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	pending ──┬──> deposit_50 ──> confirmed_50 ──┬──> delivering ──> completed
//	          ├──> confirmed_cod ────────────────┘
//	          ├──> refund                (deposit_50, confirmed_50 and
//	          └──> cancelled              confirmed_cod may also refund)
//
// completed, refund and cancelled are terminal: they have no outgoing
// transitions. Re-submitting the current status is rejected like any other
// unlisted transition.
type Status string

const (
	// StatusPending is the initial status of a freshly created order.
	// It is the only status in which the order's fields may still be edited.
	StatusPending Status = "pending"

	// StatusDeposit50 indicates the customer has paid a 50% deposit.
	StatusDeposit50 Status = "deposit_50"

	// StatusConfirmed50 indicates the deposit-paid order has been confirmed.
	StatusConfirmed50 Status = "confirmed_50"

	// StatusConfirmedCOD indicates the order has been confirmed for cash on delivery.
	StatusConfirmedCOD Status = "confirmed_cod"

	// StatusDelivering indicates the order is out for delivery.
	StatusDelivering Status = "delivering"

	// StatusCompleted indicates the order has been delivered and closed.
	// Terminal. Reaching it stamps FinishedBy on the order.
	StatusCompleted Status = "completed"

	// StatusRefund indicates the order was refunded. Terminal.
	StatusRefund Status = "refund"

	// StatusCancelled indicates the order was cancelled. Terminal.
	StatusCancelled Status = "cancelled"
)

// InitialStatus is the status assigned when an order is created without one.
const InitialStatus = StatusPending

// transitions maps each status to the statuses reachable in one step.
// Built once at process start and read-only afterwards. A status missing
// from the map is unknown; an empty successor list marks a terminal status.
var transitions = map[Status][]Status{
	StatusPending:      {StatusDeposit50, StatusConfirmedCOD, StatusRefund, StatusCancelled},
	StatusDeposit50:    {StatusConfirmed50, StatusRefund},
	StatusConfirmed50:  {StatusDelivering, StatusRefund},
	StatusConfirmedCOD: {StatusDelivering, StatusRefund},
	StatusDelivering:   {StatusCompleted},
	StatusCompleted:    {},
	StatusRefund:       {},
	StatusCancelled:    {},
}

// cannotDelete lists the in-flight statuses that block soft deletion.
// Orders in these states must leave through the transition path
// (cancel or complete) before they can be deleted.
var cannotDelete = map[Status]struct{}{
	StatusConfirmed50:  {},
	StatusConfirmedCOD: {},
	StatusDelivering:   {},
	StatusCompleted:    {},
}

// StatusFromString converts an externally supplied value into a Status.
// Returns a validation error for any value outside the registry.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// IsValid reports whether the status is a member of the order status registry.
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// Validate returns a validation error if the status is not a member of the registry.
func (s Status) Validate() error {
	if !s.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// IsEditable reports whether the order's fields may still be changed in this status.
// Only pending orders accept edits.
func (s Status) IsEditable() bool {
	return s == StatusPending
}

// IsCannotDelete reports whether the status blocks soft deletion.
// Unknown statuses do not block: validity is checked separately.
func (s Status) IsCannotDelete() bool {
	_, ok := cannotDelete[s]
	return ok
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	successors, ok := transitions[s]
	return ok && len(successors) == 0
}

// CanTransition reports whether the one-step transition from s to target is
// listed in the transition table. Unknown statuses on either side and
// self-transitions are disallowed.
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
