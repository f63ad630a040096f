package kernel

import (
	"fmt"

	"stockflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrActorIDIsNotConstructed indicates that an ActorID was not initialized through
// one of the constructor functions. It is returned when validating a zero-value ActorID.
var ErrActorIDIsNotConstructed = errs.NewValueIsRequiredError(
	"ActorID must be created via NewActorID or ActorIDFromString",
)

// ActorID identifies the user performing a lifecycle mutation, such as the
// operator who moves an order into its terminal completed state. It wraps
// github.com/google/uuid to keep the identifier immutable and validated.
//
// The zero value of ActorID is invalid and must be constructed via
// NewActorID or ActorIDFromString.
//
// Example:
//
//	actor, err := kernel.ActorIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type ActorID struct {
	id uuid.UUID
}

// NewActorID generates a new random actor identifier.
// Used mainly in tests and in flows where the acting user is synthesized
// (for example the background job account).
func NewActorID() ActorID {
	return ActorID{id: uuid.New()}
}

// ActorIDFromString parses an ActorID from its standard string representation.
// Returns an error for any value that is not a valid UUID.
func ActorIDFromString(s string) (ActorID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ActorID{}, fmt.Errorf("invalid actor ID format: %w", err)
	}

	actorID := ActorID{id: id}
	if err = actorID.Validate(); err != nil {
		return ActorID{}, err
	}

	return actorID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (a ActorID) String() string {
	return a.id.String()
}

// UUID returns the underlying uuid.UUID, used by persistence adapters.
func (a ActorID) UUID() uuid.UUID {
	return a.id
}

// IsEqual compares two actor identifiers by value.
func (a ActorID) IsEqual(other ActorID) bool {
	return a.id == other.id
}

// Validate returns ErrActorIDIsNotConstructed for the zero value.
func (a ActorID) Validate() error {
	if a.id == uuid.Nil {
		return ErrActorIDIsNotConstructed
	}
	return nil
}
