// Package kernel contains the shared value objects of the domain model:
// the integer ID carried by every persisted record and the ActorID that
// identifies the user behind a lifecycle mutation.
//
// Both types are immutable, validated at construction, and safe for
// concurrent use. Zero values are invalid and fail Validate, which keeps
// accidentally uninitialized identities out of the aggregates.
package kernel
