// Package services contains domain logic that spans more than one aggregate
// instance: the batch completeness check and the per-subject guard loop that
// together enforce the all-or-nothing contract of bulk commands.
package services
