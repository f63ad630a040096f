package services

import (
	"strings"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/errs"
)

// Subject is the identity surface shared by the bulk-mutable aggregates
// (orders and receipts).
type Subject interface {
	ID() kernel.ID
}

// VerifyBatchComplete checks that every requested identifier was actually
// loaded. A bulk command must abort before mutating anything when even one
// id has no matching record in the fetch view of the operation, so the error
// names all missing ids at once.
func VerifyBatchComplete[S Subject](requested []kernel.ID, loaded []S) error {
	found := make(map[int64]struct{}, len(loaded))
	for _, subject := range loaded {
		found[subject.ID().Int64()] = struct{}{}
	}

	var missing []string
	for _, id := range requested {
		if _, ok := found[id.Int64()]; !ok {
			missing = append(missing, id.String())
		}
	}

	if len(missing) > 0 {
		return errs.NewObjectNotFoundError("ids", strings.Join(missing, ", "))
	}
	return nil
}

// GuardEach applies a per-subject guard to every loaded subject and stops at
// the first rejection. Callers rely on the all-or-nothing contract: a single
// rejection fails the whole batch, and since subjects are mutated by the
// guard itself, GuardEach must run to completion before any persistence
// writes begin.
func GuardEach[S Subject](subjects []S, guardFn func(S) error) error {
	for _, subject := range subjects {
		if err := guardFn(subject); err != nil {
			return err
		}
	}
	return nil
}
