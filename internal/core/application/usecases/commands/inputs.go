package commands

import (
	"fmt"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineInput carries one requested line position before domain validation.
// Commands accept raw line inputs and convert them into aggregate-owned Line
// value objects during handling.
type LineInput struct {
	ProductVariantID int64
	Quantity         int
	UnitPrice        decimal.Decimal
}

func toOrderLines(inputs []LineInput) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(inputs))
	for _, in := range inputs {
		variantID, err := kernel.NewID(in.ProductVariantID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("productVariantID", err)
		}
		line, err := order.NewLine(variantID, in.Quantity, in.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func toReceiptLines(inputs []LineInput) ([]receipt.Line, error) {
	lines := make([]receipt.Line, 0, len(inputs))
	for _, in := range inputs {
		variantID, err := kernel.NewID(in.ProductVariantID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("productVariantID", err)
		}
		line, err := receipt.NewLine(variantID, in.Quantity, in.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// validateIDs rejects empty batches, unassigned identities and duplicates.
// Duplicates would make the completeness check ambiguous, so they are refused
// up front rather than silently deduplicated.
func validateIDs(ids []kernel.ID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("ids")
	}

	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id.Int64()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("ids",
				fmt.Errorf("id %s is requested more than once", id))
		}
		seen[id.Int64()] = struct{}{}
	}
	return nil
}
