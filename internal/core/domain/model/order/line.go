package order

import (
	"fmt"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Line is one position of a sales order: a product variant, the quantity sold
// and the unit price agreed at sale time. Lines are owned exclusively by their
// order, created with it and replaced wholesale on update.
//
// Line is an immutable value object; invalid lines cannot be constructed.
type Line struct {
	productVariantID kernel.ID
	quantity         int
	unitPrice        decimal.Decimal
}

// NewLine creates a validated order line.
// The product variant must be a persisted identity, quantity must be positive
// and the unit price non-negative.
func NewLine(productVariantID kernel.ID, quantity int, unitPrice decimal.Decimal) (Line, error) {
	if err := productVariantID.Validate(); err != nil {
		return Line{}, errs.NewValueIsRequiredErrorWithCause("productVariantID", err)
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.IsNegative() {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}

	return Line{
		productVariantID: productVariantID,
		quantity:         quantity,
		unitPrice:        unitPrice,
	}, nil
}

// ProductVariantID returns the identity of the sold product variant.
func (l Line) ProductVariantID() kernel.ID {
	return l.productVariantID
}

// Quantity returns the number of units sold.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-unit price agreed at sale time.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Total returns quantity times unit price.
func (l Line) Total() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}
