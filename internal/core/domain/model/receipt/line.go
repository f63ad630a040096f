package receipt

import (
	"fmt"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Line is one position of an inventory receipt: a product variant, the
// received quantity and the purchase price per unit. Lines belong to their
// receipt and are replaced wholesale on update.
type Line struct {
	productVariantID kernel.ID
	quantity         int
	unitPrice        decimal.Decimal
}

// NewLine creates a validated receipt line.
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

// ProductVariantID returns the identity of the received product variant.
func (l Line) ProductVariantID() kernel.ID {
	return l.productVariantID
}

// Quantity returns the number of received units.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the purchase price per unit.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Total returns quantity times unit price.
func (l Line) Total() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}
