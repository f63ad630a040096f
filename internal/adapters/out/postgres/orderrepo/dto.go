// Package orderrepo implements order persistence on PostgreSQL.
// It maps the order aggregate to the orders and order_lines tables and back,
// keeping soft-deleted rows in place and filtering them per fetch mode.
package orderrepo

import (
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identity is assigned by the database on first insert. Soft deletion is a
// plain nullable timestamp: deleted rows stay in the table and every read
// filters on it explicitly.
type OrderDTO struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement"`
	Status              string     `gorm:"type:varchar(32);index;not null"`
	LastStatusChangedAt time.Time  `gorm:"not null"`
	DeletedAt           *time.Time `gorm:"index"`
	FinishedBy          *uuid.UUID `gorm:"type:uuid"`
	Lines               []LineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line row.
type LineDTO struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	OrderID          int64           `gorm:"index;not null"`
	ProductVariantID int64           `gorm:"not null"`
	Quantity         int             `gorm:"not null"`
	UnitPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default naming to use "order_lines".
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
// A zero identity stays zero so the insert lets the database assign one.
func fromDomain(aggregate *order.Order) OrderDTO {
	var finishedBy *uuid.UUID
	if actor := aggregate.FinishedBy(); actor != nil {
		raw := actor.UUID()
		finishedBy = &raw
	}

	lines := aggregate.Lines()
	lineDTOs := make([]LineDTO, 0, len(lines))
	for _, l := range lines {
		lineDTOs = append(lineDTOs, LineDTO{
			OrderID:          aggregate.ID().Int64(),
			ProductVariantID: l.ProductVariantID().Int64(),
			Quantity:         l.Quantity(),
			UnitPrice:        l.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID().Int64(),
		Status:              aggregate.Status().String(),
		LastStatusChangedAt: aggregate.LastStatusChangedAt(),
		DeletedAt:           aggregate.DeletedAt(),
		FinishedBy:          finishedBy,
		Lines:               lineDTOs,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// so corrupt rows (unknown status, empty lines) fail loudly.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		variantID, lineErr := kernel.NewID(l.ProductVariantID)
		if lineErr != nil {
			return nil, lineErr
		}
		line, lineErr := order.NewLine(variantID, l.Quantity, l.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var finishedBy *kernel.ActorID
	if dto.FinishedBy != nil {
		actor, actorErr := kernel.ActorIDFromString(dto.FinishedBy.String())
		if actorErr != nil {
			return nil, actorErr
		}
		finishedBy = &actor
	}

	return order.RestoreOrder(id, order.Status(dto.Status), lines, dto.LastStatusChangedAt, dto.DeletedAt, finishedBy)
}
