// Package receiptrepo implements goods-receipt persistence on PostgreSQL,
// mirroring the order repository: receipts and receipt_lines tables, explicit
// soft-delete filtering per fetch mode.
package receiptrepo

import (
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/receipt"

	"github.com/shopspring/decimal"
)

// ReceiptDTO represents the database structure for persisting receipt aggregates.
type ReceiptDTO struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement"`
	Status              string     `gorm:"type:varchar(32);index;not null"`
	LastStatusChangedAt time.Time  `gorm:"not null"`
	DeletedAt           *time.Time `gorm:"index"`
	Lines               []LineDTO  `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "receipts".
func (ReceiptDTO) TableName() string {
	return "receipts"
}

// LineDTO represents one receipt line row.
type LineDTO struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	ReceiptID        int64           `gorm:"index;not null"`
	ProductVariantID int64           `gorm:"not null"`
	Quantity         int             `gorm:"not null"`
	UnitPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default naming to use "receipt_lines".
func (LineDTO) TableName() string {
	return "receipt_lines"
}

func fromDomain(aggregate *receipt.Receipt) ReceiptDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]LineDTO, 0, len(lines))
	for _, l := range lines {
		lineDTOs = append(lineDTOs, LineDTO{
			ReceiptID:        aggregate.ID().Int64(),
			ProductVariantID: l.ProductVariantID().Int64(),
			Quantity:         l.Quantity(),
			UnitPrice:        l.UnitPrice(),
		})
	}

	return ReceiptDTO{
		ID:                  aggregate.ID().Int64(),
		Status:              aggregate.Status().String(),
		LastStatusChangedAt: aggregate.LastStatusChangedAt(),
		DeletedAt:           aggregate.DeletedAt(),
		Lines:               lineDTOs,
	}
}

func toDomain(dto ReceiptDTO) (*receipt.Receipt, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	lines := make([]receipt.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		variantID, lineErr := kernel.NewID(l.ProductVariantID)
		if lineErr != nil {
			return nil, lineErr
		}
		line, lineErr := receipt.NewLine(variantID, l.Quantity, l.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return receipt.RestoreReceipt(id, receipt.Status(dto.Status), lines, dto.LastStatusChangedAt, dto.DeletedAt)
}
