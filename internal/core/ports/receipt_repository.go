package ports

import (
	"context"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/receipt"
)

// ReceiptRepository defines the persistence contract for receipt aggregates.
type ReceiptRepository interface {
	// Add persists a new receipt and assigns its database-generated identity.
	Add(ctx context.Context, aggregate *receipt.Receipt) error

	// Update persists changes to an existing receipt, lines included.
	Update(ctx context.Context, aggregate *receipt.Receipt) error

	// Get retrieves one receipt by identity within the given view.
	Get(ctx context.Context, id kernel.ID, mode FetchMode) (*receipt.Receipt, error)

	// GetByIDs retrieves all receipts matching the given identities within the
	// given view.
	GetByIDs(ctx context.Context, ids []kernel.ID, mode FetchMode) ([]*receipt.Receipt, error)
}
