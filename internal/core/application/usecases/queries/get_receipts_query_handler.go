package queries

import (
	"context"
	"strings"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/receipt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetReceiptsQueryHandler reads receipt listings straight from the database.
type GetReceiptsQueryHandler struct {
	db *gorm.DB
}

// NewGetReceiptsQueryHandler creates a handler for receipt listing queries.
func NewGetReceiptsQueryHandler(db *gorm.DB) GetReceiptsQueryHandler {
	return GetReceiptsQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by receipt id.
func (h GetReceiptsQueryHandler) Handle(
	ctx context.Context,
	query GetReceiptsQuery,
) ([]GetReceiptsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 2)

	if cond := query.Deleted().condition("r.deleted_at"); cond != "" {
		conditions = append(conditions, cond)
	}
	if statuses := query.Statuses(); len(statuses) > 0 {
		raw := make([]string, 0, len(statuses))
		for _, s := range statuses {
			raw = append(raw, s.String())
		}
		conditions = append(conditions, "r.status = ANY(?)")
		args = append(args, pq.Array(raw))
	}
	if ids := query.IDs(); len(ids) > 0 {
		raw := make([]int64, 0, len(ids))
		for _, id := range ids {
			raw = append(raw, id.Int64())
		}
		conditions = append(conditions, "r.id = ANY(?)")
		args = append(args, pq.Array(raw))
	}

	sql := `
		SELECT
			r.id,
			r.status,
			r.last_status_changed_at,
			r.deleted_at,
			COALESCE(SUM(l.unit_price * l.quantity), 0) AS total_amount
		FROM receipts r
		LEFT JOIN receipt_lines l ON l.receipt_id = r.id
	`
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += `
		GROUP BY r.id, r.status, r.last_status_changed_at, r.deleted_at
		ORDER BY r.id
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	receipts := make([]GetReceiptsQueryResponse, 0)
	for rows.Next() {
		var (
			id                  int64
			status              string
			lastStatusChangedAt time.Time
			deletedAt           *time.Time
			totalAmount         decimal.Decimal
		)
		if err = rows.Scan(&id, &status, &lastStatusChangedAt, &deletedAt, &totalAmount); err != nil {
			return nil, err
		}

		receiptID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}

		receipts = append(receipts, GetReceiptsQueryResponse{
			ID:                  receiptID,
			Status:              receipt.Status(status),
			LastStatusChangedAt: lastStatusChangedAt,
			DeletedAt:           deletedAt,
			TotalAmount:         totalAmount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return receipts, nil
}
