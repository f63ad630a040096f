package queries

import (
	"context"
	"strings"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads order listings straight from the database.
// The read path bypasses the aggregates: rows are shaped for the listing
// screens, with the line total folded in by SQL.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by order id.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 2)

	if cond := query.Deleted().condition("o.deleted_at"); cond != "" {
		conditions = append(conditions, cond)
	}
	if statuses := query.Statuses(); len(statuses) > 0 {
		raw := make([]string, 0, len(statuses))
		for _, s := range statuses {
			raw = append(raw, s.String())
		}
		conditions = append(conditions, "o.status = ANY(?)")
		args = append(args, pq.Array(raw))
	}
	if ids := query.IDs(); len(ids) > 0 {
		raw := make([]int64, 0, len(ids))
		for _, id := range ids {
			raw = append(raw, id.Int64())
		}
		conditions = append(conditions, "o.id = ANY(?)")
		args = append(args, pq.Array(raw))
	}

	sql := `
		SELECT
			o.id,
			o.status,
			o.last_status_changed_at,
			o.deleted_at,
			o.finished_by,
			COALESCE(SUM(l.unit_price * l.quantity), 0) AS total_amount
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
	`
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += `
		GROUP BY o.id, o.status, o.last_status_changed_at, o.deleted_at, o.finished_by
		ORDER BY o.id
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id                  int64
			status              string
			lastStatusChangedAt time.Time
			deletedAt           *time.Time
			finishedBy          *uuid.UUID
			totalAmount         decimal.Decimal
		)
		if err = rows.Scan(&id, &status, &lastStatusChangedAt, &deletedAt, &finishedBy, &totalAmount); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}

		resp := GetOrdersQueryResponse{
			ID:                  orderID,
			Status:              order.Status(status),
			LastStatusChangedAt: lastStatusChangedAt,
			DeletedAt:           deletedAt,
			TotalAmount:         totalAmount,
		}
		if finishedBy != nil {
			actor, actorErr := kernel.ActorIDFromString(finishedBy.String())
			if actorErr != nil {
				return nil, actorErr
			}
			resp.FinishedBy = &actor
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
