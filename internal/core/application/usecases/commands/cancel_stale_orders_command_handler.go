package commands

import (
	"context"
	"time"

	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/domain/services"
)

// CancelStaleOrdersCommandHandler cancels pending orders older than the TTL.
// pending -> cancelled is a regular table transition, so the cancellations go
// through the same lifecycle guard as user-requested ones.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale-order cancellation.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle cancels all stale pending orders and reports how many were cancelled.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	repo := uow.OrderRepository()
	stale, err := repo.GetAllPendingBefore(ctx, now.Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	err = services.GuardEach(stale, func(o *order.Order) error {
		return o.ChangeStatus(order.StatusCancelled, cmd.Actor(), now)
	})
	if err != nil {
		return 0, err
	}

	for _, o := range stale {
		if err = repo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
