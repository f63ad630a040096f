package commands

import (
	"context"
	"time"

	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/domain/services"
	"stockflow/internal/core/ports"
)

// DeleteOrdersCommandHandler soft-deletes a batch of orders as one unit.
// Orders are loaded from the active view only: an already-deleted id counts
// as missing and fails the completeness check. In-flight orders block the
// whole batch.
type DeleteOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrdersCommandHandler creates a handler for batch order deletion.
func NewDeleteOrdersCommandHandler(uowFactory OrderUoWFactory) DeleteOrdersCommandHandler {
	return DeleteOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle processes the batch delete command.
func (h DeleteOrdersCommandHandler) Handle(ctx context.Context, cmd DeleteOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	orders, err := repo.GetByIDs(ctx, cmd.OrderIDs(), ports.FetchActiveOnly)
	if err != nil {
		return err
	}

	if err = services.VerifyBatchComplete(cmd.OrderIDs(), orders); err != nil {
		return err
	}

	now := time.Now()
	err = services.GuardEach(orders, func(o *order.Order) error {
		return o.Delete(now)
	})
	if err != nil {
		return err
	}

	for _, o := range orders {
		if err = repo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
