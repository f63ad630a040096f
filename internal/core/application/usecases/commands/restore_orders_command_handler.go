package commands

import (
	"context"

	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/domain/services"
	"stockflow/internal/core/ports"
)

// RestoreOrdersCommandHandler restores a batch of soft-deleted orders as one
// unit. Orders are loaded from the deleted view only: an active id counts as
// missing and fails the completeness check. Restored orders resume in the
// status they were deleted in.
type RestoreOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRestoreOrdersCommandHandler creates a handler for batch order restoration.
func NewRestoreOrdersCommandHandler(uowFactory OrderUoWFactory) RestoreOrdersCommandHandler {
	return RestoreOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle processes the batch restore command.
func (h RestoreOrdersCommandHandler) Handle(ctx context.Context, cmd RestoreOrdersCommand) error {
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
	orders, err := repo.GetByIDs(ctx, cmd.OrderIDs(), ports.FetchDeletedOnly)
	if err != nil {
		return err
	}

	if err = services.VerifyBatchComplete(cmd.OrderIDs(), orders); err != nil {
		return err
	}

	err = services.GuardEach(orders, func(o *order.Order) error {
		return o.Restore()
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
