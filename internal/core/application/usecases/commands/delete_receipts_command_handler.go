package commands

import (
	"context"
	"time"

	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/core/domain/services"
	"stockflow/internal/core/ports"
)

// DeleteReceiptsCommandHandler soft-deletes a batch of receipts as one unit.
// Receipts are loaded from the active view only, so an already-deleted id
// counts as missing and fails the completeness check. A working receipt
// blocks the whole batch.
type DeleteReceiptsCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewDeleteReceiptsCommandHandler creates a handler for batch receipt deletion.
func NewDeleteReceiptsCommandHandler(uowFactory ReceiptUoWFactory) DeleteReceiptsCommandHandler {
	return DeleteReceiptsCommandHandler{uowFactory: uowFactory}
}

// Handle processes the batch delete command.
func (h DeleteReceiptsCommandHandler) Handle(ctx context.Context, cmd DeleteReceiptsCommand) error {
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

	repo := uow.ReceiptRepository()
	receipts, err := repo.GetByIDs(ctx, cmd.ReceiptIDs(), ports.FetchActiveOnly)
	if err != nil {
		return err
	}

	if err = services.VerifyBatchComplete(cmd.ReceiptIDs(), receipts); err != nil {
		return err
	}

	now := time.Now()
	err = services.GuardEach(receipts, func(r *receipt.Receipt) error {
		return r.Delete(now)
	})
	if err != nil {
		return err
	}

	for _, r := range receipts {
		if err = repo.Update(ctx, r); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
