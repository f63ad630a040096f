package commands

import (
	"context"

	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/core/domain/services"
	"stockflow/internal/core/ports"
)

// RestoreReceiptsCommandHandler restores a batch of soft-deleted receipts as
// one unit. Receipts are loaded from the deleted view only: an active id
// counts as missing and fails the completeness check. Restored receipts
// resume in the status they were deleted in.
type RestoreReceiptsCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewRestoreReceiptsCommandHandler creates a handler for batch receipt restoration.
func NewRestoreReceiptsCommandHandler(uowFactory ReceiptUoWFactory) RestoreReceiptsCommandHandler {
	return RestoreReceiptsCommandHandler{uowFactory: uowFactory}
}

// Handle processes the batch restore command.
func (h RestoreReceiptsCommandHandler) Handle(ctx context.Context, cmd RestoreReceiptsCommand) error {
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
	receipts, err := repo.GetByIDs(ctx, cmd.ReceiptIDs(), ports.FetchDeletedOnly)
	if err != nil {
		return err
	}

	if err = services.VerifyBatchComplete(cmd.ReceiptIDs(), receipts); err != nil {
		return err
	}

	err = services.GuardEach(receipts, func(r *receipt.Receipt) error {
		return r.Restore()
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
