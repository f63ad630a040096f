package commands

import (
	"context"
	"time"

	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/core/domain/services"
	"stockflow/internal/core/ports"
)

// ChangeReceiptsStatusCommandHandler transitions a batch of receipts as one
// unit. Same shape as the order batch handler: load the active view, verify
// the batch is complete, guard every transition, then write under one
// transaction.
type ChangeReceiptsStatusCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewChangeReceiptsStatusCommandHandler creates a handler for batch receipt transitions.
func NewChangeReceiptsStatusCommandHandler(uowFactory ReceiptUoWFactory) ChangeReceiptsStatusCommandHandler {
	return ChangeReceiptsStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the batch transition command and returns the updated receipts.
func (h ChangeReceiptsStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeReceiptsStatusCommand,
) ([]*receipt.Receipt, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ReceiptRepository()
	receipts, err := repo.GetByIDs(ctx, cmd.ReceiptIDs(), ports.FetchActiveOnly)
	if err != nil {
		return nil, err
	}

	if err = services.VerifyBatchComplete(cmd.ReceiptIDs(), receipts); err != nil {
		return nil, err
	}

	now := time.Now()
	err = services.GuardEach(receipts, func(r *receipt.Receipt) error {
		return r.ChangeStatus(cmd.Target(), now)
	})
	if err != nil {
		return nil, err
	}

	for _, r := range receipts {
		if err = repo.Update(ctx, r); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return receipts, nil
}
