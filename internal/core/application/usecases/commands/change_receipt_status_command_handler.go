package commands

import (
	"context"
	"time"

	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/core/ports"
)

// ChangeReceiptStatusCommandHandler moves one receipt along its transition table.
type ChangeReceiptStatusCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewChangeReceiptStatusCommandHandler creates a handler for single-receipt transitions.
func NewChangeReceiptStatusCommandHandler(uowFactory ReceiptUoWFactory) ChangeReceiptStatusCommandHandler {
	return ChangeReceiptStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the transition command and returns the updated receipt.
func (h ChangeReceiptStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeReceiptStatusCommand,
) (*receipt.Receipt, error) {
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
	existing, err := repo.Get(ctx, cmd.ReceiptID(), ports.FetchActiveOnly)
	if err != nil {
		return nil, err
	}

	if err = existing.ChangeStatus(cmd.Target(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
