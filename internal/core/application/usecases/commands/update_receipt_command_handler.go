package commands

import (
	"context"

	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/core/ports"
)

// UpdateReceiptCommandHandler replaces the line collection of a working receipt.
type UpdateReceiptCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewUpdateReceiptCommandHandler creates a handler for receipt update operations.
func NewUpdateReceiptCommandHandler(uowFactory ReceiptUoWFactory) UpdateReceiptCommandHandler {
	return UpdateReceiptCommandHandler{uowFactory: uowFactory}
}

// Handle processes the receipt update command and returns the updated receipt.
func (h UpdateReceiptCommandHandler) Handle(ctx context.Context, cmd UpdateReceiptCommand) (*receipt.Receipt, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines, err := toReceiptLines(cmd.Lines())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = existing.ReplaceLines(lines); err != nil {
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
