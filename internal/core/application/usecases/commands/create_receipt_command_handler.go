package commands

import (
	"context"
	"time"

	"stockflow/internal/core/domain/model/receipt"
)

// CreateReceiptCommandHandler handles the business logic for receipt creation.
type CreateReceiptCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewCreateReceiptCommandHandler creates a handler for receipt creation operations.
func NewCreateReceiptCommandHandler(uowFactory ReceiptUoWFactory) CreateReceiptCommandHandler {
	return CreateReceiptCommandHandler{uowFactory: uowFactory}
}

// Handle processes the receipt creation command and returns the persisted receipt.
func (h CreateReceiptCommandHandler) Handle(ctx context.Context, cmd CreateReceiptCommand) (*receipt.Receipt, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines, err := toReceiptLines(cmd.Lines())
	if err != nil {
		return nil, err
	}

	newReceipt, err := receipt.NewReceiptWithStatus(cmd.Status(), lines, time.Now())
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

	if err = uow.ReceiptRepository().Add(ctx, newReceipt); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newReceipt, nil
}
