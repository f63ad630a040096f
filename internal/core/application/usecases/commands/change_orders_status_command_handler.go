package commands

import (
	"context"
	"time"

	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/domain/services"
	"stockflow/internal/core/ports"
)

// ChangeOrdersStatusCommandHandler transitions a batch of orders as one unit.
//
// The handler loads the batch from the active view, verifies every requested
// id was found, asks each order to accept the transition, and only then
// writes. All writes share one transaction, so either every order moves to
// the target status or none does.
type ChangeOrdersStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrdersStatusCommandHandler creates a handler for batch order transitions.
func NewChangeOrdersStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrdersStatusCommandHandler {
	return ChangeOrdersStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the batch transition command and returns the updated orders.
func (h ChangeOrdersStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrdersStatusCommand,
) ([]*order.Order, error) {
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

	repo := uow.OrderRepository()
	orders, err := repo.GetByIDs(ctx, cmd.OrderIDs(), ports.FetchActiveOnly)
	if err != nil {
		return nil, err
	}

	if err = services.VerifyBatchComplete(cmd.OrderIDs(), orders); err != nil {
		return nil, err
	}

	now := time.Now()
	err = services.GuardEach(orders, func(o *order.Order) error {
		return o.ChangeStatus(cmd.Target(), cmd.Actor(), now)
	})
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err = repo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orders, nil
}
