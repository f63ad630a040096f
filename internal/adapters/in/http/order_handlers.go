package http

import (
	"net/http"
	"strconv"

	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/application/usecases/queries"
	"stockflow/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateDocumentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(request.Status, toLineInputs(request.Lines))
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// UpdateOrder handles PUT /api/v1/orders/:id - replaces the line set of an
// editable order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := parsePathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateLinesRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, toLineInputs(request.Lines))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := parsePathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	actor, err := kernel.ActorIDFromString(request.ActorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, request.Status, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	changed, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(changed))
}

// ChangeOrdersStatus handles POST /api/v1/orders/status - transitions a batch
// of orders atomically.
func (s *Server) ChangeOrdersStatus(ctx echo.Context) error {
	var request BulkChangeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderIDs, err := toKernelIDs(request.IDs)
	if err != nil {
		return respondError(ctx, err)
	}

	actor, err := kernel.ActorIDFromString(request.ActorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrdersStatusCommand(orderIDs, request.Status, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	changed, err := s.changeOrdersStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(changed))
}

// DeleteOrders handles POST /api/v1/orders/delete - soft-deletes a batch of
// orders atomically.
func (s *Server) DeleteOrders(ctx echo.Context) error {
	var request BulkIDsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderIDs, err := toKernelIDs(request.IDs)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrdersCommand(orderIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RestoreOrders handles POST /api/v1/orders/restore - restores a batch of
// soft-deleted orders atomically.
func (s *Server) RestoreOrders(ctx echo.Context) error {
	var request BulkIDsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderIDs, err := toKernelIDs(request.IDs)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRestoreOrdersCommand(orderIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.restoreOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders. Supports deleted=active|deleted|all,
// repeated status params and repeated id params.
func (s *Server) GetOrders(ctx echo.Context) error {
	ids, err := parseQueryIDs(ctx.QueryParams()["id"])
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(
		ctx.QueryParam("deleted"),
		ctx.QueryParams()["status"],
		ids,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(rows))
}

func parsePathID(ctx echo.Context) (kernel.ID, error) {
	raw, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return kernel.ID{}, kernel.ErrIDIsNotConstructed
	}
	return kernel.NewID(raw)
}

func parseQueryIDs(raw []string) ([]kernel.ID, error) {
	ids := make([]kernel.ID, 0, len(raw))
	for _, value := range raw {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, kernel.ErrIDIsNotConstructed
		}
		id, err := kernel.NewID(parsed)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
