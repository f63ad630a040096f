package http

import (
	"net/http"

	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateReceipt handles POST /api/v1/receipts.
func (s *Server) CreateReceipt(ctx echo.Context) error {
	var request CreateDocumentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateReceiptCommand(request.Status, toLineInputs(request.Lines))
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createReceiptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toReceiptResponse(created))
}

// UpdateReceipt handles PUT /api/v1/receipts/:id.
func (s *Server) UpdateReceipt(ctx echo.Context) error {
	receiptID, err := parsePathID(ctx)
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

	cmd, err := commands.NewUpdateReceiptCommand(receiptID, toLineInputs(request.Lines))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateReceiptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReceiptResponse(updated))
}

// ChangeReceiptStatus handles POST /api/v1/receipts/:id/status.
func (s *Server) ChangeReceiptStatus(ctx echo.Context) error {
	receiptID, err := parsePathID(ctx)
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

	cmd, err := commands.NewChangeReceiptStatusCommand(receiptID, request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	changed, err := s.changeReceiptStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReceiptResponse(changed))
}

// ChangeReceiptsStatus handles POST /api/v1/receipts/status - transitions a
// batch of receipts atomically.
func (s *Server) ChangeReceiptsStatus(ctx echo.Context) error {
	var request BulkChangeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	receiptIDs, err := toKernelIDs(request.IDs)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeReceiptsStatusCommand(receiptIDs, request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	changed, err := s.changeReceiptsStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReceiptResponses(changed))
}

// DeleteReceipts handles POST /api/v1/receipts/delete.
func (s *Server) DeleteReceipts(ctx echo.Context) error {
	var request BulkIDsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	receiptIDs, err := toKernelIDs(request.IDs)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteReceiptsCommand(receiptIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteReceiptsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RestoreReceipts handles POST /api/v1/receipts/restore.
func (s *Server) RestoreReceipts(ctx echo.Context) error {
	var request BulkIDsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	receiptIDs, err := toKernelIDs(request.IDs)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRestoreReceiptsCommand(receiptIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.restoreReceiptsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetReceipts handles GET /api/v1/receipts.
func (s *Server) GetReceipts(ctx echo.Context) error {
	ids, err := parseQueryIDs(ctx.QueryParams()["id"])
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetReceiptsQuery(
		ctx.QueryParam("deleted"),
		ctx.QueryParams()["status"],
		ids,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getReceiptsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReceiptSummaryResponses(rows))
}
