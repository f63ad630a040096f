// Package http exposes the order and receipt lifecycle over a REST API.
// Handlers translate JSON contracts into commands and queries and map
// application errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/application/usecases/queries"
	"stockflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderHandler          commands.UpdateOrderCommandHandler
	changeOrderStatusHandler    commands.ChangeOrderStatusCommandHandler
	changeOrdersStatusHandler   commands.ChangeOrdersStatusCommandHandler
	deleteOrdersHandler         commands.DeleteOrdersCommandHandler
	restoreOrdersHandler        commands.RestoreOrdersCommandHandler
	createReceiptHandler        commands.CreateReceiptCommandHandler
	updateReceiptHandler        commands.UpdateReceiptCommandHandler
	changeReceiptStatusHandler  commands.ChangeReceiptStatusCommandHandler
	changeReceiptsStatusHandler commands.ChangeReceiptsStatusCommandHandler
	deleteReceiptsHandler       commands.DeleteReceiptsCommandHandler
	restoreReceiptsHandler      commands.RestoreReceiptsCommandHandler

	// Query handlers
	getOrdersHandler   queries.GetOrdersQueryHandler
	getReceiptsHandler queries.GetReceiptsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	changeOrdersStatusHandler commands.ChangeOrdersStatusCommandHandler,
	deleteOrdersHandler commands.DeleteOrdersCommandHandler,
	restoreOrdersHandler commands.RestoreOrdersCommandHandler,
	createReceiptHandler commands.CreateReceiptCommandHandler,
	updateReceiptHandler commands.UpdateReceiptCommandHandler,
	changeReceiptStatusHandler commands.ChangeReceiptStatusCommandHandler,
	changeReceiptsStatusHandler commands.ChangeReceiptsStatusCommandHandler,
	deleteReceiptsHandler commands.DeleteReceiptsCommandHandler,
	restoreReceiptsHandler commands.RestoreReceiptsCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getReceiptsHandler queries.GetReceiptsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderHandler:          updateOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		changeOrdersStatusHandler:   changeOrdersStatusHandler,
		deleteOrdersHandler:         deleteOrdersHandler,
		restoreOrdersHandler:        restoreOrdersHandler,
		createReceiptHandler:        createReceiptHandler,
		updateReceiptHandler:        updateReceiptHandler,
		changeReceiptStatusHandler:  changeReceiptStatusHandler,
		changeReceiptsStatusHandler: changeReceiptsStatusHandler,
		deleteReceiptsHandler:       deleteReceiptsHandler,
		restoreReceiptsHandler:      restoreReceiptsHandler,
		getOrdersHandler:            getOrdersHandler,
		getReceiptsHandler:          getReceiptsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/status", s.ChangeOrdersStatus)
	api.POST("/orders/delete", s.DeleteOrders)
	api.POST("/orders/restore", s.RestoreOrders)

	api.POST("/receipts", s.CreateReceipt)
	api.GET("/receipts", s.GetReceipts)
	api.PUT("/receipts/:id", s.UpdateReceipt)
	api.POST("/receipts/:id/status", s.ChangeReceiptStatus)
	api.POST("/receipts/status", s.ChangeReceiptsStatus)
	api.POST("/receipts/delete", s.DeleteReceipts)
	api.POST("/receipts/restore", s.RestoreReceipts)
}

// respondError maps application errors to HTTP status codes. Guard rejections
// surface as conflicts, validation failures as bad requests.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict), errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
