package http

import (
	"time"

	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/application/usecases/queries"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineRequest is one requested line position.
type LineRequest struct {
	ProductVariantID int64           `json:"productVariantId"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
}

// CreateDocumentRequest creates an order or a receipt. Status is optional:
// an empty value means the initial status of the document kind.
type CreateDocumentRequest struct {
	Status string        `json:"status,omitempty"`
	Lines  []LineRequest `json:"lines"`
}

// UpdateLinesRequest replaces the line set of an editable document.
type UpdateLinesRequest struct {
	Lines []LineRequest `json:"lines"`
}

// ChangeStatusRequest moves a single document to a target status. ActorID is
// required for orders, where completions are stamped with the finishing actor.
type ChangeStatusRequest struct {
	Status  string `json:"status"`
	ActorID string `json:"actorId,omitempty"`
}

// BulkChangeStatusRequest moves a batch of documents to a target status.
// The batch succeeds or fails as a whole.
type BulkChangeStatusRequest struct {
	IDs     []int64 `json:"ids"`
	Status  string  `json:"status"`
	ActorID string  `json:"actorId,omitempty"`
}

// BulkIDsRequest addresses a batch of documents by identifier.
type BulkIDsRequest struct {
	IDs []int64 `json:"ids"`
}

// LineResponse is one line position of a document.
type LineResponse struct {
	ProductVariantID int64           `json:"productVariantId"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	Total            decimal.Decimal `json:"total"`
}

// OrderResponse is a full order representation.
type OrderResponse struct {
	ID                  int64          `json:"id"`
	Status              string         `json:"status"`
	LastStatusChangedAt time.Time      `json:"lastStatusChangedAt"`
	DeletedAt           *time.Time     `json:"deletedAt,omitempty"`
	FinishedBy          *string        `json:"finishedBy,omitempty"`
	Lines               []LineResponse `json:"lines"`
}

// ReceiptResponse is a full receipt representation.
type ReceiptResponse struct {
	ID                  int64          `json:"id"`
	Status              string         `json:"status"`
	LastStatusChangedAt time.Time      `json:"lastStatusChangedAt"`
	DeletedAt           *time.Time     `json:"deletedAt,omitempty"`
	Lines               []LineResponse `json:"lines"`
}

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID                  int64           `json:"id"`
	Status              string          `json:"status"`
	LastStatusChangedAt time.Time       `json:"lastStatusChangedAt"`
	DeletedAt           *time.Time      `json:"deletedAt,omitempty"`
	FinishedBy          *string         `json:"finishedBy,omitempty"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
}

// ReceiptSummaryResponse is one row of the receipt listing.
type ReceiptSummaryResponse struct {
	ID                  int64           `json:"id"`
	Status              string          `json:"status"`
	LastStatusChangedAt time.Time       `json:"lastStatusChangedAt"`
	DeletedAt           *time.Time      `json:"deletedAt,omitempty"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
}

func toLineInputs(lines []LineRequest) []commands.LineInput {
	inputs := make([]commands.LineInput, len(lines))
	for i, line := range lines {
		inputs[i] = commands.LineInput{
			ProductVariantID: line.ProductVariantID,
			Quantity:         line.Quantity,
			UnitPrice:        line.UnitPrice,
		}
	}
	return inputs
}

func toKernelIDs(raw []int64) ([]kernel.ID, error) {
	ids := make([]kernel.ID, len(raw))
	for i, value := range raw {
		id, err := kernel.NewID(value)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("ids", err)
		}
		ids[i] = id
	}
	return ids, nil
}

func toOrderLineResponses(lines []order.Line) []LineResponse {
	response := make([]LineResponse, len(lines))
	for i, line := range lines {
		response[i] = LineResponse{
			ProductVariantID: line.ProductVariantID().Int64(),
			Quantity:         line.Quantity(),
			UnitPrice:        line.UnitPrice(),
			Total:            line.Total(),
		}
	}
	return response
}

func toReceiptLineResponses(lines []receipt.Line) []LineResponse {
	response := make([]LineResponse, len(lines))
	for i, line := range lines {
		response[i] = LineResponse{
			ProductVariantID: line.ProductVariantID().Int64(),
			Quantity:         line.Quantity(),
			UnitPrice:        line.UnitPrice(),
			Total:            line.Total(),
		}
	}
	return response
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	var finishedBy *string
	if actor := aggregate.FinishedBy(); actor != nil {
		value := actor.String()
		finishedBy = &value
	}

	return OrderResponse{
		ID:                  aggregate.ID().Int64(),
		Status:              aggregate.Status().String(),
		LastStatusChangedAt: aggregate.LastStatusChangedAt(),
		DeletedAt:           aggregate.DeletedAt(),
		FinishedBy:          finishedBy,
		Lines:               toOrderLineResponses(aggregate.Lines()),
	}
}

func toOrderResponses(aggregates []*order.Order) []OrderResponse {
	response := make([]OrderResponse, len(aggregates))
	for i, aggregate := range aggregates {
		response[i] = toOrderResponse(aggregate)
	}
	return response
}

func toReceiptResponse(aggregate *receipt.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:                  aggregate.ID().Int64(),
		Status:              aggregate.Status().String(),
		LastStatusChangedAt: aggregate.LastStatusChangedAt(),
		DeletedAt:           aggregate.DeletedAt(),
		Lines:               toReceiptLineResponses(aggregate.Lines()),
	}
}

func toReceiptResponses(aggregates []*receipt.Receipt) []ReceiptResponse {
	response := make([]ReceiptResponse, len(aggregates))
	for i, aggregate := range aggregates {
		response[i] = toReceiptResponse(aggregate)
	}
	return response
}

func toOrderSummaryResponses(rows []queries.GetOrdersQueryResponse) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, len(rows))
	for i, row := range rows {
		var finishedBy *string
		if row.FinishedBy != nil {
			value := row.FinishedBy.String()
			finishedBy = &value
		}

		response[i] = OrderSummaryResponse{
			ID:                  row.ID.Int64(),
			Status:              row.Status.String(),
			LastStatusChangedAt: row.LastStatusChangedAt,
			DeletedAt:           row.DeletedAt,
			FinishedBy:          finishedBy,
			TotalAmount:         row.TotalAmount,
		}
	}
	return response
}

func toReceiptSummaryResponses(rows []queries.GetReceiptsQueryResponse) []ReceiptSummaryResponse {
	response := make([]ReceiptSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = ReceiptSummaryResponse{
			ID:                  row.ID.Int64(),
			Status:              row.Status.String(),
			LastStatusChangedAt: row.LastStatusChangedAt,
			DeletedAt:           row.DeletedAt,
			TotalAmount:         row.TotalAmount,
		}
	}
	return response
}
