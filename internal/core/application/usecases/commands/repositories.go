// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
//
// Bulk commands additionally share one structural shape: load the requested
// records in the fetch view of the operation, verify the batch is complete,
// apply the per-record lifecycle guard, and commit every mutation in a single
// transaction or none at all.
package commands

import (
	"context"

	"stockflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReceiptRepoFactory provides access to the receipt repository within a transaction.
	ReceiptRepoFactory interface {
		ReceiptRepository() ports.ReceiptRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReceiptUoW manages transactions for receipt-only operations.
	ReceiptUoW interface {
		TxManager
		ReceiptRepoFactory
	}

	// ReceiptUoWFactory creates new receipt unit of work instances.
	ReceiptUoWFactory interface {
		Create() ReceiptUoW
	}
)
