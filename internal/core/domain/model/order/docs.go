// Package order contains the sales-order aggregate: the Order root, its Line
// value objects and the Status state machine that governs the order workflow
// from pending through delivery to its terminal states.
package order
