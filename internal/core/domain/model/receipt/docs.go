// Package receipt contains the inventory-receipt aggregate: the Receipt root,
// its Line value objects and the working/finish/cancel state machine.
package receipt
