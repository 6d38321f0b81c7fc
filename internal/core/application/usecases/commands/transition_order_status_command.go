package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

// ErrTransitionOrderStatusCommandIsNotConstructed is returned when a
// TransitionOrderStatusCommand was not created through its constructor.
var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand asks to move an order to a new status.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	requester kernel.Requester
	orderID   kernel.UUID
	next      order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand creates a command to move an order along its
// lifecycle. Whether the requester may take the edge is decided by the handler.
//
// Parameters:
//   - requester: the customer or shop owner asking for the change
//   - orderID: target order
//   - next: requested status
//
// Returns:
//   - TransitionOrderStatusCommand: the command
//   - error: joined validation errors of the arguments
//
// Example:
//
//	cmd, err := commands.NewTransitionOrderStatusCommand(owner, orderID, order.StatusAccepted)
func NewTransitionOrderStatusCommand(
	requester kernel.Requester, orderID kernel.UUID, next order.Status,
) (TransitionOrderStatusCommand, error) {
	if err := errors.Join(requester.Validate(), orderID.Validate(), next.Validate()); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return TransitionOrderStatusCommand{
		requester: requester,
		orderID:   orderID,
		next:      next,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through NewTransitionOrderStatusCommand.
// Returns ErrTransitionOrderStatusCommandIsNotConstructed if validation fails.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

// Requester returns who issued the command.
func (c TransitionOrderStatusCommand) Requester() kernel.Requester {
	return c.requester
}

// OrderID returns the order the command targets.
func (c TransitionOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Next returns the requested status.
func (c TransitionOrderStatusCommand) Next() order.Status {
	return c.next
}
