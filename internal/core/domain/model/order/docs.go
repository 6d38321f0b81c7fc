// Package order provides the Order aggregate of the laundry marketplace and
// the state machine its status follows.
//
// The package includes:
//   - Order: the aggregate root recording a customer's request to a shop
//   - Status: the seven lifecycle states and the single transition table
//   - Item: one service type and piece count of an order
//   - Filter and Group: status selections used by order listings
//
// Key business rules:
//   - New orders start Pending
//   - Pending, Accepted, PickedUp and InProgress may be cancelled
//   - Completed orders can only be delivered
//   - Delivered and Cancelled are terminal
//   - The total amount is fixed at creation
package order
