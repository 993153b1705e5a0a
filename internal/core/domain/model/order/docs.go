// Package order contains the Order aggregate and its value objects.
//
// Order is the aggregate root for a customer's purchase against one store.
// It owns its order lines, carries a total price equal to the sum of the
// line totals, and moves through an explicit status state machine:
//
//	Pending ──> Accepted ──> InProgress ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──────> Cancelled
//
// Completed and Cancelled are terminal. The staff-driven progression path
// (ProgressTo) only walks the forward edges; Cancelled is reachable solely
// through Cancel, which records who cancelled and when. Orders are never
// physically deleted — cancellation is a status change plus a cancellation
// record.
//
// Customers may cancel their own order only within CancellationWindow of
// placement; store staff are not time-bound.
package order
