package repositories

import "errors"

// Sentinel errors shared by the repository implementations. Callers
// classify with errors.Is and surface the wrapped per-entity message.
var (
	// ErrNotFound covers a missing row, and for state-guarded updates
	// (inventory request approval, order status) a row that exists but is
	// no longer in the required state.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned when a conditional stock decrement
	// affects no rows, meaning a concurrent order won the remaining stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicateTentNumber is the translated unique-constraint violation
	// on tents.tent_number.
	ErrDuplicateTentNumber = errors.New("tent number already exists")

	// ErrTentHasOrders blocks hard-deleting a tent any order references.
	ErrTentHasOrders = errors.New("tent has existing orders")
)
