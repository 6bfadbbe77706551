package services

import (
	"errors"
	"strings"
)

// Business-rule errors surfaced to handlers.
var (
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrCourierStatusOnly  = errors.New("couriers may only move orders to in_delivery")
	ErrNotMessageOwner    = errors.New("not allowed to delete this message")
	ErrInvalidStockOp     = errors.New("invalid stock operation, use: set, add, subtract")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// StockErrors aggregates every failing order line. The whole list is
// collected before anything is written, so a rejected cart reports all of
// its problems in one response.
type StockErrors []string

func (e StockErrors) Error() string {
	return strings.Join(e, "\n")
}
