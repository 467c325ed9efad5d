package inventory

// Outcome is the enumerated result of applying an AdjustmentRequest. Every
// validation and business rule rejection is an expected outcome, not an
// error; the api layer maps each variant to a status code with an exhaustive
// type switch. Only infrastructure failures travel as Go errors.
type Outcome interface {
	outcome()
}

// Updated is a successful plain (non order) adjustment.
type Updated struct {
	Product Snapshot
}

// OrderFulfilled is a successful order fulfillment adjustment: stock was
// sufficient, the shipping notification went out, and the deduction was
// persisted.
type OrderFulfilled struct {
	OrderID string
	Email   string
}

// InvalidDelta means the quantity field was absent or not a well formed
// integer.
type InvalidDelta struct{}

// ZeroDelta means a quantity of exactly zero was requested.
type ZeroDelta struct{}

// NotFound means no product exists for the requested sku.
type NotFound struct{}

// IncompleteOrderContext means exactly one of email and orderId was provided.
type IncompleteOrderContext struct{}

// PositiveDeltaNotAllowedForOrder means a positive delta arrived under an
// order context. Orders only ever consume stock.
type PositiveDeltaNotAllowedForOrder struct{}

// InsufficientStock means the deduction would drive quantity below zero. The
// product is left untouched and no notification is attempted.
type InsufficientStock struct {
	OrderID string
	Email   string
}

// NotificationFailed means the shipping notification could not be delivered.
// The deduction is abandoned so stock is never decremented for an order the
// customer was not told about.
type NotificationFailed struct {
	OrderID string
}

func (Updated) outcome()                         {}
func (OrderFulfilled) outcome()                  {}
func (InvalidDelta) outcome()                    {}
func (ZeroDelta) outcome()                       {}
func (NotFound) outcome()                        {}
func (IncompleteOrderContext) outcome()          {}
func (PositiveDeltaNotAllowedForOrder) outcome() {}
func (InsufficientStock) outcome()               {}
func (NotificationFailed) outcome()              {}
