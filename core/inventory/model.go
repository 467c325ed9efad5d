// Package inventory tracks stock quantities for SKU identified products. The
// interesting part is the quantity adjustment decision logic: plain deltas are
// applied as-is, while deltas carrying an order context must pass a stock
// sufficiency check and a shipping notification before they take effect.
package inventory

import (
	"time"
)

// Product is an entity. The current stock level for a single SKU. The sku is
// fixed at construction; both mutators stamp updatedAt. The entity performs no
// validation, that is the service's job.
type Product struct {
	sku       string
	quantity  int64
	updatedAt time.Time
}

func NewProduct(sku string, quantity int64) *Product {
	return &Product{
		sku:       sku,
		quantity:  quantity,
		updatedAt: time.Now(),
	}
}

// Hydrate rebuilds a product from stored state without touching updatedAt.
func Hydrate(sku string, quantity int64, updatedAt time.Time) *Product {
	return &Product{sku: sku, quantity: quantity, updatedAt: updatedAt}
}

func (p *Product) Sku() string {
	return p.sku
}

func (p *Product) Quantity() int64 {
	return p.quantity
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// SetQuantity replaces the stock level outright.
func (p *Product) SetQuantity(quantity int64) {
	p.quantity = quantity
	p.updatedAt = time.Now()
}

// Adjust applies a signed delta to the stock level.
func (p *Product) Adjust(delta int64) {
	p.quantity += delta
	p.updatedAt = time.Now()
}

// Snapshot is a value object. An immutable view of a product suitable for the
// wire and for the stock update queue.
type Snapshot struct {
	Sku       string    `json:"sku"`
	Quantity  int64     `json:"quantity"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) Snapshot() Snapshot {
	return Snapshot{
		Sku:       p.sku,
		Quantity:  p.quantity,
		UpdatedAt: p.updatedAt,
	}
}

// AdjustmentRequest is a value object. A requested stock adjustment, already
// parsed and type checked by the boundary. Nil pointers mean the field was
// absent from the request body.
type AdjustmentRequest struct {
	Quantity *int64  `json:"quantity"`
	Email    *string `json:"email"`
	OrderID  *string `json:"orderId"`
}

// orderContext reports whether the request carries a complete order context,
// an incomplete one, or none at all.
func (r AdjustmentRequest) orderContext() (fulfillment bool, incomplete bool) {
	if (r.Email == nil) != (r.OrderID == nil) {
		return false, true
	}
	return r.Email != nil, false
}
