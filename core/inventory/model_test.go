package inventory_test

import (
	"testing"
	"time"

	"github.com/stockd/inventory-service/core/inventory"
)

func TestProductMutations(t *testing.T) {
	tests := []struct {
		name string

		start   int64
		mutate  func(p *inventory.Product)
		wantQty int64
	}{
		{
			name:    "set replaces quantity",
			start:   10,
			mutate:  func(p *inventory.Product) { p.SetQuantity(3) },
			wantQty: 3,
		},
		{
			name:    "positive adjustment increments",
			start:   10,
			mutate:  func(p *inventory.Product) { p.Adjust(5) },
			wantQty: 15,
		},
		{
			name:    "negative adjustment decrements",
			start:   10,
			mutate:  func(p *inventory.Product) { p.Adjust(-4) },
			wantQty: 6,
		},
		{
			name:    "adjustment below zero is permitted",
			start:   10,
			mutate:  func(p *inventory.Product) { p.Adjust(-15) },
			wantQty: -5,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			product := inventory.NewProduct("somesku", test.start)
			before := product.UpdatedAt()

			time.Sleep(time.Millisecond)
			test.mutate(product)

			if product.Quantity() != test.wantQty {
				t.Errorf("quantity got=%d want=%d", product.Quantity(), test.wantQty)
			}
			if !product.UpdatedAt().After(before) {
				t.Errorf("updatedAt was not stamped, got=%v before=%v", product.UpdatedAt(), before)
			}
		})
	}
}

func TestHydrateDoesNotStamp(t *testing.T) {
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	product := inventory.Hydrate("somesku", 7, updated)

	if product.Sku() != "somesku" {
		t.Errorf("sku got=%s want=somesku", product.Sku())
	}
	if product.Quantity() != 7 {
		t.Errorf("quantity got=%d want=7", product.Quantity())
	}
	if !product.UpdatedAt().Equal(updated) {
		t.Errorf("updatedAt got=%v want=%v", product.UpdatedAt(), updated)
	}
}

func TestSnapshot(t *testing.T) {
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	product := inventory.Hydrate("somesku", 7, updated)

	snapshot := product.Snapshot()

	want := inventory.Snapshot{Sku: "somesku", Quantity: 7, UpdatedAt: updated}
	if snapshot != want {
		t.Errorf("snapshot\n got=%+v\nwant=%+v", snapshot, want)
	}
}
