package queue

import (
	"context"

	"github.com/stockd/inventory-service/core/inventory"
	"github.com/stockd/inventory-service/testutil"
)

type MockQueue struct {
	PublishStockUpdateFunc func(ctx context.Context, snapshot inventory.Snapshot) error
	*testutil.CallWatcher
}

func NewMockQueue() *MockQueue {
	return &MockQueue{
		PublishStockUpdateFunc: func(ctx context.Context, snapshot inventory.Snapshot) error {
			return nil
		},
		CallWatcher: testutil.NewCallWatcher(),
	}
}

func (m *MockQueue) PublishStockUpdate(ctx context.Context, snapshot inventory.Snapshot) error {
	m.AddCall(ctx, snapshot)
	return m.PublishStockUpdateFunc(ctx, snapshot)
}
