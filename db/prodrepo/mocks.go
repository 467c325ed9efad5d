package prodrepo

import (
	"context"

	"github.com/stockd/inventory-service/core"
	"github.com/stockd/inventory-service/core/inventory"
	"github.com/stockd/inventory-service/db"
	"github.com/stockd/inventory-service/testutil"
)

type MockRepo struct {
	GetProductFunc       func(ctx context.Context, sku string, options ...core.QueryOptions) (*inventory.Product, error)
	GetAllProductsFunc   func(ctx context.Context, limit, offset int, options ...core.QueryOptions) ([]*inventory.Product, error)
	CreateProductFunc    func(ctx context.Context, product *inventory.Product, options ...core.UpdateOptions) error
	SaveProductFunc      func(ctx context.Context, product *inventory.Product, options ...core.UpdateOptions) error
	BeginTransactionFunc func(ctx context.Context) (core.Transaction, error)
	*testutil.CallWatcher
}

func NewMockRepo() *MockRepo {
	return &MockRepo{
		GetProductFunc: func(ctx context.Context, sku string, options ...core.QueryOptions) (*inventory.Product, error) {
			return nil, core.ErrNotFound
		},
		GetAllProductsFunc: func(ctx context.Context, limit, offset int, options ...core.QueryOptions) ([]*inventory.Product, error) {
			return []*inventory.Product{}, nil
		},
		CreateProductFunc: func(ctx context.Context, product *inventory.Product, options ...core.UpdateOptions) error {
			return nil
		},
		SaveProductFunc: func(ctx context.Context, product *inventory.Product, options ...core.UpdateOptions) error {
			return nil
		},
		BeginTransactionFunc: func(ctx context.Context) (core.Transaction, error) {
			return db.NewMockTransaction(), nil
		},
		CallWatcher: testutil.NewCallWatcher(),
	}
}

func (r *MockRepo) GetProduct(ctx context.Context, sku string, options ...core.QueryOptions) (*inventory.Product, error) {
	r.AddCall(ctx, sku, options)
	return r.GetProductFunc(ctx, sku, options...)
}

func (r *MockRepo) GetAllProducts(ctx context.Context, limit, offset int, options ...core.QueryOptions) ([]*inventory.Product, error) {
	r.AddCall(ctx, limit, offset, options)
	return r.GetAllProductsFunc(ctx, limit, offset, options...)
}

func (r *MockRepo) CreateProduct(ctx context.Context, product *inventory.Product, options ...core.UpdateOptions) error {
	r.AddCall(ctx, product, options)
	return r.CreateProductFunc(ctx, product, options...)
}

func (r *MockRepo) SaveProduct(ctx context.Context, product *inventory.Product, options ...core.UpdateOptions) error {
	r.AddCall(ctx, product, options)
	return r.SaveProductFunc(ctx, product, options...)
}

func (r *MockRepo) BeginTransaction(ctx context.Context) (core.Transaction, error) {
	r.AddCall(ctx)
	return r.BeginTransactionFunc(ctx)
}
