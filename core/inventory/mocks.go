package inventory

import "context"

type MockInventoryService struct {
	CreateProductFunc    func(ctx context.Context, sku string, quantity int64) (Snapshot, error)
	GetProductFunc       func(ctx context.Context, sku string) (Snapshot, error)
	GetAllProductsFunc   func(ctx context.Context, limit, offset int) ([]Snapshot, error)
	SetQuantityFunc      func(ctx context.Context, sku string, quantity int64) (Snapshot, error)
	AdjustQuantityFunc   func(ctx context.Context, sku string, request AdjustmentRequest) (Outcome, error)
	SubscribeStockFunc   func(ch chan<- Snapshot) (id StockSubscriptionID)
	UnsubscribeStockFunc func(id StockSubscriptionID)
}

func NewMockInventoryService() MockInventoryService {
	return MockInventoryService{
		CreateProductFunc: func(ctx context.Context, sku string, quantity int64) (Snapshot, error) {
			return Snapshot{Sku: sku, Quantity: quantity}, nil
		},
		GetProductFunc: func(ctx context.Context, sku string) (Snapshot, error) { return Snapshot{}, nil },
		GetAllProductsFunc: func(ctx context.Context, limit, offset int) ([]Snapshot, error) {
			return []Snapshot{}, nil
		},
		SetQuantityFunc: func(ctx context.Context, sku string, quantity int64) (Snapshot, error) {
			return Snapshot{Sku: sku, Quantity: quantity}, nil
		},
		AdjustQuantityFunc: func(ctx context.Context, sku string, request AdjustmentRequest) (Outcome, error) {
			return Updated{}, nil
		},
		SubscribeStockFunc:   func(ch chan<- Snapshot) (id StockSubscriptionID) { return "" },
		UnsubscribeStockFunc: func(id StockSubscriptionID) {},
	}
}

func (m *MockInventoryService) CreateProduct(ctx context.Context, sku string, quantity int64) (Snapshot, error) {
	return m.CreateProductFunc(ctx, sku, quantity)
}

func (m *MockInventoryService) GetProduct(ctx context.Context, sku string) (Snapshot, error) {
	return m.GetProductFunc(ctx, sku)
}

func (m *MockInventoryService) GetAllProducts(ctx context.Context, limit, offset int) ([]Snapshot, error) {
	return m.GetAllProductsFunc(ctx, limit, offset)
}

func (m *MockInventoryService) SetQuantity(ctx context.Context, sku string, quantity int64) (Snapshot, error) {
	return m.SetQuantityFunc(ctx, sku, quantity)
}

func (m *MockInventoryService) AdjustQuantity(ctx context.Context, sku string, request AdjustmentRequest) (Outcome, error) {
	return m.AdjustQuantityFunc(ctx, sku, request)
}

func (m *MockInventoryService) SubscribeStock(ch chan<- Snapshot) (id StockSubscriptionID) {
	return m.SubscribeStockFunc(ch)
}

func (m *MockInventoryService) UnsubscribeStock(id StockSubscriptionID) {
	m.UnsubscribeStockFunc(id)
}
