package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/stockd/inventory-service/core"
)

type Service interface {
	CreateProduct(ctx context.Context, sku string, quantity int64) (Snapshot, error)

	GetProduct(ctx context.Context, sku string) (Snapshot, error)
	GetAllProducts(ctx context.Context, limit, offset int) ([]Snapshot, error)

	SetQuantity(ctx context.Context, sku string, quantity int64) (Snapshot, error)
	AdjustQuantity(ctx context.Context, sku string, request AdjustmentRequest) (Outcome, error)

	SubscribeStock(ch chan<- Snapshot) (id StockSubscriptionID)
	UnsubscribeStock(id StockSubscriptionID)
}

// Repository is the product store. It owns sku uniqueness and, through
// transactions with ForUpdate, arbitration of concurrent access to a sku.
type Repository interface {
	GetProduct(ctx context.Context, sku string, options ...core.QueryOptions) (*Product, error)
	GetAllProducts(ctx context.Context, limit, offset int, options ...core.QueryOptions) ([]*Product, error)
	CreateProduct(ctx context.Context, product *Product, options ...core.UpdateOptions) error
	SaveProduct(ctx context.Context, product *Product, options ...core.UpdateOptions) error
	BeginTransaction(ctx context.Context) (core.Transaction, error)
}

// Notifier is the notification gateway. Delivery either succeeds or fails;
// a failure must surface, never be swallowed.
type Notifier interface {
	SendShippingNotice(ctx context.Context, email, orderID, trackingNumber string) error
}

// Queue broadcasts stock level changes to interested downstream systems.
type Queue interface {
	PublishStockUpdate(ctx context.Context, snapshot Snapshot) error
}

type StockSubscriptionID string

func NewService(repo Repository, notifier Notifier, q Queue) *service {
	return &service{
		repo:      repo,
		notifier:  notifier,
		queue:     q,
		stockSubs: make(map[StockSubscriptionID]chan<- Snapshot),
	}
}

type service struct {
	repo     Repository
	notifier Notifier
	queue    Queue

	subMu     sync.RWMutex
	stockSubs map[StockSubscriptionID]chan<- Snapshot
}

func (s *service) CreateProduct(ctx context.Context, sku string, quantity int64) (Snapshot, error) {
	const funcName = "CreateProduct"

	log.Info().
		Str("func", funcName).
		Str("sku", sku).
		Int64("quantity", quantity).
		Msg("creating product")

	existing, err := s.repo.GetProduct(ctx, sku)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return Snapshot{}, errors.WithStack(err)
	}

	if existing != nil {
		log.Debug().
			Str("func", funcName).
			Str("sku", sku).
			Msg("product already exists")
		return Snapshot{}, errors.WithStack(core.ErrAlreadyExists)
	}

	product := NewProduct(sku, quantity)
	if err = s.repo.CreateProduct(ctx, product); err != nil {
		return Snapshot{}, errors.WithStack(err)
	}

	snapshot := product.Snapshot()
	s.publishStockUpdate(ctx, snapshot)

	return snapshot, nil
}

func (s *service) GetProduct(ctx context.Context, sku string) (Snapshot, error) {
	const funcName = "GetProduct"

	log.Info().
		Str("func", funcName).
		Str("sku", sku).
		Msg("getting product")

	product, err := s.repo.GetProduct(ctx, sku)
	if err != nil {
		return Snapshot{}, errors.WithStack(err)
	}
	return product.Snapshot(), nil
}

func (s *service) GetAllProducts(ctx context.Context, limit, offset int) ([]Snapshot, error) {
	products, err := s.repo.GetAllProducts(ctx, limit, offset)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	snapshots := make([]Snapshot, 0, len(products))
	for _, product := range products {
		snapshots = append(snapshots, product.Snapshot())
	}
	return snapshots, nil
}

func (s *service) SetQuantity(ctx context.Context, sku string, quantity int64) (Snapshot, error) {
	const funcName = "SetQuantity"

	log.Info().
		Str("func", funcName).
		Str("sku", sku).
		Int64("quantity", quantity).
		Msg("setting product quantity")

	tx, err := s.repo.BeginTransaction(ctx)
	if err != nil {
		return Snapshot{}, errors.WithStack(err)
	}

	product, err := s.repo.GetProduct(ctx, sku, core.QueryOptions{Tx: tx, ForUpdate: true})
	if err != nil {
		rollback(ctx, tx, err)
		return Snapshot{}, errors.WithStack(err)
	}

	product.SetQuantity(quantity)

	if err = s.repo.SaveProduct(ctx, product, core.UpdateOptions{Tx: tx}); err != nil {
		rollback(ctx, tx, err)
		return Snapshot{}, errors.WithStack(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return Snapshot{}, errors.WithStack(err)
	}

	snapshot := product.Snapshot()
	s.publishStockUpdate(ctx, snapshot)

	return snapshot, nil
}

// AdjustQuantity loads the product under a row lock and runs the adjustment
// decision against it. The transaction commits only when the decision
// produced a mutation; every rejection leaves the row untouched.
func (s *service) AdjustQuantity(ctx context.Context, sku string, request AdjustmentRequest) (Outcome, error) {
	const funcName = "AdjustQuantity"

	log.Info().
		Str("func", funcName).
		Str("sku", sku).
		Msg("adjusting product quantity")

	tx, err := s.repo.BeginTransaction(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	product, err := s.repo.GetProduct(ctx, sku, core.QueryOptions{Tx: tx, ForUpdate: true})
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		rollback(ctx, tx, err)
		return nil, errors.WithStack(err)
	}

	outcome, err := s.applyAdjustment(ctx, tx, product, request)
	if err != nil {
		rollback(ctx, tx, err)
		return nil, err
	}

	switch outcome.(type) {
	case Updated, OrderFulfilled:
		if err = tx.Commit(ctx); err != nil {
			return nil, errors.WithStack(err)
		}
		s.publishStockUpdate(ctx, product.Snapshot())
	default:
		rollback(ctx, tx, nil)
	}

	return outcome, nil
}

// applyAdjustment is the adjustment decision. The checks run in a fixed
// order, first failure wins; product is nil when the sku does not exist. A
// returned error means infrastructure trouble, every business rejection is an
// Outcome.
func (s *service) applyAdjustment(ctx context.Context, tx core.Transaction, product *Product, request AdjustmentRequest) (Outcome, error) {
	const funcName = "applyAdjustment"

	if request.Quantity == nil {
		return InvalidDelta{}, nil
	}
	delta := *request.Quantity

	if delta == 0 {
		return ZeroDelta{}, nil
	}

	if product == nil {
		return NotFound{}, nil
	}

	fulfillment, incomplete := request.orderContext()
	if incomplete {
		return IncompleteOrderContext{}, nil
	}

	if fulfillment && delta > 0 {
		return PositiveDeltaNotAllowedForOrder{}, nil
	}

	if !fulfillment {
		product.Adjust(delta)
		if err := s.repo.SaveProduct(ctx, product, core.UpdateOptions{Tx: tx}); err != nil {
			return nil, errors.WithStack(err)
		}
		return Updated{Product: product.Snapshot()}, nil
	}

	email := *request.Email
	orderID := *request.OrderID

	if product.Quantity()+delta < 0 {
		log.Debug().
			Str("func", funcName).
			Str("sku", product.Sku()).
			Str("orderId", orderID).
			Int64("quantity", product.Quantity()).
			Int64("delta", delta).
			Msg("insufficient stock for order")
		return InsufficientStock{OrderID: orderID, Email: email}, nil
	}

	trackingNumber := uuid.NewString()
	if err := s.notifier.SendShippingNotice(ctx, email, orderID, trackingNumber); err != nil {
		log.Error().
			Err(err).
			Str("func", funcName).
			Str("sku", product.Sku()).
			Str("orderId", orderID).
			Msg("shipping notice failed, abandoning adjustment")
		return NotificationFailed{OrderID: orderID}, nil
	}

	product.Adjust(delta)
	if err := s.repo.SaveProduct(ctx, product, core.UpdateOptions{Tx: tx}); err != nil {
		return nil, errors.WithStack(err)
	}

	log.Info().
		Str("func", funcName).
		Str("sku", product.Sku()).
		Str("orderId", orderID).
		Str("trackingNumber", trackingNumber).
		Msg("order fulfilled")

	return OrderFulfilled{OrderID: orderID, Email: email}, nil
}

func (s *service) SubscribeStock(ch chan<- Snapshot) (id StockSubscriptionID) {
	id = StockSubscriptionID(uuid.NewString())
	s.subMu.Lock()
	s.stockSubs[id] = ch
	s.subMu.Unlock()
	log.Debug().Interface("clientId", id).Msg("subscribing to stock updates")
	return id
}

func (s *service) UnsubscribeStock(id StockSubscriptionID) {
	log.Debug().Interface("clientId", id).Msg("unsubscribing from stock updates")
	s.subMu.Lock()
	if ch, ok := s.stockSubs[id]; ok {
		close(ch)
		delete(s.stockSubs, id)
	}
	s.subMu.Unlock()
}

// publishStockUpdate runs after a successful commit. A broken broker must not
// fail a mutation that is already durable, so publish errors are only logged.
func (s *service) publishStockUpdate(ctx context.Context, snapshot Snapshot) {
	if err := s.queue.PublishStockUpdate(ctx, snapshot); err != nil {
		log.Error().Err(err).Str("sku", snapshot.Sku).Msg("failed to publish stock update")
	}
	go s.notifyStockSubscribers(snapshot)
}

func (s *service) notifyStockSubscribers(snapshot Snapshot) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()
	for id, ch := range s.stockSubs {
		log.Debug().Interface("clientId", id).Interface("snapshot", snapshot).Msg("notifying subscriber of stock update")
		ch <- snapshot
	}
}

func rollback(ctx context.Context, tx core.Transaction, err error) {
	if rbErr := tx.Rollback(ctx); rbErr != nil {
		log.Warn().Err(rbErr).Interface("causedBy", err).Msg("failed to rollback")
	}
}
