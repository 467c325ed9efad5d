// Package queue publishes stock level changes to RabbitMQ so downstream
// systems (reporting, storefront caches) can follow along.
package queue

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sksmith/bunnyq"
	"github.com/stockd/inventory-service/core"
	"github.com/stockd/inventory-service/core/inventory"
	"github.com/streadway/amqp"
)

type stockQueue struct {
	queue         *bunnyq.BunnyQ
	stockExchange string
}

func New(bq *bunnyq.BunnyQ, stockExchange string) inventory.Queue {
	return &stockQueue{queue: bq, stockExchange: stockExchange}
}

func (q *stockQueue) PublishStockUpdate(ctx context.Context, snapshot inventory.Snapshot) error {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return errors.WithMessage(err, "failed to serialize stock update for queue")
	}
	if err = q.queue.Publish(ctx, q.stockExchange, body); err != nil {
		return errors.WithMessage(err, "failed to send stock update to queue")
	}
	return nil
}

// ProductQueue consumes product creation events coming from an upstream
// product management system. Messages that cannot be read or handled are
// written to the dead letter exchange.
type ProductQueue struct {
	queue              *bunnyq.BunnyQ
	newProductQueue    string
	newProductDltExchg string
}

func NewProductQueue(bq *bunnyq.BunnyQ, newProductQueue, newProductDltExchange string) *ProductQueue {
	return &ProductQueue{queue: bq, newProductQueue: newProductQueue, newProductDltExchg: newProductDltExchange}
}

type ProductHandler interface {
	CreateProduct(ctx context.Context, sku string, quantity int64) (inventory.Snapshot, error)
}

type newProductEvent struct {
	Sku      string `json:"sku"`
	Quantity int64  `json:"quantity"`
}

func (p *ProductQueue) ConsumeProducts(ctx context.Context, handler ProductHandler) {
	p.queue.Stream(ctx, p.newProductQueue, func(delivery amqp.Delivery) {
		event := newProductEvent{}
		if err := json.Unmarshal(delivery.Body, &event); err != nil {
			log.Error().Err(err).Msg("error unmarshalling product event, writing to dlt")
			p.sendToDlt(ctx, delivery.Body)
			return
		}

		if _, err := handler.CreateProduct(ctx, event.Sku, event.Quantity); err != nil {
			if errors.Is(err, core.ErrAlreadyExists) {
				log.Debug().Str("sku", event.Sku).Msg("product already exists, skipping event")
				return
			}
			log.Error().Err(err).Msg("error handling product event, writing to dlt")
			p.sendToDlt(ctx, delivery.Body)
		}
	}, bunnyq.StreamOpAutoAck)
}

func (p *ProductQueue) sendToDlt(ctx context.Context, data []byte) {
	if err := p.queue.Publish(ctx, p.newProductDltExchg, data); err != nil {
		log.Error().Err(err).Msg("error writing to dlt")
	}
}
