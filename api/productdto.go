package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/stockd/inventory-service/core/inventory"
)

type ProductResponse struct {
	inventory.Snapshot
}

func NewProductResponse(product inventory.Snapshot) *ProductResponse {
	resp := &ProductResponse{Snapshot: product}
	return resp
}

func (rd *ProductResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

func NewProductListResponse(products []inventory.Snapshot) []render.Renderer {
	list := make([]render.Renderer, 0)
	for _, product := range products {
		list = append(list, NewProductResponse(product))
	}
	return list
}

var ErrSkuRequired = errors.New("sku is required in body")

type CreateProductRequest struct {
	Sku      string `json:"sku"`
	Quantity *int64 `json:"quantity"`
}

func (p *CreateProductRequest) Bind(_ *http.Request) error {
	if p.Sku == "" {
		return ErrSkuRequired
	}

	return nil
}

type SetQuantityRequest struct {
	Quantity *int64 `json:"quantity"`
}

func (p *SetQuantityRequest) Bind(_ *http.Request) error {
	// Zero is treated the same as absent, quirky as that looks. Clients
	// have come to rely on a quantity of 0 being rejected here.
	if p.Quantity == nil || *p.Quantity == 0 {
		return errors.New("quantity is required in body and must be a number")
	}

	return nil
}

type AdjustQuantityRequest struct {
	inventory.AdjustmentRequest
}

func (p *AdjustQuantityRequest) Bind(_ *http.Request) error {
	return nil
}
