package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/rs/zerolog/log"
	"github.com/stockd/inventory-service/core"
	"github.com/stockd/inventory-service/core/inventory"
)

type ProductService interface {
	CreateProduct(ctx context.Context, sku string, quantity int64) (inventory.Snapshot, error)
	GetProduct(ctx context.Context, sku string) (inventory.Snapshot, error)
	GetAllProducts(ctx context.Context, limit, offset int) ([]inventory.Snapshot, error)
	SetQuantity(ctx context.Context, sku string, quantity int64) (inventory.Snapshot, error)
	AdjustQuantity(ctx context.Context, sku string, request inventory.AdjustmentRequest) (inventory.Outcome, error)

	SubscribeStock(ch chan<- inventory.Snapshot) (id inventory.StockSubscriptionID)
	UnsubscribeStock(id inventory.StockSubscriptionID)
}

type ProductApi struct {
	service ProductService
}

func NewProductApi(service ProductService) *ProductApi {
	return &ProductApi{service: service}
}

func (a *ProductApi) ConfigureRouter(r chi.Router) {
	r.HandleFunc("/subscribe", a.Subscribe)

	r.Route("/", func(r chi.Router) {
		r.With(Paginate).Get("/", a.List)
		r.Post("/", a.Create)

		r.Route("/{sku}", func(r chi.Router) {
			r.Get("/", a.GetBySku)
			r.Put("/", a.SetQuantity)
			r.Patch("/", a.AdjustQuantity)
		})
	})
}

// Subscribe streams real-time stock updates to the client over a
// websocket connection.
//
// Note: this isn't exactly realistic because in the real world, this
// application would need to be able to scale. If it were scaled, clients
// would only get updates that occurred in their connected instance.
func (a *ProductApi) Subscribe(w http.ResponseWriter, r *http.Request) {
	log.Info().Msg("client requesting subscription")

	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		log.Err(err).Msg("failed to establish stock subscription connection")
		Render(w, r, ErrInternalServer)
		return
	}
	go func() {
		defer conn.Close()

		ch := make(chan inventory.Snapshot, 1)

		id := a.service.SubscribeStock(ch)
		defer func() {
			a.service.UnsubscribeStock(id)
		}()

		for snapshot := range ch {
			resp := NewProductResponse(snapshot)
			body, err := json.Marshal(resp)
			if err != nil {
				log.Err(err).Interface("clientId", id).Msg("failed to marshal product response")
				continue
			}

			log.Debug().Interface("clientId", id).Interface("productResponse", resp).Msg("sending stock update to client")
			err = wsutil.WriteServerText(conn, body)
			if err != nil {
				log.Err(err).Interface("clientId", id).Msg("failed to write server message, disconnecting client")
				return
			}
		}
	}()
}

func (a *ProductApi) List(w http.ResponseWriter, r *http.Request) {
	limit := r.Context().Value(CtxKeyLimit).(int)
	offset := r.Context().Value(CtxKeyOffset).(int)

	products, err := a.service.GetAllProducts(r.Context(), limit, offset)
	if err != nil {
		log.Err(err).Send()
		Render(w, r, ErrInternalServer)
		return
	}

	RenderList(w, r, NewProductListResponse(products))
}

func (a *ProductApi) Create(w http.ResponseWriter, r *http.Request) {
	data := &CreateProductRequest{}
	if err := render.Bind(r, data); err != nil {
		Render(w, r, ErrInvalidRequest(createBindMsg(err)))
		return
	}

	var quantity int64
	if data.Quantity != nil {
		quantity = *data.Quantity
	}

	product, err := a.service.CreateProduct(r.Context(), data.Sku, quantity)
	if err != nil {
		if errors.Is(err, core.ErrAlreadyExists) {
			Render(w, r, Msg(http.StatusConflict, "Product with this sku already exists"))
			return
		}
		log.Err(err).Send()
		Render(w, r, ErrInternalServer)
		return
	}

	render.Status(r, http.StatusCreated)
	Render(w, r, NewProductResponse(product))
}

func (a *ProductApi) GetBySku(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	if sku == "" {
		Render(w, r, ErrInvalidRequest("sku parameter is required"))
		return
	}

	product, err := a.service.GetProduct(r.Context(), sku)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			Render(w, r, ErrProductNotFound)
		} else {
			log.Error().Err(err).Str("sku", sku).Msg("error acquiring product")
			Render(w, r, ErrInternalServer)
		}
		return
	}

	Render(w, r, NewProductResponse(product))
}

func (a *ProductApi) SetQuantity(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	if sku == "" {
		Render(w, r, ErrInvalidRequest("sku parameter is required"))
		return
	}

	data := &SetQuantityRequest{}
	if err := render.Bind(r, data); err != nil {
		Render(w, r, ErrInvalidRequest("quantity is required in body and must be a number"))
		return
	}

	product, err := a.service.SetQuantity(r.Context(), sku, *data.Quantity)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			Render(w, r, ErrProductNotFound)
		} else {
			log.Err(err).Send()
			Render(w, r, ErrInternalServer)
		}
		return
	}

	Render(w, r, NewProductResponse(product))
}

func (a *ProductApi) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	if sku == "" {
		Render(w, r, ErrInvalidRequest("sku parameter is required"))
		return
	}

	data := &AdjustQuantityRequest{}
	if err := render.Bind(r, data); err != nil {
		Render(w, r, ErrInvalidRequest(adjustBindMsg(err)))
		return
	}

	outcome, err := a.service.AdjustQuantity(r.Context(), sku, data.AdjustmentRequest)
	if err != nil {
		log.Err(err).Str("sku", sku).Msg("error adjusting quantity")
		Render(w, r, ErrInternalServer)
		return
	}

	Render(w, r, renderOutcome(outcome))
}

// renderOutcome maps every adjustment outcome to its response. The
// statuses and messages here are load-bearing; clients match on them.
func renderOutcome(outcome inventory.Outcome) render.Renderer {
	switch o := outcome.(type) {
	case inventory.Updated:
		return NewProductResponse(o.Product)
	case inventory.OrderFulfilled:
		return Msg(http.StatusOK, fmt.Sprintf("Order %s processed for %s and email sent", o.OrderID, o.Email))
	case inventory.InvalidDelta:
		return Msg(http.StatusBadRequest, "quantity is required in body and must be a number")
	case inventory.ZeroDelta:
		return Msg(http.StatusBadRequest, "quantity must be a non-zero number in body")
	case inventory.NotFound:
		return ErrProductNotFound
	case inventory.IncompleteOrderContext:
		return Msg(http.StatusBadRequest, "Both email and orderId must be provided for order updates")
	case inventory.PositiveDeltaNotAllowedForOrder:
		return Msg(http.StatusBadRequest, "If quantity is positive, email and orderId should not be provided")
	case inventory.InsufficientStock:
		return Msg(http.StatusBadRequest, fmt.Sprintf("Insufficient stock to fulfill order %s for %s", o.OrderID, o.Email))
	case inventory.NotificationFailed:
		return Msg(http.StatusBadGateway, fmt.Sprintf("Order %s could not be completed because email failed", o.OrderID))
	default:
		log.Error().Interface("outcome", outcome).Msg("unhandled adjustment outcome")
		return ErrInternalServer
	}
}

func createBindMsg(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return "quantity must be a number if provided in body"
	}
	return err.Error()
}

func adjustBindMsg(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "email":
			return "email must be a string if provided in body"
		case "orderId":
			return "orderId must be a string if provided in body"
		}
	}
	return "quantity is required in body and must be a number"
}
