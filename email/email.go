// Package email talks to the external email service that sends shipping
// notifications for fulfilled orders. Only the success or failure of a send
// matters to callers; retries and templating live on the email service side.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	url    string
	apiKey string
	client *http.Client
}

func NewClient(url, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

type shippingNotice struct {
	Email          string `json:"email"`
	OrderID        string `json:"orderId"`
	TrackingNumber string `json:"trackingNumber"`
}

func (c *Client) SendShippingNotice(ctx context.Context, email, orderID, trackingNumber string) error {
	const funcName = "SendShippingNotice"

	body, err := json.Marshal(shippingNotice{
		Email:          email,
		OrderID:        orderID,
		TrackingNumber: trackingNumber,
	})
	if err != nil {
		return errors.WithMessage(err, "failed to serialize shipping notice")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/shipping", bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.WithMessage(err, "failed to reach email service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("email service responded with status %d", resp.StatusCode)
	}

	log.Debug().
		Str("func", funcName).
		Str("orderId", orderID).
		Str("trackingNumber", trackingNumber).
		Msg("shipping notice sent")

	return nil
}
