package email

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/stockd/inventory-service/testutil"
)

// MockNotifier doubles as the placeholder mode: it logs the notice and
// reports success, which keeps local environments working without a real
// email service.
type MockNotifier struct {
	SendShippingNoticeFunc func(ctx context.Context, email, orderID, trackingNumber string) error
	*testutil.CallWatcher
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{
		SendShippingNoticeFunc: func(ctx context.Context, email, orderID, trackingNumber string) error {
			log.Info().
				Str("email", email).
				Str("orderId", orderID).
				Str("trackingNumber", trackingNumber).
				Msg("email service in placeholder mode, pretending email was sent")
			return nil
		},
		CallWatcher: testutil.NewCallWatcher(),
	}
}

func (m *MockNotifier) SendShippingNotice(ctx context.Context, email, orderID, trackingNumber string) error {
	m.AddCall(ctx, email, orderID, trackingNumber)
	return m.SendShippingNoticeFunc(ctx, email, orderID, trackingNumber)
}
