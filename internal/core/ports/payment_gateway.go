package ports

import (
	"context"
)

// PaymentGateway is the outbound contract to the external payment provider.
// Only the refund operation crosses this boundary; capture happens on the
// provider side and reaches us as a signed confirmation callback.
type PaymentGateway interface {
	// Refund instructs the provider to return the captured amount for the
	// given payment. Amount is in minor currency units. A provider failure
	// surfaces as an ExternalServiceError.
	Refund(ctx context.Context, paymentID string, amount int64) error
}
