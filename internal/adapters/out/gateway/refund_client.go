// Package gateway contains HTTP clients for external payment services.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fulfillment/internal/pkg/errs"
)

const serviceName = "payment gateway"

// refundRequest is the wire format of a refund instruction.
type refundRequest struct {
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
}

// RefundClient issues refund instructions to the payment gateway over HTTP.
// Implements the ports.PaymentGateway interface.
type RefundClient struct {
	baseURL string
	client  *http.Client
}

// NewRefundClient creates a refund client for the gateway at baseURL.
// The timeout bounds every request issued by the client.
func NewRefundClient(baseURL string, timeout time.Duration) (*RefundClient, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &RefundClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Refund asks the gateway to return the captured amount for the given payment.
// The call is synchronous: a nil return means the gateway accepted the refund.
func (c *RefundClient) Refund(ctx context.Context, paymentID string, amount int64) error {
	if paymentID == "" {
		return errs.NewValueIsRequiredError("paymentID")
	}

	body, err := json.Marshal(refundRequest{PaymentID: paymentID, Amount: amount})
	if err != nil {
		return errs.NewExternalServiceErrorWithCause(serviceName, err)
	}

	url := fmt.Sprintf("%s/api/refunds", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errs.NewExternalServiceErrorWithCause(serviceName, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.NewExternalServiceErrorWithCause(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errs.NewExternalServiceErrorWithCause(serviceName,
			fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	return nil
}
