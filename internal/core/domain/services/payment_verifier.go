package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"fulfillment/internal/pkg/errs"
)

// ErrSignatureMismatch is returned when a gateway payment signature does not
// match the expected HMAC digest.
var ErrSignatureMismatch = errs.NewValueIsInvalidErrorWithCause(
	"signature",
	errors.New("payment signature does not match"),
)

// PaymentVerifier validates payment confirmations coming back from the
// external payment gateway.
//
// The gateway signs the pair of identifiers it issued by computing
// HMAC-SHA256 over "<gatewayOrderID>|<gatewayPaymentID>" with a shared
// secret. Verify recomputes the digest locally and compares it to the
// supplied signature in constant time, so timing never reveals how close a
// forged signature was.
type PaymentVerifier struct {
	secret []byte
}

// NewPaymentVerifier creates a verifier holding the shared gateway secret.
func NewPaymentVerifier(secret string) (PaymentVerifier, error) {
	if secret == "" {
		return PaymentVerifier{}, errs.NewValueIsRequiredError("gateway secret")
	}

	return PaymentVerifier{secret: []byte(secret)}, nil
}

// Verify checks the signature for the given gateway identifiers.
// Returns ErrSignatureMismatch on any mismatch; no distinction is made
// between near and far misses.
func (v PaymentVerifier) Verify(gatewayOrderID, gatewayPaymentID, signature string) error {
	if gatewayOrderID == "" {
		return errs.NewValueIsRequiredError("gateway order id")
	}
	if gatewayPaymentID == "" {
		return errs.NewValueIsRequiredError("gateway payment id")
	}
	if signature == "" {
		return errs.NewValueIsRequiredError("signature")
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}

	return nil
}
