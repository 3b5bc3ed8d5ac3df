package services

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// flat10Percent is the discount percentage of the shipped FLAT10 coupon.
const flat10Percent = 10

// ErrUnknownCoupon is returned when a coupon code has no rule in the table.
func errUnknownCoupon(code string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"coupon code",
		fmt.Errorf("%q is not a known coupon", code),
	)
}

// CouponRule computes the discount a coupon grants on a given subtotal.
// Rules are stateless; amounts are in minor currency units.
type CouponRule interface {
	Discount(subtotal int64) int64
}

// PercentageRule discounts a fixed percentage of the subtotal,
// rounded down to whole minor units.
type PercentageRule struct {
	Percent int64
}

// Discount returns percent of the subtotal.
func (r PercentageRule) Discount(subtotal int64) int64 {
	return subtotal * r.Percent / 100
}

// CouponEvaluator resolves coupon codes to discounts via a pluggable rule
// table. The order-creation flow only consumes the resulting discount; new
// rule kinds (fixed amount, expiry, minimum subtotal) slot in without
// touching order logic.
type CouponEvaluator struct {
	rules map[string]CouponRule
}

// NewCouponEvaluator creates an evaluator with the shipped rule table:
// FLAT10 grants a 10% discount.
func NewCouponEvaluator() CouponEvaluator {
	return CouponEvaluator{
		rules: map[string]CouponRule{
			"FLAT10": PercentageRule{Percent: flat10Percent},
		},
	}
}

// WithRule returns a copy of the evaluator with an extra rule registered.
func (e CouponEvaluator) WithRule(code string, rule CouponRule) CouponEvaluator {
	rules := make(map[string]CouponRule, len(e.rules)+1)
	for c, r := range e.rules {
		rules[c] = r
	}
	rules[code] = rule
	return CouponEvaluator{rules: rules}
}

// Evaluate resolves a coupon code against a subtotal.
//
// An empty code is valid and grants no discount. Unknown codes are rejected
// with a ValueIsInvalidError.
func (e CouponEvaluator) Evaluate(code string, subtotal int64) (int64, error) {
	if code == "" {
		return 0, nil
	}

	rule, ok := e.rules[code]
	if !ok {
		return 0, errUnknownCoupon(code)
	}

	return rule.Discount(subtotal), nil
}
