// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CourierDispatcher: pairs eligible orders with available couriers
//   - EligibilityPolicy: tiered delay before an order may be assigned
//   - PaymentVerifier: HMAC validation of gateway payment confirmations
//   - CouponEvaluator: rule-table resolution of coupon codes to discounts
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
