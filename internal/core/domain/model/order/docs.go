// Package order provides domain entities and business logic for order
// management in the fulfillment engine. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root managing identity, checkout snapshot and lifecycle
//   - Status: A state machine enforcing valid order status transitions
//   - Item, Recipient: Immutable checkout snapshot value objects
//
// Key business rules:
//   - Orders carry a fixed line-item snapshot; total == subtotal - discount
//   - Lifecycle: pending -> confirmed -> out_for_delivery -> delivered, with
//     cancelled and refunded as terminal side exits
//   - A courier reference only exists on orders out for delivery or delivered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
