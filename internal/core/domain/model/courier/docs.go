// Package courier provides the Courier (delivery partner) aggregate for the
// fulfillment engine.
//
// A courier can carry at most one active order at a time. The availability
// flag and the current-order back-reference are maintained as a single unit:
// taking an order marks the courier busy with a back-reference, releasing it
// makes the courier available again with no reference. Manual availability
// overrides go through the same methods so the pairing can never drift.
package courier
