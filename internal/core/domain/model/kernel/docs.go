// Package kernel provides shared value objects used across the fulfillment
// domain model. It currently contains the UUID identifier wrapper that all
// aggregates use for identity.
package kernel
