package services

import (
	"time"
)

const (
	// DefaultFirstOrderDelay is the eligibility window for a customer whose
	// orders never completed the assignment pipeline before. First-time
	// customers are fast-tracked.
	DefaultFirstOrderDelay = 3 * time.Minute

	// DefaultRepeatOrderDelay is the eligibility window for returning
	// customers, throttled to spread courier load.
	DefaultRepeatOrderDelay = 15 * time.Minute
)

// EligibilityPolicy decides when a confirmed order becomes eligible for
// courier assignment. The delay is tiered by customer history: customers
// with no previously assigned orders wait the short first-order window,
// everyone else waits the longer repeat window.
type EligibilityPolicy struct {
	firstOrderDelay  time.Duration
	repeatOrderDelay time.Duration
}

// NewEligibilityPolicy creates a policy with the given tier windows.
// Non-positive durations fall back to the defaults.
func NewEligibilityPolicy(firstOrderDelay, repeatOrderDelay time.Duration) EligibilityPolicy {
	if firstOrderDelay <= 0 {
		firstOrderDelay = DefaultFirstOrderDelay
	}
	if repeatOrderDelay <= 0 {
		repeatOrderDelay = DefaultRepeatOrderDelay
	}

	return EligibilityPolicy{
		firstOrderDelay:  firstOrderDelay,
		repeatOrderDelay: repeatOrderDelay,
	}
}

// Eligible reports whether an order created at createdAt may be assigned at
// now, given how many of the customer's prior orders already went through
// assignment.
func (p EligibilityPolicy) Eligible(createdAt time.Time, priorAssigned int64, now time.Time) bool {
	threshold := p.repeatOrderDelay
	if priorAssigned == 0 {
		threshold = p.firstOrderDelay
	}

	return now.Sub(createdAt) >= threshold
}
