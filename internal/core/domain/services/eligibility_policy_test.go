package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestEligibilityPolicy_Eligible(t *testing.T) {
	policy := services.NewEligibilityPolicy(
		services.DefaultFirstOrderDelay, services.DefaultRepeatOrderDelay)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		age           time.Duration
		priorAssigned int64
		want          bool
	}{
		{"first-time customer before short window", 2 * time.Minute, 0, false},
		{"first-time customer at short window", 3 * time.Minute, 0, true},
		{"first-time customer past short window", 10 * time.Minute, 0, true},
		{"repeat customer before long window", 10 * time.Minute, 3, false},
		{"repeat customer at long window", 15 * time.Minute, 3, true},
		{"repeat customer past long window", 16 * time.Minute, 1, true},
		{"repeat customer still inside short window", 2 * time.Minute, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			createdAt := now.Add(-tt.age)
			assert.Equal(t, tt.want, policy.Eligible(createdAt, tt.priorAssigned, now))
		})
	}
}

func TestNewEligibilityPolicy_Defaults(t *testing.T) {
	t.Run("non-positive windows fall back to defaults", func(t *testing.T) {
		policy := services.NewEligibilityPolicy(0, -time.Minute)
		now := time.Now()

		assert.True(t, policy.Eligible(now.Add(-services.DefaultFirstOrderDelay), 0, now))
		assert.False(t, policy.Eligible(now.Add(-services.DefaultFirstOrderDelay), 1, now))
		assert.True(t, policy.Eligible(now.Add(-services.DefaultRepeatOrderDelay), 1, now))
	})

	t.Run("custom windows are honored", func(t *testing.T) {
		policy := services.NewEligibilityPolicy(time.Minute, 5*time.Minute)
		now := time.Now()

		assert.True(t, policy.Eligible(now.Add(-2*time.Minute), 0, now))
		assert.False(t, policy.Eligible(now.Add(-2*time.Minute), 4, now))
		assert.True(t, policy.Eligible(now.Add(-5*time.Minute), 4, now))
	})
}
