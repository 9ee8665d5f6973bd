// controllers/membership_test.go
package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionPlanEnd(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		plan string
		end  time.Time
	}{
		{"1-month", time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)},
		{"3-months", time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)},
		{"6-months", time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)},
		{"1-year", time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"something-else", time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.plan, func(t *testing.T) {
			end := subscriptionPlanEnd(tt.plan, start)
			require.NotNil(t, end)
			assert.Equal(t, tt.end, *end)
		})
	}
}

func TestSubscriptionPlanEnd_Lifetime(t *testing.T) {
	assert.Nil(t, subscriptionPlanEnd("lifetime", time.Now()))
}
