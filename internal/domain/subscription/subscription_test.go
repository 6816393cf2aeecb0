package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscription_ValidInput(t *testing.T) {
	sub, err := NewSubscription(42, PlanProfessional, StatusActive)

	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, uint(42), sub.RestaurantID())
	assert.Equal(t, PlanProfessional, sub.PlanType())
	assert.Equal(t, StatusActive, sub.Status())
	assert.True(t, sub.IsUsable())
}

func TestNewSubscription_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		restaurantID uint
		planType     PlanType
		status       Status
		wantErr      string
	}{
		{"zero restaurant", 0, PlanStarter, StatusActive, "restaurant ID is required"},
		{"bad plan", 42, PlanType("premium"), StatusActive, "invalid plan type"},
		{"bad status", 42, PlanStarter, Status("paused"), "invalid subscription status"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sub, err := NewSubscription(tc.restaurantID, tc.planType, tc.status)
			require.Error(t, err)
			assert.Nil(t, sub)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestReconstructSubscription(t *testing.T) {
	now := time.Now()

	sub, err := ReconstructSubscription(5, 42, PlanEnterprise, StatusCanceled, now, now)

	require.NoError(t, err)
	assert.Equal(t, uint(5), sub.ID())
	assert.Equal(t, StatusCanceled, sub.Status())
	assert.False(t, sub.IsUsable())
}

func TestReconstructSubscription_ZeroID(t *testing.T) {
	now := time.Now()

	_, err := ReconstructSubscription(0, 42, PlanStarter, StatusActive, now, now)

	assert.Error(t, err)
}

func TestSubscription_SetID(t *testing.T) {
	sub, err := NewSubscription(42, PlanStarter, StatusTrialing)
	require.NoError(t, err)

	require.NoError(t, sub.SetID(10))
	assert.Equal(t, uint(10), sub.ID())

	assert.Error(t, sub.SetID(11), "ID must be immutable once set")
	assert.Error(t, sub.SetID(0))
}

func TestStatus_CanUseService(t *testing.T) {
	assert.True(t, StatusActive.CanUseService())
	assert.True(t, StatusTrialing.CanUseService())
	assert.False(t, StatusPastDue.CanUseService())
	assert.False(t, StatusCanceled.CanUseService())
	assert.False(t, StatusExpired.CanUseService())
}
