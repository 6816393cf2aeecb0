package access

import (
	"context"
	"encoding/json"
	"testing"

	"tavolo/internal/domain/subscription"
	"tavolo/internal/shared/logger"
)

// --- test doubles for the store collaborators ---

type stubToggleStore struct {
	docs  map[uint][]byte
	err   error
	calls int
}

func (s *stubToggleStore) LoadToggleDocument(_ context.Context, tenantID uint) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.docs[tenantID], nil
}

type stubSubscriptionStore struct {
	subs  map[uint]*subscription.Subscription
	err   error
	calls int
}

func (s *stubSubscriptionStore) LoadSubscription(_ context.Context, tenantID uint) (*subscription.Subscription, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.subs[tenantID], nil
}

type stubDirectory struct {
	reservationTenants map[uint]uint
	slugTenants        map[string]uint
	err                error
}

func (s *stubDirectory) TenantIDByReservation(_ context.Context, reservationID uint) (uint, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.reservationTenants[reservationID], nil
}

func (s *stubDirectory) TenantIDBySlug(_ context.Context, slug string) (uint, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.slugTenants[slug], nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func mustSubscription(t *testing.T, restaurantID uint, plan subscription.PlanType, status subscription.Status) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription(restaurantID, plan, status)
	if err != nil {
		t.Fatalf("building subscription fixture: %v", err)
	}
	return sub
}

func toggleJSON(t *testing.T, doc map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshaling toggle fixture: %v", err)
	}
	return raw
}
