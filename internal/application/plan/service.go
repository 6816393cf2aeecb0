// Package plan exposes the plan catalog and the per-tenant entitlement view.
package plan

import (
	"context"
	"fmt"

	"tavolo/internal/domain/access"
	"tavolo/internal/domain/subscription"
	apperrors "tavolo/internal/shared/errors"
	"tavolo/internal/shared/logger"
)

// PlanDTO describes one plan tier and the capabilities it grants
type PlanDTO struct {
	Plan         string   `json:"plan"`
	Name         string   `json:"name"`
	Capabilities []string `json:"capabilities"`
}

// UpgradeHintDTO names the cheapest plan granting a capability
type UpgradeHintDTO struct {
	Capability string `json:"capability"`
	Plan       string `json:"plan"`
	PlanName   string `json:"planName"`
}

// EntitlementViewDTO is the tenant's combined entitlement state: the
// subscription, the plan's capability set, and the effective per-capability
// access after the toggle layer is applied on top.
type EntitlementViewDTO struct {
	Plan         string          `json:"plan,omitempty"`
	PlanName     string          `json:"planName,omitempty"`
	Status       string          `json:"status,omitempty"`
	Active       bool            `json:"active"`
	Capabilities []string        `json:"capabilities"`
	Effective    map[string]bool `json:"effective"`
}

// Service exposes plan catalog and entitlement view use cases
type Service struct {
	table         *access.EntitlementTable
	subscriptions access.SubscriptionStore
	toggles       access.ToggleStore
	logger        logger.Interface
}

// NewService creates a new plan service
func NewService(table *access.EntitlementTable, subscriptions access.SubscriptionStore, toggles access.ToggleStore, logger logger.Interface) *Service {
	return &Service{
		table:         table,
		subscriptions: subscriptions,
		toggles:       toggles,
		logger:        logger,
	}
}

// ListPlans returns the plan catalog in ascending tier order
func (s *Service) ListPlans() []*PlanDTO {
	plans := subscription.PlansAscending()
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, plan := range plans {
		dtos = append(dtos, &PlanDTO{
			Plan:         string(plan),
			Name:         plan.DisplayName(),
			Capabilities: capabilityNames(s.table.Capabilities(plan)),
		})
	}
	return dtos
}

// MinimumPlanFor returns the cheapest plan granting the named capability.
// Reserved capabilities that no plan grants yield a not found error.
func (s *Service) MinimumPlanFor(name string) (*UpgradeHintDTO, error) {
	capability := access.Capability(name)
	if !capability.IsValid() {
		return nil, apperrors.NewValidationError("unknown capability", name)
	}

	plan, ok := s.table.MinimumPlanFor(capability)
	if !ok {
		return nil, apperrors.NewNotFoundError("no plan grants this capability", name)
	}

	return &UpgradeHintDTO{
		Capability: string(capability),
		Plan:       string(plan),
		PlanName:   plan.DisplayName(),
	}, nil
}

// GetEntitlements returns the tenant's combined entitlement view. A tenant
// without a subscription gets an inactive view with no granted capabilities.
func (s *Service) GetEntitlements(ctx context.Context, tenantID uint) (*EntitlementViewDTO, error) {
	sub, err := s.subscriptions.LoadSubscription(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	raw, err := s.toggles.LoadToggleDocument(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load toggle document: %w", err)
	}
	resolved := access.ResolveToggles(access.CoerceToggleDocument(raw))

	view := &EntitlementViewDTO{
		Capabilities: []string{},
		Effective:    make(map[string]bool, len(access.AllCapabilities)),
	}

	var granted map[access.Capability]bool
	if sub != nil {
		view.Plan = string(sub.PlanType())
		view.PlanName = sub.PlanType().DisplayName()
		view.Status = string(sub.Status())
		view.Active = sub.IsUsable()
		if view.Active {
			capabilities := s.table.Capabilities(sub.PlanType())
			view.Capabilities = capabilityNames(capabilities)
			granted = make(map[access.Capability]bool, len(capabilities))
			for _, capability := range capabilities {
				granted[capability] = true
			}
		}
	}

	for _, capability := range access.AllCapabilities {
		view.Effective[string(capability)] = resolved[capability] && granted[capability]
	}

	return view, nil
}

func capabilityNames(capabilities []access.Capability) []string {
	names := make([]string, 0, len(capabilities))
	for _, capability := range capabilities {
		names = append(names, string(capability))
	}
	return names
}
