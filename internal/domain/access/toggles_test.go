package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultToggles_CoversEveryCapability(t *testing.T) {
	defaults := DefaultToggles()

	require.Len(t, defaults, len(AllCapabilities))
	for _, capability := range AllCapabilities {
		_, ok := defaults[capability]
		assert.True(t, ok, "capability %s missing from defaults", capability)
	}
}

func TestDefaultToggles_ReturnsCopy(t *testing.T) {
	first := DefaultToggles()
	first[CapabilityMenu] = false

	second := DefaultToggles()
	assert.True(t, second[CapabilityMenu])
}

func TestCoerceToggleDocument_NilAndEmpty(t *testing.T) {
	assert.Empty(t, CoerceToggleDocument(nil))
	assert.Empty(t, CoerceToggleDocument([]byte{}))
}

func TestCoerceToggleDocument_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated json", `{"menu": tr`},
		{"array instead of object", `["menu"]`},
		{"scalar", `42`},
		{"plain text", `not json at all`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := CoerceToggleDocument([]byte(tc.raw))
			assert.Empty(t, doc, "malformed input must degrade to no overrides")
		})
	}
}

func TestCoerceToggleDocument_DropsUnknownAndNonBoolean(t *testing.T) {
	raw := toggleJSON(t, map[string]any{
		"menu":         false,
		"reservations": true,
		"unknownKey":   true,
		"orders":       "yes",
		"delivery":     1,
	})

	doc := CoerceToggleDocument(raw)

	require.Len(t, doc, 2)
	assert.Equal(t, false, doc[CapabilityMenu])
	assert.Equal(t, true, doc[CapabilityReservations])
}

func TestResolveToggles_EmptyOverridesYieldDefaults(t *testing.T) {
	resolved := ResolveToggles(ToggleDocument{})

	assert.Equal(t, DefaultToggles(), resolved)
	assert.False(t, resolved[CapabilityReservations])
	assert.True(t, resolved[CapabilityMenu])
}

func TestResolveToggles_OverridesWin(t *testing.T) {
	resolved := ResolveToggles(ToggleDocument{
		CapabilityReservations: true,
		CapabilityMenu:         false,
	})

	assert.True(t, resolved[CapabilityReservations])
	assert.False(t, resolved[CapabilityMenu])
}

// The single documented invariant of the toggle layer: orders=false forces
// onlineOrdering, delivery and takeaway to false regardless of stored values.
func TestResolveToggles_OrdersCascade(t *testing.T) {
	dependents := []Capability{CapabilityOnlineOrdering, CapabilityDelivery, CapabilityTakeaway}

	// Every stored combination of the dependents must be forced off.
	for mask := 0; mask < 8; mask++ {
		overrides := ToggleDocument{CapabilityOrders: false}
		for i, dep := range dependents {
			overrides[dep] = mask&(1<<i) != 0
		}

		resolved := ResolveToggles(overrides)
		for _, dep := range dependents {
			assert.False(t, resolved[dep],
				"orders=false must force %s=false (stored mask %d)", dep, mask)
		}
	}
}

func TestResolveToggles_OrdersEnabledLeavesDependentsAlone(t *testing.T) {
	resolved := ResolveToggles(ToggleDocument{
		CapabilityOrders:         true,
		CapabilityDelivery:       true,
		CapabilityOnlineOrdering: false,
	})

	assert.True(t, resolved[CapabilityDelivery])
	assert.False(t, resolved[CapabilityOnlineOrdering])
	assert.True(t, resolved[CapabilityTakeaway]) // default
}

func TestResolveToggles_CascadeAppliesToDefaultedOrders(t *testing.T) {
	// orders defaults to true; an explicit false in the document alone must
	// trigger the cascade even with no other overrides present.
	resolved := ResolveToggles(CoerceToggleDocument(toggleJSON(t, map[string]any{
		"orders": false,
	})))

	assert.False(t, resolved[CapabilityOnlineOrdering])
	assert.False(t, resolved[CapabilityDelivery])
	assert.False(t, resolved[CapabilityTakeaway])
}
