package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stagevault/internal/model"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		requested model.PageID
		expected  model.PageID
	}{
		{"legacy hub alias", "inventory-hub", InventoryHub},
		{"legacy audio alias", "audio-inventory", AudioInventory},
		{"self-mapped alias", "inventory-equipment", InvEquipment},
		{"canonical passes through", Venues, Venues},
		{"unknown passes through", "no-such-page", "no-such-page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.requested))
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	// Resolving twice must equal resolving once, for aliases and canonical
	// tokens alike.
	inputs := append(All(), "inventory-hub", "audio-inventory", "made-up-token")
	for _, p := range inputs {
		once := Resolve(p)
		assert.Equal(t, once, Resolve(once), "resolve not idempotent for %q", p)
	}
}

func TestRegistryCoversAliasTargets(t *testing.T) {
	for alias, canonical := range legacyAliases {
		_, ok := Lookup(canonical)
		assert.True(t, ok, "alias %q points at unregistered page %q", alias, canonical)
	}
}

func TestPersonPage(t *testing.T) {
	assert.Equal(t, model.PageID("hours-josie"), PersonPage("josie"))

	capability, ok := Lookup(PersonPage("tim"))
	assert.True(t, ok)
	assert.Equal(t, model.CapabilityHoursAdmin, capability)
}
