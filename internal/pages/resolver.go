package pages

import "stagevault/internal/model"

// legacyAliases rewrites deprecated page tokens to their canonical form.
// Values are always canonical, which keeps Resolve idempotent.
var legacyAliases = map[model.PageID]model.PageID{
	"inventory-hub":       InventoryHub,
	"inventory-equipment": InvEquipment,
	"inventory-inuse":     InvInUse,
	"audio-inventory":     AudioInventory,
}

// Resolve maps a requested page token to its canonical form. Unmapped tokens
// pass through unchanged. Every policy check and render dispatch goes through
// Resolve first; raw tokens are never compared against rules.
func Resolve(requested model.PageID) model.PageID {
	if canonical, ok := legacyAliases[requested]; ok {
		return canonical
	}
	return requested
}
