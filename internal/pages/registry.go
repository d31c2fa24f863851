package pages

import "stagevault/internal/model"

// Canonical page tokens.
const (
	Home            model.PageID = "home"
	InventoryHub    model.PageID = "inventory"
	InventoryStage  model.PageID = "inventory-stage"
	AudioInventory  model.PageID = "audio"
	VideoInventory  model.PageID = "inventory-video"
	InvEquipment    model.PageID = "inventory-equipment"
	InvInUse        model.PageID = "inventory-inuse"
	ShowSpecs       model.PageID = "showList"
	Venues          model.PageID = "venues"
	Suppliers       model.PageID = "suppliers"
	UsefulDocs      model.PageID = "usefulDocs"
	RiggingCalc     model.PageID = "rigCalc"
	Schedule        model.PageID = "schedule"
	HowToCAD        model.PageID = "how-to-cad"
	SpacesUsage     model.PageID = "spaces-usage"
	PurchaseOrders  model.PageID = "purchaseorders"
	StatusHub       model.PageID = "productionstatus"
	StatusStage     model.PageID = "productionstatus-stage"
	StatusAudio     model.PageID = "productionstatus-audio"
	HoursHub        model.PageID = "hours"
	HoursTeam       model.PageID = "hours-team"
	PDFOverlay      model.PageID = "pdf"
	GalleryOverlay  model.PageID = "gallery"
	hoursPersonStem              = "hours-"
)

// registry maps every canonical page to its access capability. A single
// table rather than per-page conditionals, so a new page cannot silently miss
// its access rule.
var registry = map[model.PageID]model.Capability{
	Home:           model.CapabilityStandard,
	InventoryHub:   model.CapabilityStandard,
	InventoryStage: model.CapabilityStandard,
	AudioInventory: model.CapabilityStandard,
	VideoInventory: model.CapabilityStandard,
	InvEquipment:   model.CapabilityStandard,
	InvInUse:       model.CapabilityStandard,
	ShowSpecs:      model.CapabilityStandard,
	Venues:         model.CapabilityGuestAllowed,
	Suppliers:      model.CapabilityStandard,
	UsefulDocs:     model.CapabilityStandard,
	RiggingCalc:    model.CapabilityStandard,
	Schedule:       model.CapabilityStandard,
	HowToCAD:       model.CapabilityStandard,
	SpacesUsage:    model.CapabilityStandard,
	PurchaseOrders: model.CapabilityRestricted,
	StatusHub:      model.CapabilityStandard,
	StatusStage:    model.CapabilityStandard,
	StatusAudio:    model.CapabilityStandard,

	// Overlays ride on top of the venues page and share its guest access.
	PDFOverlay:     model.CapabilityGuestAllowed,
	GalleryOverlay: model.CapabilityGuestAllowed,

	// The hub and the two named individual views are open to limited users;
	// the team view and every other individual view are admin only.
	HoursHub:        model.CapabilityHoursLimited,
	"hours-josie":   model.CapabilityHoursLimited,
	"hours-gareth":  model.CapabilityHoursLimited,
	HoursTeam:       model.CapabilityHoursAdmin,
	"hours-tim":     model.CapabilityHoursAdmin,
	"hours-liriana": model.CapabilityHoursAdmin,
	"hours-sabr":    model.CapabilityHoursAdmin,
	"hours-jon":     model.CapabilityHoursAdmin,
	"hours-roger":   model.CapabilityHoursAdmin,
	"hours-philip":  model.CapabilityHoursAdmin,
	"hours-subin":   model.CapabilityHoursAdmin,
	"hours-estelle": model.CapabilityHoursAdmin,
}

// Lookup returns the capability of a canonical page. The second return value
// is false for unregistered tokens.
func Lookup(page model.PageID) (model.Capability, bool) {
	cap, ok := registry[page]
	return cap, ok
}

// PersonPage returns the individual hours page for a roster member.
func PersonPage(personID string) model.PageID {
	return model.PageID(hoursPersonStem + personID)
}

// All returns every registered canonical page, for tests and tooling.
func All() []model.PageID {
	ids := make([]model.PageID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}
