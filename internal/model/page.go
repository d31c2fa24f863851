package model

// PageID is an opaque token naming a destination view.
type PageID string

// Capability tags a page with the access rule category it belongs to.
type Capability int

const (
	// CapabilityStandard pages require any authenticated non-guest session.
	CapabilityStandard Capability = iota
	// CapabilityGuestAllowed pages are viewable by guests as well.
	CapabilityGuestAllowed
	// CapabilityRestricted pages require membership in the restricted set.
	CapabilityRestricted
	// CapabilityHoursLimited pages require hours-admin or hours-limited membership.
	CapabilityHoursLimited
	// CapabilityHoursAdmin pages require hours-admin membership.
	CapabilityHoursAdmin
)

// OverlayKind identifies the type of an open overlay.
type OverlayKind string

const (
	OverlayPDF     OverlayKind = "pdf"
	OverlayGallery OverlayKind = "gallery"
)

// Overlay carries the payload of the single active overlay, if any.
type Overlay struct {
	Kind   OverlayKind `json:"kind"`
	Title  string      `json:"title"`
	URL    string      `json:"url,omitempty"`
	Images []string    `json:"images,omitempty"`
}

// RenderDecision is the outcome of a navigation request, handed to the
// rendering layer as-is.
type RenderDecision struct {
	Kind    string   `json:"kind"` // "page", "denied" or "overlay"
	Page    PageID   `json:"page,omitempty"`
	Reason  string   `json:"reason,omitempty"`
	Overlay *Overlay `json:"overlay,omitempty"`
}

// ShowPage builds a decision to render the given canonical page.
func ShowPage(page PageID) RenderDecision {
	return RenderDecision{Kind: "page", Page: page}
}

// ShowDenied builds a decision to render an access-denied placeholder.
// Denial is a normal outcome, not an error.
func ShowDenied(reason string) RenderDecision {
	return RenderDecision{Kind: "denied", Reason: reason}
}

// ShowOverlay builds a decision to render an overlay on top of the current page.
func ShowOverlay(o *Overlay) RenderDecision {
	return RenderDecision{Kind: "overlay", Overlay: o}
}
