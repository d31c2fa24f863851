package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stagevault/internal/config"
	"stagevault/internal/errors"
	"stagevault/internal/model"
	"stagevault/internal/pages"
	"stagevault/internal/policy"
)

func testNavRules() *policy.Rules {
	return policy.NewRules(config.Access{
		Approved:     []string{"cp2532", "gr73", "js9640", "eg129"},
		Restricted:   []string{"cp2532", "js9640", "gr73"},
		HoursAdmin:   []string{"js9640"},
		HoursLimited: []string{"cp2532", "gr73"},
	})
}

func fullSession(id string) *model.Session {
	return &model.Session{UserID: id, Role: model.RoleFull}
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name         string
		session      *model.Session
		requested    model.PageID
		expectedKind string
		expectedPage model.PageID
	}{
		{"standard page renders", fullSession("eg129"), pages.Schedule, "page", pages.Schedule},
		{"legacy alias renders canonical page", fullSession("eg129"), "inventory-hub", "page", pages.InventoryHub},
		{"restricted page denied for plain user", fullSession("eg129"), pages.PurchaseOrders, "denied", ""},
		{"hours denied for plain user", fullSession("eg129"), pages.HoursHub, "denied", ""},
		{"team hours renders for admin", fullSession("js9640"), pages.HoursTeam, "page", pages.HoursTeam},
		{"guest denied on home", &model.Session{UserID: "guest", Role: model.RoleGuest}, pages.Home, "denied", ""},
		{"guest renders venues", &model.Session{UserID: "guest", Role: model.RoleGuest}, pages.Venues, "page", pages.Venues},
		{"unknown page denied", fullSession("eg129"), "no-such-page", "denied", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audit := new(MockAuditRepository)
			audit.On("Record", mock.Anything, mock.Anything, model.AuditNavDenied, mock.Anything).Return(nil).Maybe()

			nav := NewNavigationService(testNavRules(), audit)
			nav.Reset(tt.session)

			decision := nav.Navigate(context.Background(), tt.session, tt.requested)
			assert.Equal(t, tt.expectedKind, decision.Kind)
			assert.Equal(t, tt.expectedPage, decision.Page)
			if tt.expectedKind == "denied" {
				assert.NotEmpty(t, decision.Reason)
			}
		})
	}
}

func TestNavigateDenialDoesNotMovePage(t *testing.T) {
	nav := NewNavigationService(testNavRules(), nil)
	session := fullSession("eg129")
	nav.Reset(session)

	nav.Navigate(context.Background(), session, pages.Venues)
	nav.Navigate(context.Background(), session, pages.PurchaseOrders)

	// After the denial the overlay return slot must still capture venues.
	nav.OpenOverlay(context.Background(), session, &model.Overlay{Kind: model.OverlayPDF, Title: "Map", URL: "https://example.com/map.pdf"})
	decision, err := nav.CloseOverlay(context.Background(), session)
	assert.NoError(t, err)
	assert.Equal(t, pages.Venues, decision.Page)
}

func TestOverlayRestoresExactPage(t *testing.T) {
	nav := NewNavigationService(testNavRules(), nil)
	session := fullSession("cp2532")
	nav.Reset(session)

	nav.Navigate(context.Background(), session, pages.Venues)

	overlay := &model.Overlay{Kind: model.OverlayGallery, Title: "Black Box", Images: []string{"a.jpg", "b.jpg"}}
	decision := nav.OpenOverlay(context.Background(), session, overlay)
	assert.Equal(t, "overlay", decision.Kind)
	assert.Equal(t, overlay, decision.Overlay)

	decision, err := nav.CloseOverlay(context.Background(), session)
	assert.NoError(t, err)
	assert.Equal(t, "page", decision.Kind)
	assert.Equal(t, pages.Venues, decision.Page)
}

func TestOverlayReplaceKeepsOriginalReturnPage(t *testing.T) {
	// Opening a second overlay while one is up replaces it; the return slot
	// still holds the page that was active before the first one opened.
	nav := NewNavigationService(testNavRules(), nil)
	session := fullSession("cp2532")
	nav.Reset(session)

	nav.Navigate(context.Background(), session, pages.Venues)
	nav.OpenOverlay(context.Background(), session, &model.Overlay{Kind: model.OverlayPDF, Title: "Specs", URL: "https://example.com/specs.pdf"})
	nav.OpenOverlay(context.Background(), session, &model.Overlay{Kind: model.OverlayGallery, Title: "Photos", Images: []string{"x.jpg"}})

	decision, err := nav.CloseOverlay(context.Background(), session)
	assert.NoError(t, err)
	assert.Equal(t, pages.Venues, decision.Page)
}

func TestCloseOverlayWithoutOpen(t *testing.T) {
	nav := NewNavigationService(testNavRules(), nil)
	session := fullSession("cp2532")
	nav.Reset(session)

	_, err := nav.CloseOverlay(context.Background(), session)
	assert.ErrorIs(t, err, errors.ErrNoOverlay)
}

func TestResetLandingPages(t *testing.T) {
	nav := NewNavigationService(testNavRules(), nil)

	guest := &model.Session{UserID: "guest", Role: model.RoleGuest}
	nav.Reset(guest)
	nav.OpenOverlay(context.Background(), guest, &model.Overlay{Kind: model.OverlayPDF, Title: "Map", URL: "https://example.com/m.pdf"})
	decision, err := nav.CloseOverlay(context.Background(), guest)
	assert.NoError(t, err)
	assert.Equal(t, pages.Venues, decision.Page, "guest lands on venues")

	full := fullSession("cp2532")
	nav.Reset(full)
	nav.OpenOverlay(context.Background(), full, &model.Overlay{Kind: model.OverlayPDF, Title: "Map", URL: "https://example.com/m.pdf"})
	decision, err = nav.CloseOverlay(context.Background(), full)
	assert.NoError(t, err)
	assert.Equal(t, pages.Home, decision.Page, "full user lands on home")
}
