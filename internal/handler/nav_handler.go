package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stagevault/internal/errors"
	"stagevault/internal/model"
	"stagevault/internal/service"
)

// NavHandler handles navigation and overlay endpoints.
type NavHandler struct {
	nav service.NavigationService
}

// NewNavHandler creates a new navigation handler.
func NewNavHandler(nav service.NavigationService) *NavHandler {
	return &NavHandler{nav: nav}
}

// OpenOverlayRequest represents an overlay open request.
type OpenOverlayRequest struct {
	Kind   string   `json:"kind" validate:"required,oneof=pdf gallery"`
	Title  string   `json:"title"`
	URL    string   `json:"url" validate:"required_if=Kind pdf"`
	Images []string `json:"images" validate:"required_if=Kind gallery"`
}

// Navigate godoc
// @Summary Navigate to a page
// @Description Resolves legacy aliases, evaluates access policy and returns a render decision. A denied page is a normal decision, not an error.
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Param page path string true "Requested page token"
// @Success 200 {object} model.RenderDecision
// @Failure 401 {object} errors.ErrorResponse
// @Router /navigate/{page} [get]
func (h *NavHandler) Navigate(c echo.Context) error {
	session, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	decision := h.nav.Navigate(c.Request().Context(), session, model.PageID(c.Param("page")))
	return c.JSON(http.StatusOK, decision)
}

// OpenOverlay godoc
// @Summary Open a document or gallery overlay
// @Tags navigation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OpenOverlayRequest true "Overlay payload"
// @Success 200 {object} model.RenderDecision
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /overlay/open [post]
func (h *NavHandler) OpenOverlay(c echo.Context) error {
	session, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	var req OpenOverlayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	overlay := &model.Overlay{
		Kind:   model.OverlayKind(req.Kind),
		Title:  req.Title,
		URL:    req.URL,
		Images: req.Images,
	}
	if overlay.Title == "" {
		if overlay.Kind == model.OverlayPDF {
			overlay.Title = "Document"
		} else {
			overlay.Title = "Gallery"
		}
	}

	decision := h.nav.OpenOverlay(c.Request().Context(), session, overlay)
	return c.JSON(http.StatusOK, decision)
}

// CloseOverlay godoc
// @Summary Close the active overlay
// @Description Restores the page that was active immediately before the overlay opened.
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.RenderDecision
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /overlay/close [post]
func (h *NavHandler) CloseOverlay(c echo.Context) error {
	session, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	decision, err := h.nav.CloseOverlay(c.Request().Context(), session)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, decision)
}
