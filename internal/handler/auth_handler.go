package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stagevault/internal/errors"
	"stagevault/internal/model"
	"stagevault/internal/service"
)

// AuthHandler handles login, logout and session restore endpoints.
type AuthHandler struct {
	identity service.IdentityService
	nav      service.NavigationService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(identity service.IdentityService, nav service.NavigationService) *AuthHandler {
	return &AuthHandler{identity: identity, nav: nav}
}

// LoginRequest represents a login request. Password is only consulted for
// password-gated identifiers.
type LoginRequest struct {
	NetID    string `json:"net_id" validate:"required"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	Session     *model.Session `json:"session"`
}

// SessionResponse wraps a restored session.
type SessionResponse struct {
	Session *model.Session `json:"session"`
}

// Login godoc
// @Summary Log in with a Net ID
// @Description Type "guest" for venue-only access. Some identifiers require a password.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login data"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, token, err := h.identity.Login(c.Request().Context(), req.NetID, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	h.nav.Reset(session)

	return c.JSON(http.StatusOK, LoginResponse{AccessToken: token, Session: session})
}

// Logout godoc
// @Summary Log out and clear the stored session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	if err := h.identity.Logout(c.Request().Context(), session.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	h.nav.Clear(session.UserID)

	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Session godoc
// @Summary Restore the persisted session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	restored, err := h.identity.Restore(c.Request().Context(), session.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if restored == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "no active session",
			Code:  "NO_SESSION",
		})
	}

	return c.JSON(http.StatusOK, SessionResponse{Session: restored})
}
