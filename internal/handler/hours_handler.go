package handler

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"stagevault/internal/errors"
	"stagevault/internal/model"
	"stagevault/internal/pages"
	"stagevault/internal/policy"
	"stagevault/internal/service"
)

// HoursHandler handles the hours data endpoints. Access follows the same
// capability rules as the corresponding pages.
type HoursHandler struct {
	hours service.HoursService
	rules *policy.Rules
}

// NewHoursHandler creates a new hours handler.
func NewHoursHandler(hours service.HoursService, rules *policy.Rules) *HoursHandler {
	return &HoursHandler{hours: hours, rules: rules}
}

// HoursQuery bounds an hours request. Dates are inclusive ISO dates.
type HoursQuery struct {
	From string `query:"from" validate:"required,datetime=2006-01-02"`
	To   string `query:"to" validate:"required,datetime=2006-01-02"`
}

// PersonHoursResponse wraps the normalized rows of one person.
type PersonHoursResponse struct {
	PersonID string              `json:"person_id"`
	Range    model.DateRange     `json:"range"`
	Rows     []model.HoursRecord `json:"rows"`
}

var accessDenied = errors.ErrorResponse{Error: "you do not have access to this view", Code: "ACCESS_DENIED"}

// TeamHours godoc
// @Summary Ranked team hours aggregate
// @Description Fetches every roster member's hours concurrently; failed sources appear as zeroed rows with an inline error.
// @Tags hours
// @Produce json
// @Security BearerAuth
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} model.TeamAggregate
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /hours/team [get]
func (h *HoursHandler) TeamHours(c echo.Context) error {
	session, err := sessionFromContext(c)
	if err != nil {
		return err
	}
	if !h.rules.CanAccess(session, pages.HoursTeam) {
		return echo.NewHTTPError(http.StatusForbidden, accessDenied)
	}

	var q HoursQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.hours.TeamHours(c.Request().Context(), model.DateRange{From: q.From, To: q.To})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// PersonHours godoc
// @Summary Normalized hours rows for one person
// @Tags hours
// @Produce json
// @Security BearerAuth
// @Param person path string true "Roster person ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} PersonHoursResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /hours/people/{person} [get]
func (h *HoursHandler) PersonHours(c echo.Context) error {
	session, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	personID := c.Param("person")
	if !h.rules.CanAccess(session, pages.PersonPage(personID)) {
		return echo.NewHTTPError(http.StatusForbidden, accessDenied)
	}

	var q HoursQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rng := model.DateRange{From: q.From, To: q.To}
	rows, err := h.hours.PersonHours(c.Request().Context(), personID, rng)
	if err != nil {
		var srcErr *errors.SourceError
		if stderrors.As(err, &srcErr) {
			return echo.NewHTTPError(http.StatusBadGateway, errors.ErrorResponse{
				Error: srcErr.Error(),
				Code:  "SOURCE_" + strings.ToUpper(string(srcErr.Kind)),
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, PersonHoursResponse{PersonID: personID, Range: rng, Rows: rows})
}

// Roster godoc
// @Summary Configured hours roster
// @Tags hours
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Router /hours/roster [get]
func (h *HoursHandler) Roster(c echo.Context) error {
	session, err := sessionFromContext(c)
	if err != nil {
		return err
	}
	if !h.rules.CanAccess(session, pages.HoursHub) {
		return echo.NewHTTPError(http.StatusForbidden, accessDenied)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"people": h.hours.Roster()})
}
