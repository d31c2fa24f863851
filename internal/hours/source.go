package hours

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stagevault/internal/errors"
	"stagevault/internal/model"
)

// DefaultFields is the sheet column list requested from every endpoint.
var DefaultFields = []string{
	"Date", "Events", "Start Time", "End Time",
	"Total Hours", "Net Hours", "Status", "Last Update",
}

// Source fetches raw time-record rows for one person and date range. A single
// attempt per call; retry policy, if any, belongs to the caller.
type Source interface {
	Fetch(ctx context.Context, personID string, rng model.DateRange) ([]model.HoursRow, error)
}

// HTTPSource binds each person to a distinct HTTP endpoint at configuration
// time and speaks the spreadsheet-backed JSON contract.
type HTTPSource struct {
	endpoints map[string]string
	client    *http.Client
	timezone  string
	fields    []string
	limit     int
}

// NewHTTPSource creates a source over the configured per-person endpoints.
func NewHTTPSource(endpoints map[string]string, timezone string, limit int) *HTTPSource {
	return &HTTPSource{
		endpoints: endpoints,
		client:    &http.Client{Timeout: 30 * time.Second},
		timezone:  timezone,
		fields:    DefaultFields,
		limit:     limit,
	}
}

// Fetch issues one GET against the person's endpoint. A person with no
// configured endpoint fails fast without a request. Absence of the "data" key
// in the response is an empty result, not an error.
func (s *HTTPSource) Fetch(ctx context.Context, personID string, rng model.DateRange) ([]model.HoursRow, error) {
	base, ok := s.endpoints[personID]
	if !ok || base == "" {
		return nil, errors.NewUnconfigured(personID)
	}

	query := url.Values{}
	query.Set("from", rng.From)
	query.Set("to", rng.To)
	query.Set("tz", s.timezone)
	query.Set("fields", strings.Join(s.fields, ","))
	query.Set("limit", strconv.Itoa(s.limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.NewUpstream(personID, 0, err.Error())
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.NewUpstream(personID, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewUpstream(personID, resp.StatusCode, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewUpstream(personID, 0, err.Error())
	}

	var envelope struct {
		Data []model.HoursRow `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.NewUpstream(personID, 0, "malformed payload: "+err.Error())
	}

	return envelope.Data, nil
}
