package hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"stagevault/internal/errors"
	"stagevault/internal/model"
)

func TestHTTPSourceFetch(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"Date":"2026-03-02","Total Hours":"8.5","Status":"Worked"}]}`))
	}))
	defer server.Close()

	src := NewHTTPSource(map[string]string{"josie": server.URL}, "Asia/Dubai", 500)
	rows, err := src.Fetch(context.Background(), "josie", model.DateRange{From: "2026-03-01", To: "2026-03-31"})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "2026-03-02", rows[0]["Date"])

	assert.Equal(t, "2026-03-01", gotQuery["from"])
	assert.Equal(t, "2026-03-31", gotQuery["to"])
	assert.Equal(t, "Asia/Dubai", gotQuery["tz"])
	assert.Equal(t, "Date,Events,Start Time,End Time,Total Hours,Net Hours,Status,Last Update", gotQuery["fields"])
	assert.Equal(t, "500", gotQuery["limit"])
}

func TestHTTPSourceMissingDataKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"empty"}`))
	}))
	defer server.Close()

	src := NewHTTPSource(map[string]string{"josie": server.URL}, "Asia/Dubai", 500)
	rows, err := src.Fetch(context.Background(), "josie", model.DateRange{From: "2026-03-01", To: "2026-03-31"})

	// Absence of "data" is an empty result, not an error.
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestHTTPSourceUnconfigured(t *testing.T) {
	src := NewHTTPSource(map[string]string{}, "Asia/Dubai", 500)
	_, err := src.Fetch(context.Background(), "jon", model.DateRange{From: "2026-03-01", To: "2026-03-31"})

	var srcErr *errors.SourceError
	assert.ErrorAs(t, err, &srcErr)
	assert.Equal(t, errors.SourceUnconfigured, srcErr.Kind)
	assert.Equal(t, "jon", srcErr.Person)
}

func TestHTTPSourceUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	src := NewHTTPSource(map[string]string{"josie": server.URL}, "Asia/Dubai", 500)
	_, err := src.Fetch(context.Background(), "josie", model.DateRange{From: "2026-03-01", To: "2026-03-31"})

	var srcErr *errors.SourceError
	assert.ErrorAs(t, err, &srcErr)
	assert.Equal(t, errors.SourceUpstream, srcErr.Kind)
	assert.Equal(t, http.StatusBadGateway, srcErr.Status)
	assert.Equal(t, "hours API error 502", err.Error())
}

func TestHTTPSourceMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	src := NewHTTPSource(map[string]string{"josie": server.URL}, "Asia/Dubai", 500)
	_, err := src.Fetch(context.Background(), "josie", model.DateRange{From: "2026-03-01", To: "2026-03-31"})

	var srcErr *errors.SourceError
	assert.ErrorAs(t, err, &srcErr)
	assert.Equal(t, errors.SourceUpstream, srcErr.Kind)
}
