package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katiapek/CompoundingSimulator/internal/config"
	"github.com/katiapek/CompoundingSimulator/internal/simulation"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(config.Load()).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postSimulate(t *testing.T, ts *httptest.Server, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(ts.URL+"/api/simulate", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// TestHandleSimulate_OK tests a valid run through the HTTP boundary
func TestHandleSimulate_OK(t *testing.T) {
	ts := testServer(t)

	resp := postSimulate(t, ts, simulation.Parameters{
		StartingBalance: 1000,
		RiskPerTrade:    0.01,
		WinRate:         0.5,
		WinPayoffRatio:  2,
		TradesPerPeriod: 10,
		PeriodsPerCycle: 1,
		Cycles:          1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc simulateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))

	assert.NotEmpty(t, doc.RunID)
	assert.InDelta(t, 0.5, doc.Statistics.Expectancy, 1e-12)
	assert.InDelta(t, 0.25, doc.Statistics.KellyFraction, 1e-12)
	require.Len(t, doc.Points, 11)
	for i := 1; i < len(doc.Points); i++ {
		assert.Equal(t, i, doc.Points[i].StepIndex, "steps are strictly increasing")
	}
	assert.InDelta(t, 1050.0, doc.EndBalance, 1e-9)
}

// TestHandleSimulate_InvalidInput tests the 400 mapping for domain violations
func TestHandleSimulate_InvalidInput(t *testing.T) {
	ts := testServer(t)

	resp := postSimulate(t, ts, simulation.Parameters{
		StartingBalance: 1000,
		RiskPerTrade:    0.01,
		WinRate:         1.5,
		WinPayoffRatio:  2,
		TradesPerPeriod: 10,
		PeriodsPerCycle: 1,
		Cycles:          1,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var doc errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "VALIDATION", doc.Category)
	assert.Contains(t, doc.Error, "win rate")
}

// TestHandleSimulate_Overflow tests the 422 mapping for non-finite balances
func TestHandleSimulate_Overflow(t *testing.T) {
	ts := testServer(t)

	resp := postSimulate(t, ts, simulation.Parameters{
		StartingBalance: 1e300,
		RiskPerTrade:    1.0,
		WinRate:         1.0,
		WinPayoffRatio:  20,
		TradesPerPeriod: 100,
		PeriodsPerCycle: 200,
		Cycles:          50,
		RiskAdjust:      simulation.PerPeriod,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var doc errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "OVERFLOW", doc.Category)
}

// TestHandleSimulate_MalformedBody tests rejection of non-JSON payloads
func TestHandleSimulate_MalformedBody(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+"/api/simulate", "application/json", bytes.NewReader([]byte("{oops")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestHealthAndIndex tests the health check and the embedded UI page
func TestHealthAndIndex(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	page, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer page.Body.Close()
	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Contains(t, page.Header.Get("Content-Type"), "text/html")
}
