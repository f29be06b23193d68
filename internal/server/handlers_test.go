package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parking-facility/internal/parking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	telemetry, err := parking.NewTelemetryProvider()
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := telemetry.Shutdown(context.Background()); err != nil {
			t.Errorf("Failed to shutdown telemetry: %v", err)
		}
	})

	facility, err := parking.NewInstrumentedFacility(telemetry)
	require.NoError(t, err)

	return NewServer("8080", facility).httpServer.Handler
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return w, resp
}

func TestHealthCheck(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRegisterOwnerEndpoint(t *testing.T) {
	h := newTestServer(t)

	w, resp := doJSON(t, h, http.MethodPost, "/api/facility/owners",
		`{"id":"1094911111","name":"Laura Gomez"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	// Duplicate id conflicts
	w, resp = doJSON(t, h, http.MethodPost, "/api/facility/owners",
		`{"id":"1094911111","name":"Someone Else"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, resp.Success)

	w, _ = doJSON(t, h, http.MethodGet, "/api/facility/owners/1094911111", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, h, http.MethodGet, "/api/facility/owners/0000000000", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterVehicleEndpoint(t *testing.T) {
	h := newTestServer(t)

	doJSON(t, h, http.MethodPost, "/api/facility/owners",
		`{"id":"1094911111","name":"Laura Gomez"}`)

	w, _ := doJSON(t, h, http.MethodPost, "/api/facility/vehicles",
		`{"plate":"ABC123","model_year":2019,"color":"White","owner_id":"1094911111","category":"SEDAN"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown owner
	w, _ = doJSON(t, h, http.MethodPost, "/api/facility/vehicles",
		`{"plate":"XYZ789","model_year":2020,"color":"Black","owner_id":"0000000000","category":"SUV"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Bad category
	w, _ = doJSON(t, h, http.MethodPost, "/api/facility/vehicles",
		`{"plate":"XYZ789","model_year":2020,"color":"Black","owner_id":"1094911111","category":"BOAT"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate plate
	w, _ = doJSON(t, h, http.MethodPost, "/api/facility/vehicles",
		`{"plate":"ABC123","model_year":2021,"color":"Red","owner_id":"1094911111","category":"SUV"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterServiceEndpoint(t *testing.T) {
	h := newTestServer(t)

	doJSON(t, h, http.MethodPost, "/api/facility/owners",
		`{"id":"1094911111","name":"Laura Gomez"}`)
	doJSON(t, h, http.MethodPost, "/api/facility/vehicles",
		`{"plate":"ABC123","model_year":2019,"color":"White","owner_id":"1094911111","category":"SUV"}`)

	w, resp := doJSON(t, h, http.MethodPost, "/api/facility/services",
		`{"plate":"ABC123","entry_hour":8,"exit_hour":11}`)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7500), data["cost"])
	assert.Equal(t, float64(3), data["hours"])

	// Hour validation failures map to 400
	w, _ = doJSON(t, h, http.MethodPost, "/api/facility/services",
		`{"plate":"ABC123","entry_hour":0,"exit_hour":11}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, h, http.MethodPost, "/api/facility/services",
		`{"plate":"ABC123","entry_hour":8,"exit_hour":24}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, h, http.MethodPost, "/api/facility/services",
		`{"plate":"ABC123","entry_hour":8,"exit_hour":8}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown plate maps to 404
	w, _ = doJSON(t, h, http.MethodPost, "/api/facility/services",
		`{"plate":"ZZZ999","entry_hour":8,"exit_hour":11}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	h := newTestServer(t)

	doJSON(t, h, http.MethodPost, "/api/facility/owners",
		`{"id":"1094911111","name":"Laura Gomez"}`)
	doJSON(t, h, http.MethodPost, "/api/facility/vehicles",
		`{"plate":"ABC123","model_year":2019,"color":"White","owner_id":"1094911111","category":"SEDAN"}`)
	doJSON(t, h, http.MethodPost, "/api/facility/services",
		`{"plate":"ABC123","entry_hour":8,"exit_hour":10}`)

	w, resp := doJSON(t, h, http.MethodGet, "/api/facility/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats StatsResponse
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &stats))

	assert.Equal(t, 1, stats.Owners)
	assert.Equal(t, 1, stats.Vehicles)
	assert.Equal(t, 1, stats.Services)
	assert.Equal(t, float64(3000), stats.TotalRevenue)
	assert.Equal(t, 0, stats.VIPOwners)
	require.NotNil(t, stats.TopOwner)
	assert.Equal(t, "1094911111", stats.TopOwner.ID)
	assert.Equal(t, 2, stats.TopOwner.AccumulatedHours)
}

func TestAccumulateHoursEndpoint(t *testing.T) {
	h := newTestServer(t)

	doJSON(t, h, http.MethodPost, "/api/facility/owners",
		`{"id":"1094911111","name":"Laura Gomez"}`)

	w, resp := doJSON(t, h, http.MethodPost, "/api/facility/owners/1094911111/hours",
		`{"hours":25}`)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(25), data["accumulated_hours"])
	assert.Equal(t, true, data["vip"])

	w, _ = doJSON(t, h, http.MethodPost, "/api/facility/owners/0000000000/hours",
		`{"hours":5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
