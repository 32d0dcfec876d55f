package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPerformanceMetricsRecord(t *testing.T) {
	pm := newPerformanceMetrics()
	pm.Record("/api/fill", 10*time.Millisecond)
	pm.Record("/api/fill", 30*time.Millisecond)
	pm.Record("/api/fill", 20*time.Millisecond)

	snap := pm.Snapshot()
	if snap.TotalRequests != 3 {
		t.Errorf("TotalRequests = %d, want 3", snap.TotalRequests)
	}
	if snap.AvgDurationMs != 20 {
		t.Errorf("AvgDurationMs = %d, want 20", snap.AvgDurationMs)
	}

	stats, ok := snap.Endpoints["/api/fill"]
	if !ok {
		t.Fatal("no stats recorded for /api/fill")
	}
	if stats.Count != 3 || stats.MinMs != 10 || stats.MaxMs != 30 || stats.AvgMs != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.P95Ms != 30 {
		t.Errorf("P95Ms = %d, want 30", stats.P95Ms)
	}
}

func TestPerformanceMetricsWindow(t *testing.T) {
	// One slow outlier followed by a full window of fast requests: the
	// outlier ages out of the P95 estimate but stays in min/max.
	pm := newPerformanceMetrics()
	pm.Record("/api/fill", time.Second)
	for i := 0; i < recentWindow; i++ {
		pm.Record("/api/fill", time.Millisecond)
	}

	stats := pm.Snapshot().Endpoints["/api/fill"]
	if stats.MaxMs != 1000 {
		t.Errorf("MaxMs = %d, want 1000", stats.MaxMs)
	}
	if stats.P95Ms != 1 {
		t.Errorf("P95Ms = %d, want 1", stats.P95Ms)
	}
}

func TestResponseTimeHeader(t *testing.T) {
	router := newTestRouter(t, "AB")
	w := doJSON(router, http.MethodGet, "/health", nil)
	if w.Header().Get("X-Response-Time") == "" {
		t.Error("no X-Response-Time header")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, "AB", "CD", "AC", "BD")

	if w := doJSON(router, http.MethodGet, "/api/metrics", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("GET /api/metrics without token = %d, want 401", w.Code)
	}

	// Generate some traffic, then read the stats back with a token.
	doJSON(router, http.MethodPost, "/api/fill", FillRequest{Grid: "    "})

	w := doJSON(router, http.MethodPost, "/api/auth/token", TokenRequest{Password: "hunter2"})
	var tokenResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &tokenResp); err != nil || tokenResp.Token == "" {
		t.Fatalf("no token in response: %s", w.Body)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+tokenResp.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/metrics = %d", rec.Code)
	}

	var snap MetricsSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("bad metrics body: %v", err)
	}
	if snap.TotalRequests < 2 {
		t.Errorf("TotalRequests = %d, want at least 2", snap.TotalRequests)
	}
	if _, ok := snap.Endpoints["/api/fill"]; !ok {
		t.Errorf("no /api/fill stats in %v", snap.Endpoints)
	}
}
