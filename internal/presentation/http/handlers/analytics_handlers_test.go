package handlers_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/StoreScope/storescope-go/internal/application/container"
	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/manager"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/presentation/http/routes"
	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		ChannelLevels:   make(map[logging.Channel]slog.Level),
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}

	ctn := container.NewContainer(manager.NewManager(), nil, logger)
	router, err := routes.SetupRoutes(ctn)
	if err != nil {
		t.Fatalf("failed to set up routes: %v", err)
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFunnelEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/analytics/funnel")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var body struct {
		Funnel struct {
			UniqueViewers       int     `json:"uniqueViewers"`
			CartAbandonmentRate float64 `json:"cartAbandonmentRate"`
		} `json:"funnel"`
		FilteredEvents int `json:"filteredEvents"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.FilteredEvents == 0 {
		t.Error("identity filter over generated dataset returned no events")
	}
	if body.Funnel.UniqueViewers == 0 {
		t.Error("generated dataset should contain viewers")
	}
}

func TestFunnelEndpointInvalidDate(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/analytics/funnel?startDate=03-01-2024")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for malformed date", w.Code)
	}
}

func TestFunnelEndpointUnknownEventType(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/analytics/funnel?events=checkout")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for unknown event type", w.Code)
	}
}

func TestFunnelEndpointInvertedRange(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet,
		"/api/v1/analytics/funnel?startDate=2024-06-01&endDate=2024-01-01")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for inverted range", w.Code)
	}

	var body struct {
		Funnel struct {
			CartAbandonmentRate float64 `json:"cartAbandonmentRate"`
		} `json:"funnel"`
		FilteredEvents int `json:"filteredEvents"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.FilteredEvents != 0 {
		t.Errorf("inverted range returned %d events, want 0", body.FilteredEvents)
	}
	if body.Funnel.CartAbandonmentRate != 1 {
		t.Errorf("abandonment on empty view = %v, want 1", body.Funnel.CartAbandonmentRate)
	}
}

func TestTrendsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/analytics/trends")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		MonthlyTrend []struct {
			Month     string  `json:"month"`
			Purchases int     `json:"purchases"`
			Revenue   float64 `json:"revenue"`
		} `json:"monthlyTrend"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(body.MonthlyTrend) == 0 {
		t.Fatal("full-year dataset should yield monthly purchase points")
	}
	for i := 1; i < len(body.MonthlyTrend); i++ {
		if body.MonthlyTrend[i-1].Month >= body.MonthlyTrend[i].Month {
			t.Errorf("months out of order: %q before %q",
				body.MonthlyTrend[i-1].Month, body.MonthlyTrend[i].Month)
		}
	}
}

func TestDashboardEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/analytics/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		SampleRows     []json.RawMessage `json:"sampleRows"`
		TotalEvents    int               `json:"totalEvents"`
		FilteredEvents int               `json:"filteredEvents"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(body.SampleRows) > 10 {
		t.Errorf("sample rows = %d, want at most 10", len(body.SampleRows))
	}
	if body.TotalEvents != body.FilteredEvents {
		t.Errorf("identity filter changed counts: total %d, filtered %d",
			body.TotalEvents, body.FilteredEvents)
	}
}

func TestExportCSVEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/export/csv?events=purchase")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q, want text/csv", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "ecommerce_data.csv") {
		t.Errorf("content disposition = %q, want attachment filename", cd)
	}

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	if lines[0] != "event_id,user_id,date,event,price,month" {
		t.Errorf("CSV header = %q", lines[0])
	}
	if len(lines) < 2 {
		t.Fatal("purchase-only export should contain data rows")
	}
	for _, line := range lines[1:] {
		if !strings.Contains(line, ",purchase,") {
			t.Fatalf("non-purchase row in filtered export: %q", line)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("health status = %v, want ok", body["status"])
	}
}

func TestRegenerateRequiresAdmin(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/dataset/regenerate")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without bearer token", w.Code)
	}
}

func TestDatasetStatusEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/dataset")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Events int `json:"events"`
		Params struct {
			Seed int64 `json:"seed"`
		} `json:"params"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Events == 0 {
		t.Error("dataset status reported zero events")
	}
	if body.Params.Seed != 42 {
		t.Errorf("default seed = %d, want 42", body.Params.Seed)
	}
}
