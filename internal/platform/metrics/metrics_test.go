package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestManager_RecordSkipped(t *testing.T) {
	t.Parallel()

	m := NewManager(WithRegistry(prometheus.NewRegistry()))
	m.RecordSkipped("top_scorers", SkipOwnGoal, 2)
	m.RecordSkipped("top_scorers", SkipOwnGoal, 1)
	m.RecordSkipped("top_scorers", SkipForeignMatch, 0)

	if got := testutil.ToFloat64(m.aggregationSkipped.WithLabelValues("top_scorers", SkipOwnGoal)); got != 3 {
		t.Fatalf("own goal skips=%v want 3", got)
	}
	if got := testutil.CollectAndCount(m.aggregationSkipped); got != 1 {
		t.Fatalf("zero-count kind should not create a series, got %d series", got)
	}
}

func TestManager_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Manager
	m.RecordSkipped("standings", SkipUnknownTeam, 1)
	m.ObserveAggregation("standings", time.Millisecond)
	m.RecordHTTPRequest("GET /healthz", http.MethodGet, 200, time.Millisecond)
	m.RecordCacheLookup("teams", true)
	m.SetBreakerState("supabase", "open")
	m.RecordRecompute(true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from nil manager handler, got %d", rec.Code)
	}
}

func TestManager_HandlerExposesMetrics(t *testing.T) {
	t.Parallel()

	m := NewManager(
		WithNamespace("league_dashboard"),
		WithConstLabels(map[string]string{"service": "test"}),
	)
	m.RecordHTTPRequest("GET /v1/divisions", http.MethodGet, 200, 5*time.Millisecond)
	m.SetBreakerState("supabase", "half_open")
	m.RecordCacheLookup("standings", false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	for _, want := range []string{
		`league_dashboard_http_requests_total{method="GET",route="GET /v1/divisions",service="test",status_code="200"} 1`,
		`league_dashboard_circuit_breaker_state{name="supabase",service="test"} 1`,
		`league_dashboard_cache_lookups_total{result="miss",service="test",store="standings"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q:\n%s", want, body)
		}
	}
}
