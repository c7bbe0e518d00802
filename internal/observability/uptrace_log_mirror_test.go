package observability

import (
	"testing"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestIsQuietRequestLog(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		msg  string
		args []any
		want bool
	}{
		{name: "health check", msg: "http request", args: []any{"method", "GET", "path", "/healthz"}, want: true},
		{name: "metrics scrape", msg: "http request", args: []any{"path", "/metrics", "status", 200}, want: true},
		{name: "api request", msg: "http request", args: []any{"path", "/v1/divisions"}},
		{name: "other event", msg: "recompute standings finished", args: []any{"path", "/healthz"}},
	}
	for _, tc := range cases {
		if got := isQuietRequestLog(tc.msg, tc.args); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestLogAttributes(t *testing.T) {
	t.Parallel()

	attrs := logAttributes([]any{"division_id", "u12", "skipped", 2, "payload"})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "division_id" || attrs[0].Value.AsString() != "u12" {
		t.Fatalf("unexpected division_id attribute")
	}
	if attrs[1].Key != "skipped" || attrs[1].Value.AsInt64() != 2 {
		t.Fatalf("unexpected skipped attribute")
	}
	if attrs[2].Key != "payload" || attrs[2].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected payload attribute")
	}
}

func TestLogValue_SkipTallyStaysStructured(t *testing.T) {
	t.Parallel()

	v := logValue(map[string]int{"unknown_player": 1, "own_goal": 3})
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	items := v.AsMap()
	if len(items) != 2 || items[0].Key != "own_goal" || items[0].Value.AsInt64() != 3 {
		t.Fatalf("unexpected map items: %+v", items)
	}
}

func TestLogValue_CompositeFallsBackToJSON(t *testing.T) {
	t.Parallel()

	v := logValue(struct {
		Division string `json:"division"`
	}{Division: "u10"})
	if v.Kind() != otellog.KindString || v.AsString() != `{"division":"u10"}` {
		t.Fatalf("unexpected value: %s", v.String())
	}
}

func TestSeverityFor(t *testing.T) {
	t.Parallel()

	if severityFor(zapcore.WarnLevel) != otellog.SeverityWarn {
		t.Fatalf("warn should map to SeverityWarn")
	}
	if severityFor(zapcore.PanicLevel) != otellog.SeverityFatal {
		t.Fatalf("panic should map to SeverityFatal")
	}
}
