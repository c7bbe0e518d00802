package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/league-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-dashboard/internal/platform/id"
	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
	"github.com/riskibarqy/league-dashboard/internal/usecase"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestResolveClientOrigin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    clientOrigin
	}{
		{
			name:    "forwarded chain uses left-most client",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2", "CF-IPCountry": "id"},
			remote:  "10.0.0.2:5000",
			want:    clientOrigin{IP: "203.0.113.7", Country: "ID"},
		},
		{
			name:    "fly header wins over forwarded",
			headers: map[string]string{"Fly-Client-IP": "198.51.100.4", "X-Forwarded-For": "203.0.113.7"},
			remote:  "10.0.0.2:5000",
			want:    clientOrigin{IP: "198.51.100.4", Country: unknownCountry},
		},
		{
			name:    "garbage headers fall back to socket address",
			headers: map[string]string{"X-Real-IP": "not-an-ip", "CF-IPCountry": "XX1"},
			remote:  "[2001:db8::1]:443",
			want:    clientOrigin{IP: "2001:db8::1", Country: unknownCountry},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("POST", "/v1/corrections", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := resolveClientOrigin(req); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestSubmitCorrection_LogsClientOrigin(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	h := NewHandler(Services{
		Corrections: usecase.NewCorrectionService(memory.NewCorrectionRepository(), id.NewUUIDGenerator()),
	}, logging.FromZap(zap.New(core)))

	body := `{"divisionId":"u12","category":"score_update","contactName":"Coach Kim",
		"contactEmail":"kim@club.test","message":"The final score was 3-2."}`
	req := httptest.NewRequest(http.MethodPost, "/v1/corrections", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.2")
	req.Header.Set("CF-IPCountry", "sg")
	rec := httptest.NewRecorder()

	h.SubmitCorrection(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	entries := logs.FilterMessage("correction submitted").AllUntimed()
	if len(entries) != 1 {
		t.Fatalf("expected 1 submission entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["client_ip"] != "203.0.113.9" || fields["client_country"] != "SG" || fields["division_id"] != "u12" {
		t.Fatalf("unexpected log fields: %+v", fields)
	}
}
