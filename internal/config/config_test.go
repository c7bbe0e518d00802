package config

import (
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("expected memory storage by default, got %q", cfg.StorageDriver)
	}
	if cfg.CacheTTL != 60*time.Second || !cfg.CacheEnabled {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.LogLevel != logging.LevelInfo || cfg.LogFormat != logging.FormatJSON {
		t.Fatalf("unexpected log defaults: %s %s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.RecomputeWorkers != 4 || !cfg.MetricsEnabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_SwaggerDefaultsByEnv(t *testing.T) {
	cases := []struct {
		env      string
		override string
		want     bool
	}{
		{env: EnvDev, want: true},
		{env: EnvStage, want: true},
		{env: EnvProd, want: false},
		{env: EnvProd, override: "true", want: true},
	}
	for _, tc := range cases {
		t.Setenv("APP_ENV", tc.env)
		t.Setenv("SWAGGER_ENABLED", tc.override)
		t.Setenv("STORAGE_DRIVER", "")
		t.Setenv("UPTRACE_ENABLED", "false")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config for %s: %v", tc.env, err)
		}
		if cfg.SwaggerEnabled != tc.want {
			t.Fatalf("env=%s override=%q: expected swagger=%v, got %v", tc.env, tc.override, tc.want, cfg.SwaggerEnabled)
		}
	}
}

func TestLoad_PostgresRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", StoragePostgres)
	t.Setenv("DB_URL", "")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "DB_URL is required") {
		t.Fatalf("expected DB_URL error, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		key   string
		value string
		want  string
	}{
		{key: "STORAGE_DRIVER", value: "sqlite", want: "invalid STORAGE_DRIVER"},
		{key: "CACHE_TTL", value: "0s", want: "CACHE_TTL must be > 0"},
		{key: "CACHE_TTL", value: "soon", want: "parse CACHE_TTL"},
		{key: "APP_LOG_LEVEL", value: "loud", want: "parse APP_LOG_LEVEL"},
		{key: "SUPABASE_CIRCUIT_FAILURE_COUNT", value: "0", want: "SUPABASE_CIRCUIT_FAILURE_COUNT must be >= 1"},
		{key: "RECOMPUTE_WORKERS", value: "many", want: "parse RECOMPUTE_WORKERS"},
		{key: "AUTH_CACHE_TTL", value: "-1s", want: "AUTH_CACHE_TTL must be > 0"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" https://a.example.org, ,https://b.example.org ")
	if len(got) != 2 || got[1] != "https://b.example.org" {
		t.Fatalf("unexpected split: %v", got)
	}
}
