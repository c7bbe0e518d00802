package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level
	LogFormat      logging.Format

	StorageDriver           string
	DBURL                   string
	DBDisablePreparedBinary bool
	DBMaxOpenConns          int
	CacheEnabled            bool
	CacheTTL                time.Duration

	CORSAllowedOrigins []string
	DefaultDivisionID  string
	SwaggerEnabled     bool

	SupabaseURL                   string
	SupabaseAnonKey               string
	SupabaseJWTSecret             string
	SupabaseTimeout               time.Duration
	SupabaseCircuitEnabled        bool
	SupabaseCircuitFailureCount   int
	SupabaseCircuitOpenTimeout    time.Duration
	SupabaseCircuitHalfOpenMaxReq int
	AuthCacheTTL                  time.Duration

	InternalJobToken string
	RecomputeWorkers int

	MetricsEnabled bool
	PprofEnabled   bool
	PprofAddr      string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "league-dashboard-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":8080")),
		DBURL:              strings.TrimSpace(getEnv("DB_URL", "")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DefaultDivisionID:  strings.TrimSpace(getEnv("DEFAULT_DIVISION_ID", "")),
		SupabaseURL:        strings.TrimSpace(getEnv("SUPABASE_URL", "")),
		SupabaseAnonKey:    strings.TrimSpace(getEnv("SUPABASE_ANON_KEY", "")),
		SupabaseJWTSecret:  strings.TrimSpace(getEnv("SUPABASE_JWT_SECRET", "")),
		InternalJobToken:   strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		PprofAddr:          strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),

		PyroscopeServerAddress:     strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
	}
	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if cfg.ReadTimeout, err = positiveDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = positiveDuration("APP_WRITE_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat, err = logging.ParseFormat(getEnv("APP_LOG_FORMAT", "json")); err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_FORMAT: %w", err)
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	if cfg.SwaggerEnabled, err = strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault)); err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	if err := loadStorage(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadAuth(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.RecomputeWorkers, err = getEnvAsInt("RECOMPUTE_WORKERS", 4); err != nil {
		return Config{}, fmt.Errorf("parse RECOMPUTE_WORKERS: %w", err)
	}
	if cfg.RecomputeWorkers < 1 {
		return Config{}, fmt.Errorf("RECOMPUTE_WORKERS must be >= 1")
	}

	return cfg, nil
}

func loadStorage(cfg *Config) error {
	var err error

	driver := strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", StorageMemory)))
	switch driver {
	case StorageMemory, StoragePostgres:
		cfg.StorageDriver = driver
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s", driver, StorageMemory, StoragePostgres)
	}
	if driver == StoragePostgres && cfg.DBURL == "" {
		return fmt.Errorf("DB_URL is required when STORAGE_DRIVER=postgres")
	}

	if cfg.DBDisablePreparedBinary, err = strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false")); err != nil {
		return fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	if cfg.DBMaxOpenConns, err = getEnvAsInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.DBMaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}

	if cfg.CacheEnabled, err = strconv.ParseBool(getEnv("CACHE_ENABLED", "true")); err != nil {
		return fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	if cfg.CacheTTL, err = positiveDuration("CACHE_TTL", "60s"); err != nil {
		return err
	}
	return nil
}

func loadAuth(cfg *Config) error {
	var err error

	if cfg.SupabaseTimeout, err = positiveDuration("SUPABASE_TIMEOUT", "5s"); err != nil {
		return err
	}
	if cfg.SupabaseCircuitEnabled, err = strconv.ParseBool(getEnv("SUPABASE_CIRCUIT_ENABLED", "true")); err != nil {
		return fmt.Errorf("parse SUPABASE_CIRCUIT_ENABLED: %w", err)
	}
	if cfg.SupabaseCircuitFailureCount, err = getEnvAsInt("SUPABASE_CIRCUIT_FAILURE_COUNT", 5); err != nil {
		return fmt.Errorf("parse SUPABASE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cfg.SupabaseCircuitFailureCount < 1 {
		return fmt.Errorf("SUPABASE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if cfg.SupabaseCircuitOpenTimeout, err = positiveDuration("SUPABASE_CIRCUIT_OPEN_TIMEOUT", "15s"); err != nil {
		return err
	}
	if cfg.SupabaseCircuitHalfOpenMaxReq, err = getEnvAsInt("SUPABASE_CIRCUIT_HALF_OPEN_MAX_REQ", 2); err != nil {
		return fmt.Errorf("parse SUPABASE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cfg.SupabaseCircuitHalfOpenMaxReq < 1 {
		return fmt.Errorf("SUPABASE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	if cfg.AuthCacheTTL, err = positiveDuration("AUTH_CACHE_TTL", "30s"); err != nil {
		return err
	}
	return nil
}

func loadObservability(cfg *Config) error {
	var err error

	if cfg.MetricsEnabled, err = strconv.ParseBool(getEnv("METRICS_ENABLED", "true")); err != nil {
		return fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	if cfg.PprofEnabled, err = strconv.ParseBool(getEnv("PPROF_ENABLED", "false")); err != nil {
		return fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false")); err != nil {
		return fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if cfg.PyroscopeUploadRate, err = positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return err
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false")); err != nil {
		return fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.UptraceLogsEnabled, err = strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true")); err != nil {
		return fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}
	return nil
}

func positiveDuration(key, fallback string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
