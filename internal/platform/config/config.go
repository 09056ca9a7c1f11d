package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cache backends for verification results.
const (
	CacheBackendNone     = "none"
	CacheBackendPostgres = "postgres"
	CacheBackendRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Bank verification provider. An empty secret is reported per request
	// as a configuration error rather than failing startup.
	PaystackSecretKey string
	PaystackBaseURL   string

	GeolocationBaseURL string
	OutboundTimeout    time.Duration

	// Verification cache; disabled unless a backend and a positive TTL are set.
	VerificationCacheBackend string
	VerificationCacheTTL     time.Duration
	CachePurgeSchedule       string
	DatabaseURL              string
	MigrationsPath           string
	RedisURL                 string

	// Remote procedures hosted by the backend-as-a-service.
	SupabaseURL        string
	SupabaseServiceKey string

	JWTSecret     string
	RateLimit     string // ulule/limiter formatted, e.g. "10-M"
	PosthogAPIKey string

	// Proxies whose X-Forwarded-For is honoured when resolving the client IP.
	// Empty means the socket peer is always the client.
	TrustedProxies []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PAYSTACK_SECRET_KEY", "")
	v.SetDefault("PAYSTACK_BASE_URL", "https://api.paystack.co")
	v.SetDefault("GEOLOCATION_BASE_URL", "https://ipapi.co")
	v.SetDefault("OUTBOUND_TIMEOUT", "15s")
	v.SetDefault("VERIFICATION_CACHE_BACKEND", CacheBackendNone)
	v.SetDefault("VERIFICATION_CACHE_TTL", "0s")
	v.SetDefault("CACHE_PURGE_SCHEDULE", "@every 1h")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_SERVICE_KEY", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RATE_LIMIT", "30-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.AutomaticEnv()

	cfg := &Config{
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		PaystackSecretKey:  v.GetString("PAYSTACK_SECRET_KEY"),
		PaystackBaseURL:    strings.TrimSuffix(v.GetString("PAYSTACK_BASE_URL"), "/"),
		GeolocationBaseURL: strings.TrimSuffix(v.GetString("GEOLOCATION_BASE_URL"), "/"),
		CachePurgeSchedule: v.GetString("CACHE_PURGE_SCHEDULE"),
		DatabaseURL:        v.GetString("PGSQL_URL"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		RedisURL:           v.GetString("REDIS_URL"),
		SupabaseURL:        strings.TrimSuffix(v.GetString("SUPABASE_URL"), "/"),
		SupabaseServiceKey: v.GetString("SUPABASE_SERVICE_KEY"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		PosthogAPIKey:      v.GetString("POSTHOG_API_KEY"),
		TrustedProxies:     splitList(v.GetString("TRUSTED_PROXIES")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.OutboundTimeout = parseDuration(v.GetString("OUTBOUND_TIMEOUT"), "OUTBOUND_TIMEOUT", 15*time.Second)
	cfg.VerificationCacheTTL = parseDuration(v.GetString("VERIFICATION_CACHE_TTL"), "VERIFICATION_CACHE_TTL", 0)

	backend := strings.ToLower(strings.TrimSpace(v.GetString("VERIFICATION_CACHE_BACKEND")))
	switch backend {
	case CacheBackendNone, CacheBackendPostgres, CacheBackendRedis:
	default:
		log.Printf("Warning: Unknown VERIFICATION_CACHE_BACKEND ('%s'). Caching disabled.\n", backend)
		backend = CacheBackendNone
	}
	if backend == CacheBackendPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: VERIFICATION_CACHE_BACKEND=postgres but PGSQL_URL not set. Caching disabled.")
		backend = CacheBackendNone
	}
	cfg.VerificationCacheBackend = backend

	if cfg.PaystackSecretKey == "" {
		log.Println("Warning: PAYSTACK_SECRET_KEY not set. Bank verification will report a configuration error.")
	}
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Authenticated routes will reject every request.")
	}
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		log.Println("Warning: SUPABASE_URL or SUPABASE_SERVICE_KEY not set. Interaction rewards will fail.")
	}

	return cfg, nil
}

// CacheEnabled reports whether verification results should be cached.
func (c *Config) CacheEnabled() bool {
	return c.VerificationCacheBackend != CacheBackendNone && c.VerificationCacheTTL > 0
}

func parseDuration(raw, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

// splitList parses a comma separated value, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
