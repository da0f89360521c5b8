// Package config loads environment configuration and feature profiles.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full environment configuration of a lens process.
// Load fails fast on invalid values; absent values take documented defaults.
type Config struct {
	AppName  string
	Debug    bool
	LogLevel slog.Level
	HTTPAddr string

	RedisURL            string
	RedisMaxConnections int

	RateLimitEnabled bool
	RateLimitPerMin  int
	RateLimitBurst   int

	// Consumer retry policy: delay = base × 2^n ± 25% jitter, capped at max.
	RetryMax       int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration

	ConsumerGroup     string
	ConsumerBatchSize int
	ConsumerBlock     time.Duration

	FeatureProfile      string
	FeatureProfilesPath string
	PromptsDir          string

	StaleMid          time.Duration
	StaleBook         time.Duration
	StaleFunding      time.Duration
	StaleCandleFactor int

	ValidatorMaxAge      time.Duration
	ValidatorMaxDriftBps float64

	ProviderTimeout    time.Duration
	HyperliquidBaseURL string

	// AIModels is the fallback enabled-model list used when the database
	// carries no llm_configs rows.
	AIModels       []string
	EvaluationMode string

	WSEnabled        bool
	WSMaxConnections int

	Auth AuthConfig

	MetricsEnabled bool
	RetentionDays  int

	GracefulShutdownTimeout time.Duration
}

// AuthConfig selects and parameterizes the authentication mode.
type AuthConfig struct {
	Mode string // none, psk or jwt

	// PSK mode: three independent bearer tokens mapped to scopes.
	TokenAdmin  string
	TokenSubmit string
	TokenRead   string

	// JWT mode.
	JWKSURL    string
	PublicKey  string
	Secret     string
	Issuer     string
	Audience   string
	ScopeClaim string
}

// Evaluation modes.
const (
	EvaluationModeLive = "live"
	EvaluationModeStub = "stub"
)

// Load reads configuration from the environment. A prior godotenv.Load is
// expected to have populated process env from .env.
func Load() (*Config, error) {
	cfg := &Config{
		AppName:  getEnv("APP_NAME", "SigmaPilot Lens"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		ConsumerGroup: getEnv("CONSUMER_GROUP", "lens-workers"),

		FeatureProfile:      getEnv("FEATURE_PROFILE", "trend_follow_v1"),
		FeatureProfilesPath: getEnv("FEATURE_PROFILES_PATH", "config/feature_profiles.yaml"),
		PromptsDir:          getEnv("PROMPTS_DIR", "config/prompts"),

		HyperliquidBaseURL: strings.TrimRight(getEnv("HYPERLIQUID_BASE_URL", "https://api.hyperliquid.xyz"), "/"),

		EvaluationMode: getEnv("EVALUATION_MODE", EvaluationModeLive),

		Auth: AuthConfig{
			Mode:        getEnv("AUTH_MODE", "none"),
			TokenAdmin:  os.Getenv("AUTH_TOKEN_ADMIN"),
			TokenSubmit: os.Getenv("AUTH_TOKEN_SUBMIT"),
			TokenRead:   os.Getenv("AUTH_TOKEN_READ"),
			JWKSURL:     os.Getenv("AUTH_JWKS_URL"),
			PublicKey:   os.Getenv("AUTH_JWT_PUBLIC_KEY"),
			Secret:      os.Getenv("AUTH_JWT_SECRET"),
			Issuer:      os.Getenv("AUTH_JWT_ISSUER"),
			Audience:    os.Getenv("AUTH_JWT_AUDIENCE"),
			ScopeClaim:  getEnv("AUTH_SCOPE_CLAIM", "scope"),
		},

		GracefulShutdownTimeout: 10 * time.Second,
	}

	var err error
	if cfg.Debug, err = getEnvBool("DEBUG", false); err != nil {
		return nil, err
	}
	if cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "INFO")); err != nil {
		return nil, err
	}
	if cfg.RedisMaxConnections, err = getEnvInt("REDIS_MAX_CONNECTIONS", 10, 1); err != nil {
		return nil, err
	}
	if cfg.RateLimitEnabled, err = getEnvBool("RATE_LIMIT_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMin, err = getEnvInt("RATE_LIMIT_PER_MIN", 60, 1); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 120, 1); err != nil {
		return nil, err
	}
	if cfg.RetryMax, err = getEnvInt("RETRY_MAX", 5, 0); err != nil {
		return nil, err
	}
	if cfg.RetryBaseDelay, err = getEnvMillis("RETRY_BASE_DELAY_MS", 2000); err != nil {
		return nil, err
	}
	if cfg.RetryMaxDelay, err = getEnvMillis("RETRY_MAX_DELAY_MS", 30000); err != nil {
		return nil, err
	}
	if cfg.ConsumerBatchSize, err = getEnvInt("CONSUMER_BATCH_SIZE", 10, 1); err != nil {
		return nil, err
	}
	if cfg.ConsumerBlock, err = getEnvMillis("CONSUMER_BLOCK_MS", 5000); err != nil {
		return nil, err
	}
	if cfg.StaleMid, err = getEnvSeconds("STALE_MID_S", 10); err != nil {
		return nil, err
	}
	if cfg.StaleBook, err = getEnvSeconds("STALE_BOOK_S", 5); err != nil {
		return nil, err
	}
	if cfg.StaleFunding, err = getEnvSeconds("STALE_FUNDING_S", 60); err != nil {
		return nil, err
	}
	if cfg.StaleCandleFactor, err = getEnvInt("STALE_CANDLE_MULTIPLIER", 2, 1); err != nil {
		return nil, err
	}
	if cfg.ValidatorMaxAge, err = getEnvSeconds("VALIDATOR_MAX_AGE_S", 300); err != nil {
		return nil, err
	}
	maxDrift, err := getEnvInt("VALIDATOR_MAX_DRIFT_BPS", 200, 0)
	if err != nil {
		return nil, err
	}
	cfg.ValidatorMaxDriftBps = float64(maxDrift)
	if cfg.ProviderTimeout, err = getEnvMillis("PROVIDER_TIMEOUT_MS", 10000); err != nil {
		return nil, err
	}
	if cfg.WSEnabled, err = getEnvBool("WS_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.WSMaxConnections, err = getEnvInt("WS_MAX_CONNECTIONS", 100, 1); err != nil {
		return nil, err
	}
	if cfg.MetricsEnabled, err = getEnvBool("METRICS_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.RetentionDays, err = getEnvInt("RETENTION_DAYS", 180, 1); err != nil {
		return nil, err
	}

	for _, m := range strings.Split(getEnv("AI_MODELS", "chatgpt,gemini"), ",") {
		if m = strings.TrimSpace(m); m != "" {
			cfg.AIModels = append(cfg.AIModels, m)
		}
	}

	switch cfg.EvaluationMode {
	case EvaluationModeLive, EvaluationModeStub:
	default:
		return nil, fmt.Errorf("invalid EVALUATION_MODE %q: must be live or stub", cfg.EvaluationMode)
	}
	switch cfg.Auth.Mode {
	case "none", "psk", "jwt":
	default:
		return nil, fmt.Errorf("invalid AUTH_MODE %q: must be none, psk or jwt", cfg.Auth.Mode)
	}
	if cfg.Auth.Mode == "psk" &&
		cfg.Auth.TokenAdmin == "" && cfg.Auth.TokenSubmit == "" && cfg.Auth.TokenRead == "" {
		return nil, fmt.Errorf("AUTH_MODE=psk requires at least one of AUTH_TOKEN_ADMIN, AUTH_TOKEN_SUBMIT, AUTH_TOKEN_READ")
	}
	if cfg.Auth.Mode == "jwt" &&
		cfg.Auth.JWKSURL == "" && cfg.Auth.PublicKey == "" && cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("AUTH_MODE=jwt requires AUTH_JWKS_URL, AUTH_JWT_PUBLIC_KEY or AUTH_JWT_SECRET")
	}
	if cfg.RateLimitBurst < cfg.RateLimitPerMin {
		return nil, fmt.Errorf("RATE_LIMIT_BURST (%d) must be >= RATE_LIMIT_PER_MIN (%d)",
			cfg.RateLimitBurst, cfg.RateLimitPerMin)
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue, min int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

func getEnvMillis(key string, defaultMillis int) (time.Duration, error) {
	v, err := getEnvInt(key, defaultMillis, 1)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Millisecond, nil
}

func getEnvSeconds(key string, defaultSeconds int) (time.Duration, error) {
	v, err := getEnvInt(key, defaultSeconds, 1)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Second, nil
}
