// Package config provides configuration management for the pricing service.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultEnvFile is read by Load when ENV_FILE is not set.
const DefaultEnvFile = ".env"

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Pricing  PricingConfig
	Receipts ReceiptsConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	// BaseURL is the public address used in receipt links. Empty means
	// derive it from each request.
	BaseURL        string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	ShutdownGrace  time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	Version        string
}

// PricingConfig selects the price list.
type PricingConfig struct {
	// CatalogFile overrides the embedded catalog when set.
	CatalogFile string
}

// ReceiptsConfig holds receipt storage and PDF rendering settings.
type ReceiptsConfig struct {
	Enabled       bool
	TTL           time.Duration
	SweepInterval time.Duration
	CacheSize     int
	SigningKey    string
	LogoPath      string
	ChromePath    string
	RenderTimeout time.Duration
	// Circuit breaker around the PDF renderer.
	CircuitBreakerFailureThreshold int
	CircuitBreakerTimeout          time.Duration
}

// AuthConfig holds API key authentication settings.
type AuthConfig struct {
	Enabled bool
	// APIKeys are "name:secret" or bare secrets; secrets may be bcrypt hashes.
	APIKeys []string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig holds console logging settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads an optional .env file and builds a Config from the environment.
// Variables already set in the environment win over the file.
func Load() Config {
	loadEnvFile(getEnv("ENV_FILE", DefaultEnvFile))

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			BaseURL:        strings.TrimRight(getEnv("BASE_URL", ""), "/"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownGrace:  getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSOrigins:    parseList(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
			Version:        getEnv("APP_VERSION", "2.0.1"),
		},
		Pricing: PricingConfig{
			CatalogFile: getEnv("CATALOG_FILE", ""),
		},
		Receipts: ReceiptsConfig{
			Enabled:                        getEnvBool("RECEIPTS_ENABLED", true),
			TTL:                            getEnvDuration("RECEIPT_TTL", 30*time.Minute),
			SweepInterval:                  getEnvDuration("RECEIPT_SWEEP_INTERVAL", 5*time.Minute),
			CacheSize:                      getEnvInt("RECEIPT_CACHE_SIZE", 1000),
			SigningKey:                     getEnv("RECEIPT_SIGNING_KEY", ""),
			LogoPath:                       getEnv("RECEIPT_LOGO_PATH", ""),
			ChromePath:                     getEnv("CHROME_PATH", ""),
			RenderTimeout:                  getEnvDuration("PDF_RENDER_TIMEOUT", 30*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("PDF_CIRCUIT_BREAKER_FAILURE_THRESHOLD", 3),
			CircuitBreakerTimeout:          getEnvDuration("PDF_CIRCUIT_BREAKER_TIMEOUT", time.Minute),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseList(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "laundry_pricing"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

// loadEnvFile applies path to the environment. A missing file is not an error.
func loadEnvFile(path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("file", path).Msg("Could not read env file")
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseList splits a comma separated value, dropping blanks.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	return result
}
