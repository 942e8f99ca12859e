package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIBaseURL is the public brigade service
	DefaultAPIBaseURL = "https://formulario-bomberos.onrender.com/api"
	// WizardRedirectDelay is how long the success message stays after the complete wizard
	WizardRedirectDelay = 2 * time.Second
	// EditorRedirectDelay is how long the success message stays after the simple editor
	EditorRedirectDelay = 1500 * time.Millisecond
)

type Config struct {
	ServerPort  string
	Environment string
	LogLevel    string
	AppURL      string
	// Remote brigade service
	APIBaseURL string
	APITimeout time.Duration
	// Local draft/audit database
	DBPath           string
	TursoDatabaseURL string
	TursoAuthToken   string
	DraftTTL         time.Duration
	// Background jobs (cron specs, empty disables the job)
	JobsTimezone              string
	DraftCleanupSchedule      string
	InventorySnapshotSchedule string
	// Admin access (disabled when AdminPasswordHash is empty)
	AdminUser         string
	AdminPasswordHash string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged instead of sent
	NotifyEmail   string
	// Reports
	ReportsDir string
	ChromePath string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

// Load reads .env (if present) and the process environment.
// The returned slice lists non-fatal problems for the caller to log.
func Load() (*Config, []string) {
	var warnings []string
	if err := godotenv.Load(); err != nil {
		warnings = append(warnings, "No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	defaultLevel := "debug"
	if environment == "production" {
		defaultLevel = "info"
	}

	cfg := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       environment,
		LogLevel:          getEnv("LOG_LEVEL", defaultLevel),
		AppURL:            strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		APIBaseURL:        strings.TrimRight(getEnv("API_BASE_URL", DefaultAPIBaseURL), "/"),
		APITimeout:        getEnvDuration("API_TIMEOUT", 30*time.Second),
		DBPath:            getEnv("DB_PATH", "db/app.db"),
		TursoDatabaseURL:  getEnv("TURSO_DATABASE_URL", ""),
		TursoAuthToken:    getEnv("TURSO_AUTH_TOKEN", ""),
		DraftTTL:          getEnvDuration("DRAFT_TTL", 24*time.Hour),

		JobsTimezone:              getEnv("JOBS_TIMEZONE", "America/La_Paz"),
		DraftCleanupSchedule:      getEnv("DRAFT_CLEANUP_CRON", "@hourly"),
		InventorySnapshotSchedule: getEnv("INVENTORY_SNAPSHOT_CRON", ""),

		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		EmailFrom:         getEnv("EMAIL_FROM", "noreply@brigadas.local"),
		EmailFromName:     getEnv("EMAIL_FROM_NAME", "Registro de Brigadas"),
		EmailTestMode:     getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		NotifyEmail:       getEnv("NOTIFY_EMAIL", ""),
		ReportsDir:        getEnv("REPORTS_DIR", "static/reports"),
		ChromePath:        getEnv("CHROME_PATH", ""),
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),
	}

	if cfg.Environment == "production" && cfg.AdminPasswordHash == "" {
		warnings = append(warnings, "[WARNING] ADMIN_PASSWORD_HASH is empty: the admin pages are not protected")
	}
	if !cfg.EmailTestMode && cfg.ResendAPIKey == "" {
		warnings = append(warnings, "[WARNING] EMAIL_TEST_MODE is off but RESEND_API_KEY is empty")
	}

	return cfg, warnings
}

// AuthEnabled reports whether admin credentials are configured
func (c *Config) AuthEnabled() bool {
	return c.AdminPasswordHash != ""
}

// UsesTurso reports whether drafts live in a remote libsql database
func (c *Config) UsesTurso() bool {
	return c.TursoDatabaseURL != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
