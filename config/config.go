package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage sandbox shared by the board, attachments and holiday cache
	Storage    StorageConfig
	Board      BoardConfig
	Attachment AttachmentConfig
	Holiday    HolidayConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
	MaxClients     int
}

type StorageConfig struct {
	Dir        string
	QuotaBytes int64
}

type BoardConfig struct {
	StorageKey      string
	DefaultDueToday bool
	Timezone        string
}

type AttachmentConfig struct {
	Root           string
	MaxNameProbes  int
	MaxUploadBytes int64
	BlobURLPrefix  string
}

type HolidayConfig struct {
	// Provider is "calendarific" or "gcalendar".
	Provider     string
	APIURL       string
	APIKey       string
	Country      string
	StorageKey   string
	FetchTimeout time.Duration
	GCalendar    GCalendarConfig
}

type GCalendarConfig struct {
	CalendarID      string
	APIKey          string
	CredentialsPath string
}

// Holiday providers.
const (
	ProviderCalendarific = "calendarific"
	ProviderGCalendar    = "gcalendar"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	// Storage
	cfg.Storage.Dir = viper.GetString("storage.dir")
	cfg.Storage.QuotaBytes = viper.GetInt64("storage.quota_bytes")

	cfg.Board.StorageKey = viper.GetString("board.storage_key")
	cfg.Board.DefaultDueToday = viper.GetBool("board.default_due_today")
	cfg.Board.Timezone = viper.GetString("board.timezone")

	cfg.Attachment.Root = viper.GetString("attachment.root")
	cfg.Attachment.MaxNameProbes = viper.GetInt("attachment.max_name_probes")
	cfg.Attachment.MaxUploadBytes = viper.GetInt64("attachment.max_upload_bytes")
	cfg.Attachment.BlobURLPrefix = viper.GetString("attachment.blob_url_prefix")

	// Holidays
	cfg.Holiday.Provider = viper.GetString("holiday.provider")
	cfg.Holiday.APIURL = viper.GetString("holiday.api_url")
	cfg.Holiday.APIKey = viper.GetString("holiday.api_key")
	if apiKey := viper.GetString("holiday_api_key"); apiKey != "" {
		cfg.Holiday.APIKey = apiKey
	}
	cfg.Holiday.Country = viper.GetString("holiday.country")
	cfg.Holiday.StorageKey = viper.GetString("holiday.storage_key")
	cfg.Holiday.FetchTimeout = viper.GetDuration("holiday.fetch_timeout")
	cfg.Holiday.GCalendar.CalendarID = viper.GetString("holiday.gcalendar.calendar_id")
	cfg.Holiday.GCalendar.APIKey = viper.GetString("holiday.gcalendar.api_key")
	cfg.Holiday.GCalendar.CredentialsPath = viper.GetString("holiday.gcalendar.credentials_path")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.Holiday.GCalendar.CredentialsPath = googleCreds
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 600)
	viper.SetDefault("rate_limit.max_clients", 1000)

	viper.SetDefault("storage.dir", "./data")
	viper.SetDefault("storage.quota_bytes", 5<<20)

	viper.SetDefault("board.storage_key", "someday-maybe-state-v4")
	viper.SetDefault("board.default_due_today", true)
	viper.SetDefault("board.timezone", "Local")

	viper.SetDefault("attachment.root", "cards")
	viper.SetDefault("attachment.max_name_probes", 1000)
	viper.SetDefault("attachment.max_upload_bytes", 25<<20)
	viper.SetDefault("attachment.blob_url_prefix", "/api/v1/blobs/")

	viper.SetDefault("holiday.provider", ProviderCalendarific)
	viper.SetDefault("holiday.api_url", "https://calendarific.com/api/v2/holidays")
	viper.SetDefault("holiday.country", "US")
	viper.SetDefault("holiday.storage_key", "someday-maybe-holidays-v2")
	viper.SetDefault("holiday.fetch_timeout", "15s")
}

func validate(cfg *Config) error {
	switch cfg.Holiday.Provider {
	case ProviderCalendarific, ProviderGCalendar:
	default:
		return fmt.Errorf("holiday.provider: unknown provider %q", cfg.Holiday.Provider)
	}
	if cfg.Holiday.FetchTimeout <= 0 {
		return fmt.Errorf("holiday.fetch_timeout must be positive")
	}
	if cfg.Attachment.MaxNameProbes <= 0 {
		return fmt.Errorf("attachment.max_name_probes must be positive")
	}
	if cfg.Attachment.MaxUploadBytes <= 0 {
		return fmt.Errorf("attachment.max_upload_bytes must be positive")
	}
	if cfg.Storage.Dir == "" {
		return fmt.Errorf("storage.dir is required")
	}
	return nil
}
