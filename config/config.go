package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Schedule calendar specifics
	ScheduleAPI    ScheduleAPIConfig
	RateLimit      RateLimitConfig
	Session        SessionConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ScheduleAPIConfig points at the programaciones API.
type ScheduleAPIConfig struct {
	URL         string
	AccessToken string
	Timeout     string
	RatePerSec  float64
	Burst       int
}

// RateLimitConfig limits lookups per client IP. Zero disables it.
type RateLimitConfig struct {
	RequestsPerMin int
}

type SessionConfig struct {
	MaxSessions  int
	TTL          time.Duration
	CookieName   string
	SecureCookie bool
}

// GoogleCalendarConfig enables the Google Calendar export when CredentialsPath is set.
type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first, when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Programaciones API
	cfg.ScheduleAPI.URL = strings.TrimRight(viper.GetString("schedule_api.url"), "/")
	cfg.ScheduleAPI.AccessToken = viper.GetString("schedule_api.access_token")
	cfg.ScheduleAPI.Timeout = viper.GetString("schedule_api.timeout")
	cfg.ScheduleAPI.RatePerSec = viper.GetFloat64("schedule_api.rate_per_sec")
	cfg.ScheduleAPI.Burst = viper.GetInt("schedule_api.burst")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.SecureCookie = viper.GetBool("session.secure_cookie")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
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
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("schedule_api.timeout", "10s")
	viper.SetDefault("schedule_api.rate_per_sec", 5)
	viper.SetDefault("schedule_api.burst", 10)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.cookie_name", "schedule_session")
	viper.SetDefault("session.secure_cookie", false)

	viper.SetDefault("google_calendar.calendar_id", "primary")
}

// loadDotEnv loads path into the process environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.ScheduleAPI.URL == "" {
		return errors.New("schedule_api.url is required")
	}
	u, err := url.Parse(cfg.ScheduleAPI.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("schedule_api.url %q is not an absolute URL", cfg.ScheduleAPI.URL)
	}
	if cfg.ScheduleAPI.Timeout != "" {
		if _, err := time.ParseDuration(cfg.ScheduleAPI.Timeout); err != nil {
			return fmt.Errorf("schedule_api.timeout: %w", err)
		}
	}
	if cfg.HTTPServer.Port <= 0 {
		return errors.New("http_server.port must be positive")
	}
	return nil
}
