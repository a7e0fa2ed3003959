package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Auth       AuthConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	Database       DatabaseConfig
	NATS           NATSConfig
	GoogleCalendar GoogleCalendarConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	Planner PlannerConfig
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

type AuthConfig struct {
	JWTSecret string
	// Disabled skips token checks and uses DevUserID; never enable in production.
	Disabled  bool
	DevUserID string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver string
	DSN    string
}

type NATSConfig struct {
	URL     string
	Subject string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	// ExportEvents writes synthesized items back as calendar events.
	ExportEvents bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// PlannerConfig tunes validation and schedule synthesis.
type PlannerConfig struct {
	Timezone    string
	DefaultSlot string
	SlotStep    string
	// SleepWindow and WorkingHours are "HH:MM-HH:MM"; empty disables them.
	SleepWindow     string
	WorkingHours    string
	WorkingWeekdays []string
	MaxMonths       int
	// OracleRetries is how many extra attempts a malformed or transient
	// oracle answer gets.
	OracleRetries int
	UseLLMContent bool
}

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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.Auth.Disabled = viper.GetBool("auth.disabled")
	cfg.Auth.DevUserID = viper.GetString("auth.dev_user_id")

	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = expandEnvVar(viper.GetString("database.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	cfg.NATS.URL = viper.GetString("nats.url")
	cfg.NATS.Subject = viper.GetString("nats.subject")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.ExportEvents = viper.GetBool("google_calendar.export_events")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders()

	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.DefaultSlot = viper.GetString("planner.default_slot")
	cfg.Planner.SlotStep = viper.GetString("planner.slot_step")
	cfg.Planner.SleepWindow = viper.GetString("planner.sleep_window")
	cfg.Planner.WorkingHours = viper.GetString("planner.working_hours")
	cfg.Planner.WorkingWeekdays = splitList(viper.GetStringSlice("planner.working_weekdays"))
	cfg.Planner.MaxMonths = viper.GetInt("planner.max_months")
	cfg.Planner.OracleRetries = viper.GetInt("planner.oracle_retries")
	cfg.Planner.UseLLMContent = viper.GetBool("planner.use_llm_content")

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}
	if cfg.Environment.Name == "production" && cfg.Auth.Disabled {
		return nil, fmt.Errorf("auth.disabled is not allowed in production")
	}

	return cfg, nil
}

// Watch calls onChange with the reloaded config every time the config file
// changes on disk. Reload errors are passed through instead of a config.
func Watch(onChange func(cfg *Config, err error)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(Load())
	})
	viper.WatchConfig()
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("auth.dev_user_id", "dev-user")
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "file:planner.db?_pragma=foreign_keys(1)")
	viper.SetDefault("nats.subject", "planner.goal.created")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")

	viper.SetDefault("planner.timezone", "Asia/Jakarta")
	viper.SetDefault("planner.default_slot", "19:00-20:00")
	viper.SetDefault("planner.slot_step", "1h")
	viper.SetDefault("planner.sleep_window", "22:00-06:00")
	viper.SetDefault("planner.working_hours", "08:00-17:00")
	viper.SetDefault("planner.working_weekdays", []string{"monday", "tuesday", "wednesday", "thursday", "friday"})
	viper.SetDefault("planner.max_months", 6)
	viper.SetDefault("planner.oracle_retries", 1)
	viper.SetDefault("planner.use_llm_content", true)
}

func loadProviders() []ProviderConfig {
	if !viper.IsSet("llm.providers") {
		return nil
	}
	list, ok := viper.Get("llm.providers").([]interface{})
	if !ok {
		return nil
	}

	var providers []ProviderConfig
	for _, p := range list {
		m, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(m, "name"),
			Enabled:  getBoolFromMap(m, "enabled"),
			Priority: getIntFromMap(m, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(m, "api_key")),
			BaseURL:  getStringFromMap(m, "base_url"),
			Model:    getStringFromMap(m, "model"),
			Timeout:  getStringFromMap(m, "timeout"),
		})
	}
	return providers
}

// splitList accepts both YAML lists and a single comma separated env value.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return ""
}

// validateLLMConfig checks the provider list. No providers at all is valid:
// the planner then runs on templated content only.
func validateLLMConfig(cfg *LLMConfig) error {
	priorities := make(map[int]string)
	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if other, dup := priorities[provider.Priority]; dup {
			return fmt.Errorf("provider %s: duplicate priority %d (also used by %s)", provider.Name, provider.Priority, other)
		}
		priorities[provider.Priority] = provider.Name
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case float64:
			return int(v)
		}
	}
	return 0
}
