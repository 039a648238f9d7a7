package config

import "github.com/healhub/healhub_backend/pkg/apperr"

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Supabase      SupabaseConfig      `mapstructure:"supabase"`
	Email         EmailConfig         `mapstructure:"email"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Environment    string     `mapstructure:"environment"`
	CORS           CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// SupabaseConfig points at the remote record store. ServiceRoleKey is
// preferred; AnonKey is the fallback for locked-down deployments.
type SupabaseConfig struct {
	URL            string `mapstructure:"url"`
	ServiceRoleKey string `mapstructure:"service_role_key"`
	AnonKey        string `mapstructure:"anon_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type EmailConfig struct {
	From string     `mapstructure:"from"`
	SMTP SMTPConfig `mapstructure:"smtp"`
}

type SMTPConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	UseTLS         bool   `mapstructure:"use_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type AuthConfig struct {
	// ResetCodeTTLMinutes bounds how long a password-reset code stays
	// valid. Defaults to 15.
	ResetCodeTTLMinutes int `mapstructure:"reset_code_ttl_minutes"`
}

// ResetCodeTTLMinutesOrDefault applies the 15 minute default.
func (c AuthConfig) ResetCodeTTLMinutesOrDefault() int {
	if c.ResetCodeTTLMinutes <= 0 {
		return 15
	}
	return c.ResetCodeTTLMinutes
}

type LoggingConfig struct {
	Level  string          `mapstructure:"level"`
	Format string          `mapstructure:"format"`
	Output LogOutputConfig `mapstructure:"output"`
}

type LogOutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   LogFileConfig `mapstructure:"file"`
}

type LogFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type ObservabilityConfig struct {
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Validate catches settings that would only fail deep inside a request.
// Supabase credentials are checked lazily by the client so that commands
// not touching the record store still run.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return apperr.Validation("server.port out of range")
	}
	if c.Email.SMTP.Host != "" && c.Email.From == "" {
		return apperr.MissingConfig("email.from")
	}
	return nil
}
