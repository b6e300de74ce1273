package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and session settings.
type AuthConfig struct {
	// SessionSecret is the single shared HMAC key for signing session tokens.
	// One secret per process; no rotation, no per-user keys.
	SessionSecret string `mapstructure:"session_secret" validate:"required"`

	// TokenLifetimeMinutes bounds a token's signature validity. The window
	// slides in practice because every authenticated response re-issues.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// CookieName is the name of the cookie carrying the session token.
	CookieName string `mapstructure:"cookie_name" validate:"required"`
}
