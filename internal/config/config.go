package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/mmcdole/airdate/internal/domain"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Session SessionConfig `mapstructure:"session"`
	Auth    AuthConfig    `mapstructure:"auth"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig holds snapshot storage configuration
type StorageConfig struct {
	Path string `mapstructure:"path"` // BoltDB file; empty = memory only
	Key  string `mapstructure:"key"`  // Namespace key for the snapshot
}

// SessionConfig holds admin session behavior
type SessionConfig struct {
	RememberAdmin bool `mapstructure:"remember_admin"` // Keep admin flag across restarts
}

// AuthConfig holds the admin gate credentials
type AuthConfig struct {
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"password_hash"` // bcrypt; overrides Password when set
}

// UIConfig holds defaults used when seeding a fresh catalog
type UIConfig struct {
	Language string `mapstructure:"language"` // "it" or "en"
	Theme    string `mapstructure:"theme"`    // "dark" or "light"
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: filepath.Join(defaultDataPath(), "airdate.db"),
			Key:  "anime-release-store",
		},
		Auth: AuthConfig{
			Username: "admin",
			Password: "admin",
		},
		UI: UIConfig{
			Language: string(domain.DefaultLanguage),
			Theme:    string(domain.DefaultTheme),
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "airdate.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "airdate")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "airdate")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "airdate")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "airdate")
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("AIRDATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults must be registered for env overrides to reach Unmarshal
	d := DefaultConfig()
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.key", d.Storage.Key)
	v.SetDefault("session.remember_admin", d.Session.RememberAdmin)
	v.SetDefault("auth.username", d.Auth.Username)
	v.SetDefault("auth.password", d.Auth.Password)
	v.SetDefault("auth.password_hash", d.Auth.PasswordHash)
	v.SetDefault("ui.language", d.UI.Language)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.level", d.Logging.Level)
	return v
}

// Load reads configuration from file and environment. An empty path
// searches the default config directory and the working directory.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)
	return cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if _, err := domain.ParseLanguage(c.UI.Language); err != nil {
		return fmt.Errorf("ui.language: %w", err)
	}
	if _, err := domain.ParseTheme(c.UI.Theme); err != nil {
		return fmt.Errorf("ui.theme: %w", err)
	}
	if c.Auth.Username == "" {
		return fmt.Errorf("auth.username must not be empty")
	}
	return nil
}

// Language returns the configured default language.
func (c *Config) Language() domain.Language {
	lang, err := domain.ParseLanguage(c.UI.Language)
	if err != nil {
		return domain.DefaultLanguage
	}
	return lang
}

// Theme returns the configured default theme.
func (c *Config) Theme() domain.Theme {
	theme, err := domain.ParseTheme(c.UI.Theme)
	if err != nil {
		return domain.DefaultTheme
	}
	return theme
}

// Save writes the configuration to path, creating its directory.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("storage.key", cfg.Storage.Key)
	v.Set("session.remember_admin", cfg.Session.RememberAdmin)
	v.Set("auth.username", cfg.Auth.Username)
	v.Set("auth.password", cfg.Auth.Password)
	v.Set("auth.password_hash", cfg.Auth.PasswordHash)
	v.Set("ui.language", cfg.UI.Language)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
