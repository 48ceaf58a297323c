// Package config loads client settings from defaults, an optional config
// file, QUOTES_* environment variables and command-line flags.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iudanet/quotesync/internal/client/conflict"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/validation"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "QUOTES"

// DefaultEndpoint is the public JSONPlaceholder posts feed
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/posts"

// Config holds the client configuration
type Config struct {
	Endpoint string       `mapstructure:"endpoint"`
	DBPath   string       `mapstructure:"db"`
	Offline  bool         `mapstructure:"offline"`
	Log      LogConfig    `mapstructure:"log"`
	Sync     SyncConfig   `mapstructure:"sync"`
	Daemon   DaemonConfig `mapstructure:"daemon"`
}

// LogConfig настройки логирования
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text | json
	File   string `mapstructure:"file"`   // пусто - stderr
}

// SyncConfig настройки синхронизации
type SyncConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Interval      time.Duration `mapstructure:"interval"`
	Policy        string        `mapstructure:"policy"`
	FetchLimit    int           `mapstructure:"fetch_limit"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
	ProbeInterval time.Duration `mapstructure:"probe_interval"`
}

// DaemonConfig настройки фонового процесса
type DaemonConfig struct {
	Addr     string `mapstructure:"addr"`
	InboxDir string `mapstructure:"inbox_dir"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	return &Config{
		Endpoint: DefaultEndpoint,
		DBPath:   "quotes.db",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Sync: SyncConfig{
			Enabled:       true,
			Interval:      30 * time.Second,
			Policy:        conflict.DefaultPolicy.String(),
			FetchLimit:    10,
			FetchTimeout:  30 * time.Second,
			ProbeInterval: 15 * time.Second,
		},
		Daemon: DaemonConfig{
			Addr:     "127.0.0.1:7420",
			InboxDir: "inbox",
		},
	}
}

// SetDefaults registers every default in v so that env and file values can override them
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("db", d.DBPath)
	v.SetDefault("offline", d.Offline)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("sync.enabled", d.Sync.Enabled)
	v.SetDefault("sync.interval", d.Sync.Interval)
	v.SetDefault("sync.policy", d.Sync.Policy)
	v.SetDefault("sync.fetch_limit", d.Sync.FetchLimit)
	v.SetDefault("sync.fetch_timeout", d.Sync.FetchTimeout)
	v.SetDefault("sync.probe_interval", d.Sync.ProbeInterval)
	v.SetDefault("daemon.addr", d.Daemon.Addr)
	v.SetDefault("daemon.inbox_dir", d.Daemon.InboxDir)
}

// Load reads the configuration. When file is empty, quotes.{yaml,toml,json} is
// looked up in the working directory and in $HOME/.config/quotesync; a missing
// file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("quotes")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "quotesync"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be used as is
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("config: endpoint must not be empty")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("config: db path must not be empty")
	}
	if err := validation.ValidateSyncInterval(c.Sync.Interval); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := conflict.ParsePolicy(c.Sync.Policy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Sync.FetchLimit <= 0 {
		return fmt.Errorf("config: sync.fetch_limit must be positive")
	}
	if c.Sync.FetchTimeout <= 0 {
		return fmt.Errorf("config: sync.fetch_timeout must be positive")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

// ApplyStored overrides sync settings with the values persisted through the
// client commands. Values that were never persisted keep the configured ones.
func (c *Config) ApplyStored(ctx context.Context, md storage.MetadataStorage) error {
	enabled, ok, err := md.GetSyncEnabled(ctx)
	if err != nil {
		return fmt.Errorf("load sync enabled: %w", err)
	}
	if ok {
		c.Sync.Enabled = enabled
	}

	policy, err := md.GetConflictStrategy(ctx)
	if err != nil {
		return fmt.Errorf("load conflict policy: %w", err)
	}
	if p, err := conflict.ParsePolicy(policy); policy != "" && err == nil {
		c.Sync.Policy = p.String()
	}

	interval, err := md.GetSyncInterval(ctx)
	if err != nil {
		return fmt.Errorf("load sync interval: %w", err)
	}
	if interval > 0 && validation.ValidateSyncInterval(interval) == nil {
		c.Sync.Interval = interval
	}
	return nil
}

// ConflictPolicy returns the parsed sync policy
func (c *Config) ConflictPolicy() conflict.Policy {
	p, err := conflict.ParsePolicy(c.Sync.Policy)
	if err != nil {
		return conflict.DefaultPolicy
	}
	return p
}
