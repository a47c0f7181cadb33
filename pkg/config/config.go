package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cbodonnell/lumen/pkg/game/constants"
	"github.com/cbodonnell/lumen/pkg/game/types"
	"github.com/cbodonnell/lumen/pkg/log"
	"github.com/cbodonnell/lumen/pkg/skin"
	"gopkg.in/yaml.v3"
)

// Config holds the sync server configuration.
type Config struct {
	Port int `yaml:"port" env:"LUMEN_PORT"`
	// BindAddress is resolved from the network interfaces when empty
	BindAddress     string        `yaml:"bind_address" env:"LUMEN_BIND_ADDRESS"`
	SnapshotTimeout time.Duration `yaml:"snapshot_timeout" env:"LUMEN_SNAPSHOT_TIMEOUT"`
	TickInterval    time.Duration `yaml:"tick_interval" env:"LUMEN_TICK_INTERVAL"`
	QueueSize       int           `yaml:"queue_size" env:"LUMEN_QUEUE_SIZE"`
	MaxConnections  int           `yaml:"max_connections" env:"LUMEN_MAX_CONNECTIONS"`
	SkinFormat      string        `yaml:"skin_format" env:"LUMEN_SKIN_FORMAT"`
	LogLevel        string        `yaml:"log_level" env:"LUMEN_LOG_LEVEL"`
	Player          PlayerConfig  `yaml:"player" envPrefix:"LUMEN_PLAYER_"`
}

// PlayerConfig seeds the in-memory player served by the standalone binary.
type PlayerConfig struct {
	// SkinFile is a 64x64 or 64x32 PNG; no skin is served when empty
	SkinFile  string  `yaml:"skin_file" env:"SKIN_FILE"`
	Health    float64 `yaml:"health" env:"HEALTH"`
	MaxHealth float64 `yaml:"max_health" env:"MAX_HEALTH"`
	GameMode  string  `yaml:"game_mode" env:"GAME_MODE"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Port:            constants.SyncPort,
		SnapshotTimeout: constants.SnapshotTimeout,
		TickInterval:    constants.TickInterval,
		QueueSize:       constants.TaskQueueSize,
		MaxConnections:  constants.MaxConnections,
		SkinFormat:      skin.FormatPNG.String(),
		LogLevel:        log.LogLevelInfo.String(),
		Player: PlayerConfig{
			Health:    constants.PlayerMaxHealth,
			MaxHealth: constants.PlayerMaxHealth,
			GameMode:  types.GameModeSurvival.String(),
		},
	}
}

// Load builds the configuration from the defaults, the optional YAML file
// at path and then the LUMEN_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile overlays the YAML file at path onto cfg.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.BindAddress != "" && net.ParseIP(c.BindAddress) == nil {
		return fmt.Errorf("invalid bind address: %s", c.BindAddress)
	}
	if c.SnapshotTimeout <= 0 {
		return fmt.Errorf("snapshot timeout must be positive: %s", c.SnapshotTimeout)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive: %s", c.TickInterval)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("queue size must be positive: %d", c.QueueSize)
	}
	if c.MaxConnections <= 0 {
		return fmt.Errorf("max connections must be positive: %d", c.MaxConnections)
	}
	if _, err := skin.ParseFormat(c.SkinFormat); err != nil {
		return err
	}
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := types.ParseGameMode(c.Player.GameMode); err != nil {
		return err
	}
	if c.Player.Health < 0 || c.Player.MaxHealth < 0 {
		return fmt.Errorf("player health must not be negative")
	}
	return nil
}
