package papertrade

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the simulator configuration, read from a YAML file with
// environment overrides. Every field has a usable default so the zero
// configuration (no file, no env) just works.
type Config struct {
	StateDir     string       `yaml:"state_dir"`
	StartingCash float64      `yaml:"starting_cash"`
	Feed         FeedConfig   `yaml:"feed"`
	Redis        RedisConfig  `yaml:"redis"`
	Server       ServerConfig `yaml:"server"`
}

type FeedConfig struct {
	IntervalSeconds int     `yaml:"interval_seconds"`
	BandPercent     float64 `yaml:"band_percent"`
}

// RedisConfig enables the shared quote table. With an empty Addr the
// simulator keeps quotes in process memory.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		StateDir:     ".papertrade",
		StartingCash: 10000,
		Feed:         FeedConfig{IntervalSeconds: 3, BandPercent: 2},
		Server:       ServerConfig{Addr: ":8087"},
	}
}

// LoadConfig reads the configuration file and applies environment
// overrides. A missing file is not an error: defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults
	case err != nil:
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %q: %w", path, err)
		}
	}

	if dir := os.Getenv("PAPERTRADE_STATE_DIR"); dir != "" {
		cfg.StateDir = dir
	}
	if cash := os.Getenv("PAPERTRADE_STARTING_CASH"); cash != "" {
		v, err := strconv.ParseFloat(cash, 64)
		if err != nil {
			return cfg, fmt.Errorf("PAPERTRADE_STARTING_CASH: %w", err)
		}
		cfg.StartingCash = v
	}
	if addr := os.Getenv("PAPERTRADE_REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("PAPERTRADE_REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("PAPERTRADE_REDIS_DB"); db != "" {
		if v, err := strconv.Atoi(db); err == nil {
			cfg.Redis.DB = v
		}
	}
	if addr := os.Getenv("PAPERTRADE_SERVER_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	if cfg.Feed.IntervalSeconds <= 0 {
		cfg.Feed.IntervalSeconds = 3
	}
	if cfg.Feed.BandPercent <= 0 {
		cfg.Feed.BandPercent = 2
	}
	return cfg, nil
}

// FeedInterval returns the feed cadence as a duration.
func (c Config) FeedInterval() time.Duration {
	return time.Duration(c.Feed.IntervalSeconds) * time.Second
}
