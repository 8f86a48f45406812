package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/salestrace/salestrace/internal/logger"
)

type Config struct {
	Endpoint string        `toml:"endpoint"`
	Port     string        `toml:"port"`
	Cache    Cache         `toml:"cache"`
	Logger   logger.Config `toml:"logger"`
}

type Cache struct {
	StaleAfter  duration `toml:"stale_after"`
	ExpireAfter duration `toml:"expire_after"`
}

// duration lets TOML values like "5m" decode into a time.Duration.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

const (
	defaultEndpoint    = "https://bold-fe-api.vercel.app/api"
	defaultPort        = "8080"
	defaultStaleAfter  = 5 * time.Minute
	defaultExpireAfter = 10 * time.Minute
	defaultLogLevel    = logger.LevelInfo
	defaultLogFormat   = logger.FormatText
	defaultLogOutput   = "stdout"
)

func (c *Config) applyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = defaultEndpoint
	}

	if c.Port == "" {
		c.Port = defaultPort
	}

	if c.Cache.StaleAfter.Duration == 0 {
		c.Cache.StaleAfter.Duration = defaultStaleAfter
	}

	if c.Cache.ExpireAfter.Duration == 0 {
		c.Cache.ExpireAfter.Duration = defaultExpireAfter
	}

	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}

	if c.Logger.Format == "" {
		c.Logger.Format = defaultLogFormat
	}

	if c.Logger.Output == "" {
		c.Logger.Output = defaultLogOutput
	}
}

func (c *Config) parseEnv() {
	if endpoint := os.Getenv("SALESTRACE_ENDPOINT"); endpoint != "" {
		c.Endpoint = endpoint
	}

	if port := os.Getenv("SALESTRACE_PORT"); port != "" {
		c.Port = port
	}

	if level := os.Getenv("SALESTRACE_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("SALESTRACE_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("SALESTRACE_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}
}

// Parse reads the TOML configuration file, applies environment overrides
// and fills in defaults. A missing file is not an error; env and defaults
// still apply.
func Parse(file string) (*Config, error) {
	conf := &Config{}

	bytes, err := os.ReadFile(file)
	if err == nil {
		if unmarshalErr := toml.Unmarshal(bytes, conf); unmarshalErr != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", file, unmarshalErr)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	conf.parseEnv()
	conf.applyDefaults()

	return conf, nil
}
