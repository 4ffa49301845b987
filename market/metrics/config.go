package metrics

import (
	"fmt"
	"net"
	"time"

	"github.com/alt-research/cw-nft-market/market/core/utils"
)

const (
	DefaultMetricsPort           = 2112
	defaultMetricsHost           = "127.0.0.1"
	defaultMetricsUpdateInterval = 30 * time.Second
)

type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// How often the sender balance gauge is refreshed
	UpdateInterval time.Duration `yaml:"updateinterval"`
}

func (c *Config) WithEnv() {
	c.Host = utils.LookupEnvStr("MARKET_METRICS_HOST", c.Host)
	c.Port = int(utils.LookupEnvUint64("MARKET_METRICS_PORT", uint64(c.Port)))
	c.UpdateInterval = utils.LookupEnvDuration("MARKET_METRICS_UPDATE_INTERVAL", c.UpdateInterval)
}

// WithDefaults fills every field which is not set.
func (c *Config) WithDefaults() {
	if c.Host == "" {
		c.Host = defaultMetricsHost
	}
	if c.Port == 0 {
		c.Port = DefaultMetricsPort
	}
	if c.UpdateInterval == 0 {
		c.UpdateInterval = defaultMetricsUpdateInterval
	}
}

func (cfg *Config) Validate() error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Port)
	}

	ip := net.ParseIP(cfg.Host)
	if ip == nil {
		return fmt.Errorf("invalid host: %v", cfg.Host)
	}

	return nil
}

func (cfg *Config) Address() (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), nil
}

func DefaultConfig() *Config {
	return &Config{
		Port:           DefaultMetricsPort,
		Host:           defaultMetricsHost,
		UpdateInterval: defaultMetricsUpdateInterval,
	}
}
