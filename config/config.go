// Package config contains the daemon configuration and the logic to load it
// from a file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/openrtt/rttd/rtt"
)

const defaultConfigFileName = "./config.toml"

// Config is the top-level daemon configuration.
type Config struct {
	LogLevel       string `mapstructure:"log-level"`
	JSONLog        bool   `mapstructure:"json-log"`
	CollectMetrics bool   `mapstructure:"metrics"`
	MetricsPort    int    `mapstructure:"metrics-port"`

	// AllowedUIDs seeds the location-permission allowlist.
	AllowedUIDs []uint32 `mapstructure:"allowed-uids"`

	// DemoInterval enables a built-in client that issues a ranging request
	// against the simulated radio at this interval. Zero disables it.
	DemoInterval time.Duration `mapstructure:"demo-interval"`

	RTT       rtt.Config      `mapstructure:"rtt"`
	Simulator SimulatorConfig `mapstructure:"simulator"`
}

// SimulatorConfig tunes the simulated radio backing the daemon.
type SimulatorConfig struct {
	Latency  time.Duration `mapstructure:"latency"`
	LossRate float64       `mapstructure:"loss-rate"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		MetricsPort: 9090,
		RTT:         rtt.DefaultConfig(),
		Simulator: SimulatorConfig{
			Latency: 100 * time.Millisecond,
		},
	}
}

// LoadConfig reads the config file into vip, falling back to the default
// location when fileLocation is empty.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		fileLocation = defaultConfigFileName
	}

	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", fileLocation, err)
	}
	return nil
}
