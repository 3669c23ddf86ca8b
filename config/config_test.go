package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func unmarshal(t *testing.T, vip *viper.Viper, cfg *Config) {
	t.Helper()
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	require.NoError(t, vip.Unmarshal(cfg, viper.DecodeHook(hook)))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log-level = "debug"
json-log = true
metrics = true
metrics-port = 9100
allowed-uids = [1000, 1001]
demo-interval = "2s"

[rtt]
ranging-timeout = "10s"
recent-history = 64

[simulator]
latency = "250ms"
loss-rate = 0.1
`), 0o600))

	vip := viper.New()
	require.NoError(t, LoadConfig(path, vip))

	cfg := DefaultConfig()
	unmarshal(t, vip, &cfg)

	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.JSONLog)
	require.True(t, cfg.CollectMetrics)
	require.Equal(t, 9100, cfg.MetricsPort)
	require.Equal(t, []uint32{1000, 1001}, cfg.AllowedUIDs)
	require.Equal(t, 2*time.Second, cfg.DemoInterval)
	require.Equal(t, 10*time.Second, cfg.RTT.RangingTimeout)
	require.Equal(t, 64, cfg.RTT.RecentHistory)
	require.Equal(t, 250*time.Millisecond, cfg.Simulator.Latency)
	require.Equal(t, 0.1, cfg.Simulator.LossRate)
}

func TestLoadConfigMissingFile(t *testing.T) {
	vip := viper.New()
	err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"), vip)
	require.Error(t, err)
}

func TestDefaultsSurvivePartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log-level = "warn"`), 0o600))

	vip := viper.New()
	require.NoError(t, LoadConfig(path, vip))

	cfg := DefaultConfig()
	unmarshal(t, vip, &cfg)

	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 9090, cfg.MetricsPort)
	require.Equal(t, 5*time.Second, cfg.RTT.RangingTimeout)
	require.Equal(t, 100*time.Millisecond, cfg.Simulator.Latency)
}
