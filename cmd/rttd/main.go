// rttd runs the ranging broker against the simulated radio: the bring-up
// shell for the service before a transport surface is attached.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/openrtt/rttd/clients"
	"github.com/openrtt/rttd/config"
	"github.com/openrtt/rttd/metrics"
	"github.com/openrtt/rttd/permissions"
	"github.com/openrtt/rttd/radio"
	"github.com/openrtt/rttd/rtt"
)

var (
	cfg        = config.DefaultConfig()
	configPath string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:           "rttd",
		Short:         "Wi-Fi round-trip-time ranging daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := parseConfig(cmd); err != nil {
				return err
			}
			return run(cmd.Context())
		},
	}
	c.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"load configuration from file")
	c.PersistentFlags().String("log-level", cfg.LogLevel, "minimum log level")
	c.PersistentFlags().Bool("json-log", cfg.JSONLog, "log as JSON instead of plain text")
	c.PersistentFlags().Bool("metrics", cfg.CollectMetrics, "collect daemon metrics")
	c.PersistentFlags().Int("metrics-port", cfg.MetricsPort, "metrics server port")
	c.PersistentFlags().Duration("demo-interval", cfg.DemoInterval,
		"issue a demo ranging request at this interval (0 disables)")
	return c
}

func parseConfig(cmd *cobra.Command) error {
	vip := viper.New()
	if configPath != "" {
		if err := config.LoadConfig(configPath, vip); err != nil {
			return err
		}
	}
	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := vip.Unmarshal(&cfg, viper.DecodeHook(hook)); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func run(ctx context.Context) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.CollectMetrics {
		metrics.StartCollectingMetrics(cfg.MetricsPort, logger.Named("metrics"))
	}

	registry := clients.New(clients.WithLogger(logger.Named("clients")))
	defer registry.Close()
	perms := permissions.NewAllowList(cfg.AllowedUIDs...)

	hal := radio.NewSimulated(
		radio.SimWithLogger(logger.Named("hal")),
		radio.SimWithLatency(cfg.Simulator.Latency),
		radio.SimWithLossRate(cfg.Simulator.LossRate),
	)
	ctrl := radio.NewController(hal, radio.WithLogger(logger.Named("radio")))
	broker := rtt.New(ctrl, perms, registry,
		rtt.WithLogger(logger.Named("broker")),
		rtt.WithConfig(cfg.RTT),
	)
	ctrl.SetHandler(broker)
	broker.Start()
	defer broker.Stop()

	logger.Info("rttd started", zap.Object("config", &cfg.RTT))

	var eg errgroup.Group
	if cfg.DemoInterval > 0 {
		eg.Go(func() error {
			demoLoop(ctx, logger.Named("demo"), broker, perms)
			return nil
		})
	}
	<-ctx.Done()
	eg.Wait()
	logger.Info("rttd shutting down")
	return nil
}

func buildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if !cfg.JSONLog {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	return zcfg.Build()
}

const demoUID = 4242

// demoLoop plays the role of a connected client so the full
// submit/reconcile/deliver path can be observed without real hardware.
func demoLoop(ctx context.Context, logger *zap.Logger, broker *rtt.Broker, perms *permissions.AllowList) {
	perms.Grant(demoUID)
	caller := rtt.Identity{UID: demoUID, Package: "rttd.demo"}
	request := rtt.RangingRequest{Peers: []rtt.Peer{
		{
			Addr:         net.HardwareAddr{0x02, 0x11, 0x22, 0x33, 0x44, 0x55},
			TwoSided:     true,
			FrequencyMhz: 5180,
			Width:        rtt.Width80,
		},
		{
			Addr:         net.HardwareAddr{0x02, 0x11, 0x22, 0x33, 0x44, 0x66},
			FrequencyMhz: 2437,
			Width:        rtt.Width20,
		},
	}}

	ticker := time.NewTicker(cfg.DemoInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			err := broker.StartRanging(ctx, caller, request, &logSink{log: logger}, ctxHandle{ctx})
			if err != nil {
				logger.Warn("demo request rejected", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

type logSink struct {
	log *zap.Logger
}

func (s *logSink) Deliver(status rtt.Status, results rtt.ResultSet) error {
	s.log.Info("ranging delivery",
		zap.String("status", status.String()),
		zap.Array("results", zapcore.ArrayMarshalerFunc(func(enc zapcore.ArrayEncoder) error {
			for i := range results {
				if err := enc.AppendObject(&results[i]); err != nil {
					return err
				}
			}
			return nil
		})),
	)
	return nil
}

type ctxHandle struct {
	ctx context.Context
}

func (h ctxHandle) Done() <-chan struct{} {
	return h.ctx.Done()
}
