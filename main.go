package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/AirHelp/numstats/config"
	"github.com/AirHelp/numstats/handler"
	log "github.com/AirHelp/numstats/logger"
	"github.com/AirHelp/numstats/metrics"
	"github.com/AirHelp/numstats/server"
	"github.com/AirHelp/numstats/usage"
	usageRedis "github.com/AirHelp/numstats/usage/redis"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.Version {
		fmt.Println(versionString())
		os.Exit(0)
	}

	logger := log.InitLogger(cfg.Environment, cfg.Verbose)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		zap.S().Errorf("numstats stopped with error: %v", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logger := zap.S()

	logger.Infof("numstats starting, version: %v", strings.TrimSpace(version))

	if cfg.Verbose {
		logger.Info("Starting numstats with verbose logging mode")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	undoMaxprocs, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debugf(strings.TrimPrefix(format, "maxprocs: "), args...)
	}))
	if err != nil {
		logger.Warnf("failed to set GOMAXPROCS: %v", err)
	}
	defer undoMaxprocs()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	var recorder usage.Recorder = usage.Noop{}

	if cfg.UsageEnabled() {
		logger.Debug("Initializing redis usage recorder")

		redisRecorder, err := usageRedis.New(ctx, &usageRedis.Config{
			Hosts:     cfg.Redis.Hosts,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize redis usage recorder: %w", err)
		}
		defer redisRecorder.Close()

		recorder = redisRecorder
		logger.Debug("Done initializing redis usage recorder")
	}

	handlerConfig := handler.Config{Recorder: recorder}
	serverConfig := server.Config{
		Address:         cfg.ListenAddress,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}

	if cfg.MetricsEnabled() {
		m, err := metrics.New()
		if err != nil {
			return fmt.Errorf("failed to initialize metrics: %w", err)
		}

		handlerConfig.Observer = m
		serverConfig.Metrics = m
		serverConfig.MetricsAddress = cfg.MetricsAddress
		logger.Infof("Serving metrics on %v", cfg.MetricsAddress)
	}

	serverConfig.Handler = handler.NewStatistics(handlerConfig)
	srv := server.New(serverConfig)

	if err := srv.Run(ctx); err != nil {
		return err
	}

	logger.Info("Received shutdown, shut down")

	return nil
}
