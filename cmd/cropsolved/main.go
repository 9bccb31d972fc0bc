// Command cropsolved serves the solve pipeline over HTTP. Configuration
// layers as flags > environment (CROPSOLVED_*, optionally from .env) >
// config file > defaults; shutdown is graceful on SIGINT and SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cropsolve/cropsolve/httpapi"
	"github.com/cropsolve/cropsolve/runner"
)

const shutdownGrace = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cropsolved:", err)
		os.Exit(1)
	}
}

func run() error {
	fs := pflag.NewFlagSet("cropsolved", pflag.ContinueOnError)
	fs.String("config", "", "config file (default: ./cropsolved.{yaml,toml,json})")
	fs.String("addr", ":8080", "listen address")
	fs.Int("pool-size", 4, "maximum concurrent solves")
	fs.StringSlice("scenario-roots", nil, "directories the scenarios endpoint may read")
	fs.Float64("time-limit-cap", 300, "upper bound on per-request solve time, seconds")
	fs.Bool("dev", false, "console logging instead of production JSON")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return err
	}

	// .env feeds the environment before viper reads it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	v, err := loadConfig(fs)
	if err != nil {
		return err
	}

	logger, err := newLogger(v.GetBool("dev"))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	pool := runner.New(v.GetInt("pool-size"),
		runner.WithLogger(logger),
		runner.WithMetrics(reg))

	srv := httpapi.New(pool, httpapi.Config{
		ScenarioRoots: v.GetStringSlice("scenario-roots"),
		TimeLimitCap:  time.Duration(v.GetFloat64("time-limit-cap") * float64(time.Second)),
		Logger:        logger,
		Metrics:       reg,
	})

	httpServer := &http.Server{
		Addr:              v.GetString("addr"),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", httpServer.Addr),
			zap.Int("pool_size", v.GetInt("pool-size")))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	grace, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(grace); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	if err := pool.Shutdown(grace); err != nil {
		return fmt.Errorf("drain pool: %w", err)
	}
	logger.Info("stopped")

	return nil
}

// loadConfig layers settings as flags > environment > config file > flag
// defaults. Environment keys use the CROPSOLVED_ prefix with dashes
// mapped to underscores.
func loadConfig(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix("CROPSOLVED")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		return v, nil
	}

	v.SetConfigName("cropsolved")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

// newLogger builds the service logger: production JSON by default,
// console in dev mode.
func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
