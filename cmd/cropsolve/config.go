package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/dataio"
	"github.com/cropsolve/cropsolve/solve"
	"github.com/cropsolve/cropsolve/solver"
	"github.com/cropsolve/cropsolve/solver/highs"
	"github.com/cropsolve/cropsolve/solver/simplex"
)

// solverFlags registers the flags shared by solve and demo.
func solverFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default: ./cropsolve.{yaml,toml,json})")
	fs.String("backend", "simplex", "LP engine: simplex or highs")
	fs.Float64("time-limit", 300, "solve time limit in seconds")
	fs.Float64("min-allocation", solve.DefaultMinAllocation, "smallest allocation kept in the plan, hectares")
	fs.String("out", "", "directory for solution files; empty prints the report only")
	fs.String("formats", "json,csv,xlsx", "comma-separated outputs written under --out")
	fs.BoolP("verbose", "v", false, "debug logging")
}

// parseFlags runs fs over args, folding --help into a clean exit and any
// other parse failure into a usage error.
func parseFlags(fs *pflag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return true, nil
		}

		return false, usageError(err.Error())
	}

	return false, nil
}

// loadConfig layers settings as flags > environment > config file > flag
// defaults on a fresh viper instance. Environment keys use the CROPSOLVE_
// prefix with dashes mapped to underscores.
func loadConfig(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix("CROPSOLVE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		return v, nil
	}

	v.SetConfigName("cropsolve")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

// newLogger builds the console logger. Verbose lowers the floor to debug.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

// solveOptions assembles solve.Options from the layered configuration.
func solveOptions(logger *zap.Logger, v *viper.Viper) (solve.Options, error) {
	backend, err := backendFor(v.GetString("backend"))
	if err != nil {
		return solve.Options{}, usageError(err.Error())
	}

	return solve.Options{
		TimeLimit:     secondsToDuration(v.GetFloat64("time-limit")),
		Backend:       backend,
		MinAllocation: v.GetFloat64("min-allocation"),
		Verbose:       v.GetBool("verbose"),
		OnProgress:    func(stage string) { logger.Info(stage) },
	}, nil
}

// secondsToDuration converts a fractional-seconds setting.
func secondsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}

// backendFor maps a configured name onto an engine.
func backendFor(name string) (solver.Solver, error) {
	switch name {
	case "", "simplex":
		return simplex.New(), nil
	case "highs":
		return highs.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (simplex or highs)", name)
	}
}

// loadProblem reads either a scenario folder or a problem document.
func loadProblem(path string) (*agro.Problem, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	if info.IsDir() {
		return dataio.LoadScenario(path)
	}

	return dataio.LoadProblemJSON(path)
}
