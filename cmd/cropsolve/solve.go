package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/analyze"
	"github.com/cropsolve/cropsolve/dataio"
	"github.com/cropsolve/cropsolve/sample"
	"github.com/cropsolve/cropsolve/solve"
)

func runSolve(args []string) error {
	fs := pflag.NewFlagSet("solve", pflag.ContinueOnError)
	solverFlags(fs)
	helped, err := parseFlags(fs, args)
	if helped || err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageError("usage: cropsolve solve [flags] <scenario-dir | problem.json>")
	}

	v, err := loadConfig(fs)
	if err != nil {
		return err
	}

	p, err := loadProblem(fs.Arg(0))
	if err != nil {
		return err
	}

	return solveAndReport(v, p)
}

func runDemo(args []string) error {
	fs := pflag.NewFlagSet("demo", pflag.ContinueOnError)
	solverFlags(fs)
	helped, err := parseFlags(fs, args)
	if helped || err != nil {
		return err
	}

	name := "basic"
	if fs.NArg() > 0 {
		name = fs.Arg(0)
	}
	p, ok := sample.All()[name]
	if !ok {
		return usageError(fmt.Sprintf("unknown sample %q (basic, intermediate, advanced)", name))
	}

	v, err := loadConfig(fs)
	if err != nil {
		return err
	}

	return solveAndReport(v, p)
}

// solveAndReport runs the pipeline, prints the text report and writes the
// configured output files. Interrupts cancel the solve.
func solveAndReport(v *viper.Viper, p *agro.Problem) error {
	logger := newLogger(v.GetBool("verbose"))
	defer func() { _ = logger.Sync() }()

	opts, err := solveOptions(logger, v)
	if err != nil {
		return err
	}

	logger.Info("solving",
		zap.String("problem", p.Name),
		zap.String("backend", opts.Backend.Name()),
		zap.Int("crops", len(p.Crops)),
		zap.Int("parcels", len(p.Parcels)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sol, err := solve.Run(ctx, p, opts)
	if err != nil {
		return err
	}

	fmt.Println(analyze.Report(p, sol))

	return writeOutputs(logger, v, p, sol)
}

// writeOutputs materializes the requested formats under --out. An empty
// --out keeps the run report-only.
func writeOutputs(logger *zap.Logger, v *viper.Viper, p *agro.Problem, sol *solve.Solution) error {
	out := v.GetString("out")
	if out == "" {
		return nil
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	base := filepath.Join(out, slug(p.Name))
	for _, format := range strings.Split(v.GetString("formats"), ",") {
		switch strings.TrimSpace(format) {
		case "json":
			path := base + "_solution.json"
			if err := dataio.SaveSolutionJSON(path, p, sol); err != nil {
				return err
			}
			logger.Info("wrote solution", zap.String("path", path))
		case "csv":
			paths, err := dataio.ExportCSV(base, p, sol)
			if err != nil {
				return err
			}
			logger.Info("wrote tables", zap.Strings("paths", paths))
		case "xlsx":
			path := base + "_report.xlsx"
			if err := dataio.ExportXLSX(path, p, sol); err != nil {
				return err
			}
			logger.Info("wrote workbook", zap.String("path", path))
		case "":
		default:
			return usageError(fmt.Sprintf("unknown output format %q", format))
		}
	}

	return nil
}

// slug turns a problem name into a safe file stem.
func slug(name string) string {
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}

		return '_'
	}, strings.ToLower(name))

	mapped = strings.Trim(mapped, "_")
	if mapped == "" {
		return "problem"
	}

	return mapped
}
