package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/dataio"
	"github.com/cropsolve/cropsolve/solve"
)

func runValidate(args []string) error {
	fs := pflag.NewFlagSet("validate", pflag.ContinueOnError)
	helped, err := parseFlags(fs, args)
	if helped || err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageError("usage: cropsolve validate <scenario-dir | problem.json>")
	}

	p, err := loadProblem(fs.Arg(0))
	if err != nil {
		return err
	}

	report := agro.Validate(p)
	for _, w := range report.Warnings {
		fmt.Println("warning:", w)
	}
	for _, e := range report.Errors {
		fmt.Println("error:", e)
	}
	if !report.OK() {
		return fmt.Errorf("%w: %d error(s)", solve.ErrInvalidProblem, len(report.Errors))
	}

	fmt.Printf("%s: ok, %d warning(s)\n", p.Name, len(report.Warnings))

	return nil
}

func runScenarios(args []string) error {
	fs := pflag.NewFlagSet("scenarios", pflag.ContinueOnError)
	fs.String("config", "", "config file (default: ./cropsolve.{yaml,toml,json})")
	fs.String("root", "scenarios", "directory scanned for scenario folders")
	helped, err := parseFlags(fs, args)
	if helped || err != nil {
		return err
	}

	v, err := loadConfig(fs)
	if err != nil {
		return err
	}
	root := v.GetString("root")

	names, err := dataio.Scenarios(root)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Printf("no scenarios under %s\n", root)

		return nil
	}

	for _, name := range names {
		p, err := dataio.LoadScenario(filepath.Join(root, name))
		if err != nil {
			fmt.Printf("%-20s (unreadable: %v)\n", name, err)

			continue
		}
		fmt.Printf("%-20s %d crops, %d parcels, %.1f ha\n",
			name, len(p.Crops), len(p.Parcels), p.TotalArea())
	}

	return nil
}

func runTemplate(args []string) error {
	fs := pflag.NewFlagSet("template", pflag.ContinueOnError)
	helped, err := parseFlags(fs, args)
	if helped || err != nil {
		return err
	}

	dir := "templates"
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}

	if err := dataio.WriteTemplates(dir); err != nil {
		return err
	}

	for _, name := range []string{
		dataio.CropsTemplateFile,
		dataio.ParcelsTemplateFile,
		dataio.ConstraintsTemplateFile,
	} {
		fmt.Println(filepath.Join(dir, name))
	}

	return nil
}
