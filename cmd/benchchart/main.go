// Package main provides the CLI entry point for benchchart-go.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/render"
)

var (
	configPath string
	outputDir  string
	backend    string
	schema     string
	logLevel   string
	dryRun     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "benchchart [input]",
		Short: "Render benchmark comparison charts from tabular timing data",
		Long: `benchchart-go reads a tab-separated (or xlsx) benchmark table and renders
one PNG per chart variant of every dataset.

Without an input argument the first .csv, .tsv or .xlsx file of the
working directory is used.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultLevel := os.Getenv("LOG_LEVEL")
	if defaultLevel == "" {
		defaultLevel = "info"
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the images (default: working directory)")
	rootCmd.Flags().StringVar(&backend, "backend", "", "Renderer: gg or gochart (default: gg)")
	rootCmd.Flags().StringVar(&schema, "schema", "", "Table layout: auto, v1, or v2 (default: auto)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", defaultLevel, "Log level: trace, debug, info, warn, error")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan and scale every chart without writing images")

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)

	config, err := benchchart.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// Flags override the configuration file
	if outputDir != "" {
		config.OutputDir = outputDir
	}
	if backend != "" {
		config.Backend = backend
	}
	if schema != "" {
		if _, err := benchchart.ParseSchema(schema); err != nil {
			return err
		}
		config.Schema = schema
	}
	if config.Backend != render.BackendGG && config.Backend != render.BackendGoChart {
		return fmt.Errorf("invalid backend: %s (must be %s or %s)", config.Backend, render.BackendGG, render.BackendGoChart)
	}

	input := ""
	if len(args) > 0 {
		input = args[0]
	} else {
		input, err = benchchart.Discover(".")
		if err != nil {
			return err
		}
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	opts, err := config.Options()
	if err != nil {
		return err
	}
	opts.DryRun = dryRun

	result, err := benchchart.Generate(input, opts)
	if err != nil {
		return fmt.Errorf("chart generation failed: %w", err)
	}

	for _, path := range result.Images {
		fmt.Println(path)
	}
	return nil
}
