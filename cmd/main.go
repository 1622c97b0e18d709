// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"casetrace/internal/batch"
	"casetrace/internal/config"
	"casetrace/internal/core"
	"casetrace/internal/formatters"
	"casetrace/internal/observability"
	"casetrace/internal/suppressions"
	"casetrace/internal/version"

	_ "casetrace/internal/formatters/csv"
	_ "casetrace/internal/formatters/json"
	_ "casetrace/internal/formatters/text"
)

// configFlags holds command line flag values.
type configFlags struct {
	outputFormat     string
	confidenceLevels string
	checksToRun      string
	verbose          bool
	debug            bool
	noColor          bool
	suppressionFile  string
	workers          int
}

// finalConfiguration holds resolved configuration values.
type finalConfiguration struct {
	format           string
	confidenceLevels string
	checksToRun      string
	verbose          bool
	debug            bool
	noColor          bool
	suppressionFile  string
}

// loadConfiguration loads the configuration file or returns default config.
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// resolveConfiguration resolves final values from config file, profile, and
// command line flags, in that precedence order.
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	final.format = "text"
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	final.confidenceLevels = "all"
	if cfg != nil && cfg.Defaults.ConfidenceLevels != "" {
		final.confidenceLevels = cfg.Defaults.ConfidenceLevels
	}
	if activeProfile != nil && activeProfile.ConfidenceLevels != "" {
		final.confidenceLevels = activeProfile.ConfidenceLevels
	}
	if isFlagSet("confidence") && flags.confidenceLevels != "" {
		final.confidenceLevels = flags.confidenceLevels
	}

	final.checksToRun = "all"
	if cfg != nil && cfg.Defaults.Checks != "" {
		final.checksToRun = cfg.Defaults.Checks
	}
	if activeProfile != nil && activeProfile.Checks != "" {
		final.checksToRun = activeProfile.Checks
	}
	if isFlagSet("checks") && flags.checksToRun != "" {
		final.checksToRun = flags.checksToRun
	}

	final.verbose = false
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	final.debug = false
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if activeProfile != nil {
		final.debug = activeProfile.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	final.noColor = false
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	final.suppressionFile = ""
	if cfg != nil {
		final.suppressionFile = cfg.Defaults.SuppressionFile
	}
	if activeProfile != nil && activeProfile.SuppressionFile != "" {
		final.suppressionFile = activeProfile.SuppressionFile
	}
	if isFlagSet("suppressions") && flags.suppressionFile != "" {
		final.suppressionFile = flags.suppressionFile
	}

	return final
}

// isFlagSet checks whether a flag was explicitly provided on the command line.
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func main() {
	flags := &configFlags{}

	flag.StringVar(&flags.outputFormat, "format", "text", "Output format (text, json, csv)")
	flag.StringVar(&flags.confidenceLevels, "confidence", "all", "Confidence levels to display (high,medium,low or all)")
	flag.StringVar(&flags.checksToRun, "checks", "all", "Comma-separated checks to run (PERSON_NAME,ADDRESS,DATE,PHONE,IP_ADDRESS,EMAIL,CASE_ID,ACCOUNT or all)")
	flag.BoolVar(&flags.verbose, "verbose", false, "Show detailed findings")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.StringVar(&flags.suppressionFile, "suppressions", "", "Path to suppression rules file")
	flag.IntVar(&flags.workers, "workers", 0, "Concurrent analysis workers (0 = one per CPU)")
	configFile := flag.String("config", "", "Path to configuration file")
	profileName := flag.String("profile", "", "Named profile from the configuration file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	listProfiles := flag.Bool("list-profiles", false, "List configured profiles and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg := loadConfiguration(*configFile)

	if *listProfiles {
		for _, name := range cfg.ProfileNames() {
			profile, _ := cfg.GetProfile(name)
			fmt.Printf("%-12s %s\n", name, profile.Description)
		}
		return
	}

	var activeProfile *config.Profile
	if *profileName != "" {
		profile, err := cfg.GetProfile(*profileName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		activeProfile = profile
	}

	final := resolveConfiguration(cfg, activeProfile, flags)

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: casetrace [flags] <file>...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Piped output gets no ANSI styling regardless of flags.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	level := observability.LevelMetrics
	if final.debug {
		level = observability.LevelDebug
	}
	observer := observability.NewObserver(level, os.Stderr)

	var suppressionManager *suppressions.Manager
	if final.suppressionFile != "" {
		suppressionManager = suppressions.NewManager(final.suppressionFile)
	}

	analyzeCfg := core.AnalyzeConfig{
		Checks:             strings.Split(final.checksToRun, ","),
		Debug:              final.debug,
		Config:             cfg,
		Profile:            activeProfile,
		SuppressionManager: suppressionManager,
		Observer:           observer,
	}

	processor := batch.NewProcessor(flags.workers, observer)
	results, stats := processor.Process(files, analyzeCfg)

	var formatterResults []formatters.Result
	failed := false
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", r.Err)
			failed = true
			continue
		}
		formatterResults = append(formatterResults, formatters.Result{
			FilePath:   r.FilePath,
			Bundle:     r.Result.Bundle,
			Suppressed: r.Result.SuppressedEntries,
		})
	}

	options := formatters.Options{
		ConfidenceLevel: core.ParseConfidenceLevels(final.confidenceLevels),
		Verbose:         final.verbose,
		NoColor:         final.noColor,
	}

	output, err := formatters.Export(final.format, formatterResults, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)

	observer.Debug("batch complete",
		"processed", stats.ProcessedFiles,
		"skipped", stats.SkippedFiles,
		"failed", stats.FailedFiles,
	)

	if failed {
		os.Exit(1)
	}
}
