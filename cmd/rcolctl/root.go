package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	strict     bool
	configPath string

	// Set by setup before any command runs.
	cfg    = defaultConfig()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "rcolctl",
	Short: "Inspect and rewrite RCOL chunk containers",
	Long: `rcolctl decodes RCOL chunk containers, lists their chunks and resource
keys, extracts chunk bodies, verifies that files survive a decode/encode
round trip, and moves containers in and out of a resource store.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject files whose redundant fields disagree")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (yaml, json or toml)")
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup() error {
	c, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if strict {
		c.Parse.Mode = "strict"
	}
	switch {
	case verbose:
		c.Log.Level = "debug"
	case quiet:
		c.Log.Level = "error"
	}

	l, err := newLogger(c.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	cfg = c
	logger = l
	logger.Debug("configuration loaded",
		zap.String("config", configPath),
		zap.String("mode", c.Parse.Mode),
		zap.String("key_order", c.Parse.KeyOrder),
		zap.String("store", c.Store.Backend),
	)
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// formatSize renders a byte count the way the info output shows it.
func formatSize(size int) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
