package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/spf13/cobra"
)

// Output formats.
const (
	formatJSON = "json"
	formatText = "text"
)

var (
	logLevel     string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "impactctl",
	Short: "Simulate near-Earth object impacts",
	Long: `impactctl estimates the consequences of a near-Earth object striking Earth:
impact energy and crater size, an illustrative trajectory, and the
environmental severity tier with its casualty and damage estimates.`,
	SilenceUsage: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		if outputFormat != formatJSON && outputFormat != formatText {
			return fmt.Errorf("unsupported format %q: must be %s or %s", outputFormat, formatJSON, formatText)
		}
		sharedobs.NewLogger(logLevel, "text")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", formatJSON, "Output format (json, text)")
}

func logger() *slog.Logger {
	return slog.Default().With("component", "impactctl")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
