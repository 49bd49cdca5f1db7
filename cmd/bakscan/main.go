// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	xglog "github.com/ManuGH/bakscan/internal/log"
	"github.com/ManuGH/bakscan/internal/report"
	"github.com/ManuGH/bakscan/internal/scan"
)

var (
	version   = "v0.1.0"
	commit    = "none"
	buildDate = "unknown"
)

var (
	verbose    bool
	outputPath string
	extensions []string
)

// httpClient is shared by all probes; swappable in tests. The zero client
// follows redirects and carries no timeout beyond the transport defaults.
var httpClient = &http.Client{}

var rootCmd = &cobra.Command{
	Use:   "bakscan [flags] <url>",
	Short: "Detect leftover backup files on a web server",
	Long: `bakscan probes a URL for common backup-file suffixes (.bak, .old, ~, ...)
that editors and deployment tools leave behind. Candidates are built by
appending each suffix to the URL as given; any candidate answering 200 is
reported.

The URL comes first; positional arguments after it are treated as additional
extensions, so a space-separated list works with -e:

  bakscan http://example.com/app -e .bak .old .config`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runRoot,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) logging")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "file to save found URLs to, one per line")
	rootCmd.Flags().StringSliceVarP(&extensions, "extensions", "e", nil, "custom backup extensions; replaces the default list")
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	level := "info"
	if verbose {
		level = "debug"
	}
	xglog.Configure(xglog.Config{
		Level:   level,
		Service: "bakscan",
	})
	logger := xglog.WithComponent("cli")
	if verbose {
		logger.Debug().Msg("verbose mode enabled")
	}

	baseURL := args[0]
	if err := scan.ValidateURL(baseURL); err != nil {
		// Returned before any network activity; cobra reports the error
		// and main exits 1.
		return fmt.Errorf("invalid URL (include a scheme and host, e.g. http://example.com): %w", err)
	}

	extra := args[1:]
	if len(extra) > 0 && !cmd.Flags().Changed("extensions") {
		logger.Warn().
			Strs("extensions", extra).
			Msg("positional arguments after the URL replace the default extension list")
	}
	exts := resolveExtensions(extensions, extra)

	logger.Info().
		Str(xglog.FieldBaseURL, baseURL).
		Int("extensions", len(exts)).
		Str(xglog.FieldEvent, "scan.start").
		Msg("scanning URL")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runScan(ctx, httpClient, cmd.OutOrStdout(), xglog.WithComponent("scan"), baseURL, outputPath, exts)
	return nil
}

// resolveExtensions applies the override rule: any user-supplied extension,
// via -e or trailing positional arguments, fully replaces the default list.
func resolveExtensions(flagExts, extra []string) []string {
	custom := append(slices.Clone(flagExts), extra...)
	if len(custom) == 0 {
		return slices.Clone(scan.DefaultExtensions)
	}
	return custom
}

// runScan drives probe and reporting. A results-file failure is logged but
// never changes the exit status; console output is authoritative.
func runScan(ctx context.Context, client *http.Client, out io.Writer, logger zerolog.Logger, baseURL, outputPath string, exts []string) []string {
	scanner := scan.New(client, logger)
	found := scanner.Run(ctx, baseURL, exts)

	report.Console(out, found)

	if outputPath != "" && len(found) > 0 {
		if err := report.WriteFile(outputPath, found); err != nil {
			logger.Error().
				Err(err).
				Str(xglog.FieldPath, outputPath).
				Msg("failed to save results")
		} else {
			logger.Info().
				Str(xglog.FieldPath, outputPath).
				Msg("results saved")
		}
	}
	return found
}
