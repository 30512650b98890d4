package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/passcheck/passcheck/internal/analyzer"
	"github.com/passcheck/passcheck/internal/config"
	"github.com/passcheck/passcheck/internal/input"
	"github.com/passcheck/passcheck/internal/log"
	"github.com/passcheck/passcheck/internal/report"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [password]...",
		Short: "Analyze password strength against brute-force attacks",
		Long: `Check analyzes the character composition of one or more passwords and
estimates the time a brute-force attacker would need to break them.

Without arguments it prompts interactively, with input masked, asks for
the password twice, and confirms before running the analysis. Passwords
passed as arguments or via --list skip the interactive flow.

The analysis covers:
- Character classes in use (digits, letters, three symbol tiers)
- Estimated brute-force search space and break time
- Security tier from VERY WEAK to VERY STRONG
- Ordered suggestions to strengthen the password

Examples:
  # Analyze interactively with masked input
  passcheck check

  # Analyze without masking and without the confirmation gate
  passcheck check --show --yes

  # Analyze passwords given as arguments (visible in shell history!)
  passcheck check 'Tr0ub4dor&3' 'hunter2'

  # Audit a newline-separated password list concurrently
  passcheck check --list passwords.txt

  # Assume a slower attacker (1000 guesses per second)
  passcheck check --hash-rate 1000

  # Output a JSON report to a file
  passcheck check --json --output report.json

Configuration file (.passcheck.yaml) example:
  hash_rate: 1000000
  thresholds: [60, 86400, 31536000, 3153600000]
  batch: 20`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	// Interactive behavior flags
	cmd.Flags().BoolP("show", "s", false,
		"Show the password while typing instead of masking it")
	cmd.Flags().BoolP("yes", "y", false,
		"Skip the confirmation prompt before analyzing")

	// Batch audit flags
	cmd.Flags().StringP("list", "l", "",
		"Audit a newline-separated password list from the given file")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses in list mode")

	// Attacker model flags
	cmd.Flags().Float64P("hash-rate", "r", config.DefaultHashRate,
		"Assumed attacker throughput in guesses per second")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .passcheck.yaml in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the given file in addition to stdout")
	cmd.Flags().Bool("no-color", false,
		"Disable colored output in the human-readable report")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	// Build config from the config file and flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential redaction
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCheck(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file and cobra flags.
// File values override the built-in defaults, and flags the user actually
// set override the file, so precedence is flags > file > defaults.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load tunables from the config file.
	// If the user explicitly specified a config file path, error if not
	// found. If no path specified, silently keep the defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags override the file only when the user actually set them, so a
	// file-provided hash rate survives the flag default.
	if cmd.Flags().Changed("hash-rate") {
		cfg.HashRate, err = cmd.Flags().GetFloat64("hash-rate")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("batch") {
		cfg.BatchSize, err = cmd.Flags().GetInt("batch")
		if err != nil {
			return nil, err
		}
	}

	cfg.ShowPassword, err = cmd.Flags().GetBool("show")
	if err != nil {
		return nil, err
	}

	cfg.SkipConfirm, err = cmd.Flags().GetBool("yes")
	if err != nil {
		return nil, err
	}

	cfg.ListFile, err = cmd.Flags().GetString("list")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.NoColor, err = cmd.Flags().GetBool("no-color")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are candidate passwords
	cfg.Passwords = args

	return cfg, nil
}

// runCheck executes the analysis in one of three modes: interactive
// prompt, positional arguments, or list audit.
func runCheck(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.ListFile != "" && len(cfg.Passwords) > 0 {
		return errors.New("cannot combine --list with password arguments")
	}

	a, err := analyzer.New(cfg, analyzer.WithLogger(logger))
	if err != nil {
		return err
	}

	writer, cleanup, err := newReportWriter(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	switch {
	case cfg.ListFile != "":
		return runListAudit(ctx, cfg, a, writer, logger)
	case len(cfg.Passwords) > 0:
		return runArgsCheck(ctx, cfg, a, writer, logger)
	default:
		return runInteractiveCheck(cfg, a, writer)
	}
}

// runInteractiveCheck prompts for a password on the terminal, confirms,
// and analyzes it.
func runInteractiveCheck(cfg *config.Config, a *analyzer.Analyzer, writer report.Writer) error {
	prompter := input.NewTerminalPrompter(!cfg.ShowPassword)

	password, err := prompter.CollectPassword()
	if err != nil {
		return err
	}

	if !cfg.SkipConfirm {
		ok, err := prompter.Confirm("Analyze this password now?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Analysis cancelled.")
			return nil
		}
	}

	result, err := a.Analyze(password)
	if err != nil {
		return err
	}

	_, err = writer.Write(result)
	return err
}

// runArgsCheck analyzes the passwords given as positional arguments, one
// after another. A failing argument is reported and does not stop the
// remaining ones, but the command exits non-zero.
func runArgsCheck(ctx context.Context, cfg *config.Config, a *analyzer.Analyzer, writer report.Writer, logger *slog.Logger) error {
	var failed int

	for i, password := range cfg.Passwords {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := a.Analyze(password)
		if err != nil {
			failed++
			logger.Error("analysis failed", "index", i+1, "error", err)
			fmt.Fprintf(os.Stderr, "Analysis error for argument %d: %v\n", i+1, err)
			continue
		}

		if _, err := writer.Write(result); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d passwords could not be analyzed", failed, len(cfg.Passwords))
	}
	return nil
}

// runListAudit reads a newline-separated password list and analyzes the
// entries concurrently. Entries that fail analysis produce a failure
// report instead of aborting the audit.
func runListAudit(ctx context.Context, cfg *config.Config, a *analyzer.Analyzer, writer report.Writer, logger *slog.Logger) error {
	f, err := os.Open(cfg.ListFile) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return fmt.Errorf("failed to open password list: %w", err)
	}
	defer f.Close()

	passwords, err := input.ReadList(f)
	if err != nil {
		return err
	}
	if len(passwords) == 0 {
		return fmt.Errorf("password list is empty: %s", cfg.ListFile)
	}

	bp := analyzer.NewBatchProcessor(a,
		analyzer.WithConcurrency(cfg.BatchSize),
		analyzer.WithBatchLogger(logger),
	)

	results, err := bp.ProcessBatch(ctx, passwords)
	if err != nil {
		return err
	}

	for _, result := range results {
		if _, err := writer.Write(result); err != nil {
			return err
		}
	}

	return nil
}

// newReportWriter builds the report writer chain for the requested format
// and destinations. When an output file is configured, reports go to both
// stdout and the file; the file copy never contains color codes. The
// returned cleanup closes the file and must be called even on error paths.
func newReportWriter(cfg *config.Config) (report.Writer, func(), error) {
	cleanup := func() {}

	writers := []report.Writer{formatWriter(cfg, os.Stdout, !cfg.NoColor)}

	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, cleanup, fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports describe password weaknesses, so keep them owner-readable only
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create output file: %w", err)
		}
		cleanup = func() { _ = f.Close() } //nolint:errcheck // Best effort cleanup

		writers = append(writers, formatWriter(cfg, f, false))
	}

	if len(writers) == 1 {
		return writers[0], cleanup, nil
	}
	return report.NewMultiWriter(writers...), cleanup, nil
}

// formatWriter builds a single writer for the configured report format.
func formatWriter(cfg *config.Config, out io.Writer, colored bool) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(out, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out)
	default:
		return report.NewSimpleWriter(out,
			report.WithColor(colored),
			report.WithVerbose(cfg.Verbose),
		)
	}
}
