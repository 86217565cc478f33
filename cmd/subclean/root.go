package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subclean/internal/cleaner"
	"subclean/internal/config"
	"subclean/internal/failure"
	"subclean/internal/logging"
)

const version = "0.0.1"

type cleanOptions struct {
	flags        cleaner.Flags
	reportFormat string
	logLevel     string
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var opts cleanOptions

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "subclean -i FILE [-o FILE | -r] [-e ENCODING]",
		Short:         "Trim, prune and renumber SRT subtitles, saving them as UTF-8",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, ctx, opts)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.flags.InputFilename, "input-filename", "i", "", "Input SRT file")
	flags.StringVarP(&opts.flags.OutputFilename, "output-filename", "o", "", "Output file path (default: prefixed copy next to the input)")
	flags.StringVarP(&opts.flags.Encoding, "encoding", "e", "", "Input encoding; skips autodetection")
	flags.BoolVarP(&opts.flags.ReplaceOriginal, "replace-original", "r", false, "Overwrite the input file in place")
	flags.StringVar(&opts.reportFormat, "report-format", "", "Report layout: plain or table (overrides report.format)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides logging.level)")
	_ = rootCmd.MarkFlagRequired("input-filename")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runClean(cmd *cobra.Command, ctx *commandContext, opts cleanOptions) error {
	loaded, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg, err := applyOverrides(loaded, opts)
	if err != nil {
		return err
	}

	rc, err := cleaner.ResolveRunConfig(opts.flags, cfg.Output.Prefix)
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return failure.Wrap(failure.ErrConfig, "logging", "init", "", err)
	}
	runCtx := logging.WithRunID(cmd.Context(), "")
	logging.WithContext(runCtx, logger).Debug("starting run",
		logging.String("input", rc.InputPath),
		logging.String("output", rc.OutputPath),
		logging.String("config", ctx.configPath),
	)

	out := cmd.OutOrStdout()
	colorize := colorEnabled(cfg.Report.Color, out)

	var reporter cleaner.Reporter = newPlainReporter(out, colorize)
	if cfg.Report.Format == config.ReportTable {
		reporter = cleaner.NopReporter{}
	}

	report, err := cleaner.New(cfg, logger).Run(runCtx, rc, reporter)
	if err != nil {
		return err
	}
	if cfg.Report.Format == config.ReportTable {
		fmt.Fprintln(out, renderReportTable(report, colorize))
	}
	return nil
}

// applyOverrides returns a copy of cfg with command-line overrides applied.
func applyOverrides(cfg *config.Config, opts cleanOptions) (*config.Config, error) {
	merged := *cfg
	if value := strings.ToLower(strings.TrimSpace(opts.reportFormat)); value != "" {
		merged.Report.Format = value
	}
	if value := strings.ToLower(strings.TrimSpace(opts.logLevel)); value != "" {
		merged.Logging.Level = value
	}
	if err := merged.Validate(); err != nil {
		return nil, failure.Wrap(failure.ErrConfig, "options", "validate", "", err)
	}
	return &merged, nil
}
