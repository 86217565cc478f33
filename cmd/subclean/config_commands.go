package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subclean/internal/config"
	"subclean/internal/failure"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the subclean settings file",
		Long: "subclean reads optional settings from a TOML file (see --config).\n" +
			"Command-line flags always take precedence over the file.",
		Args: cobra.NoArgs,
	}
	configCmd.AddCommand(newConfigInitCommand(), newConfigValidateCommand(ctx))
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a commented settings file with the built-in defaults",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := settingsTarget(targetPath)
			if err != nil {
				return failure.Wrap(failure.ErrConfig, "config", "init", targetPath, err)
			}
			if !overwrite {
				if err := ensureAbsent(target); err != nil {
					return failure.Wrap(failure.ErrConfig, "config", "init", target, err)
				}
			}
			if err := config.CreateSample(target); err != nil {
				return failure.Wrap(failure.ErrIO, "config", "init", target, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Where to write the file (default: the standard config location)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

// settingsTarget expands an explicit path or falls back to the default location.
func settingsTarget(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.DefaultConfigPath()
	}
	return config.ExpandPath(path)
}

func ensureAbsent(path string) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%s already exists; pass --overwrite to replace it", path)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return err
	}
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Check the settings file and print the effective values",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, exists, err := config.Load(ctx.configFlagValue())
			if err != nil {
				return failure.Wrap(failure.ErrConfig, "config", "validate", ctx.configFlagValue(), err)
			}
			out := cmd.OutOrStdout()
			if exists {
				fmt.Fprintf(out, "%s: ok\n", path)
			} else {
				fmt.Fprintf(out, "%s: not found, using defaults\n", path)
			}
			fmt.Fprintln(out, renderTable([2]string{"Setting", "Value"}, settingRows(cfg), false))
			return nil
		},
	}
}

func settingRows(cfg *config.Config) [][2]string {
	return [][2]string{
		{"output.prefix", strconv.Quote(cfg.Output.Prefix)},
		{"encoding.fallback", cfg.Encoding.Fallback},
		{"encoding.warn_below_confidence", strconv.FormatFloat(cfg.Encoding.WarnBelowConfidence, 'f', -1, 64)},
		{"srt.ignore_malformed", strconv.FormatBool(cfg.SRT.IgnoreMalformed)},
		{"report.format", cfg.Report.Format},
		{"report.color", cfg.Report.Color},
		{"logging.format", cfg.Logging.Format},
		{"logging.level", cfg.Logging.Level},
	}
}
