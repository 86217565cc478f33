package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateEncoding(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	if c.Output.Prefix == "" {
		return errors.New("output.prefix must be set")
	}
	if strings.ContainsAny(c.Output.Prefix, `/\`) {
		return fmt.Errorf("output.prefix %q must not contain a path separator", c.Output.Prefix)
	}
	return nil
}

func (c *Config) validateEncoding() error {
	if c.Encoding.WarnBelowConfidence < 0 || c.Encoding.WarnBelowConfidence > 1 {
		return errors.New("encoding.warn_below_confidence must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateReport() error {
	switch c.Report.Format {
	case ReportPlain, ReportTable:
	default:
		return fmt.Errorf("report.format: unsupported value %q (want %s or %s)", c.Report.Format, ReportPlain, ReportTable)
	}
	switch c.Report.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("report.color: unsupported value %q (want auto, always or never)", c.Report.Color)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
