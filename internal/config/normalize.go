package config

import "strings"

func (c *Config) normalize() {
	c.normalizeOutput()
	c.normalizeEncoding()
	c.normalizeReport()
	c.normalizeLogging()
}

func (c *Config) normalizeOutput() {
	if strings.TrimSpace(c.Output.Prefix) == "" {
		c.Output.Prefix = defaultOutputPrefix
	}
}

func (c *Config) normalizeEncoding() {
	c.Encoding.Fallback = strings.TrimSpace(c.Encoding.Fallback)
	if c.Encoding.Fallback == "" {
		c.Encoding.Fallback = defaultFallbackEncoding
	}
}

func (c *Config) normalizeReport() {
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	if c.Report.Format == "" {
		c.Report.Format = defaultReportFormat
	}
	c.Report.Color = strings.ToLower(strings.TrimSpace(c.Report.Color))
	if c.Report.Color == "" {
		c.Report.Color = defaultReportColor
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "", "console", "text", "pretty":
		c.Logging.Format = "console"
	default:
		c.Logging.Format = format
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
