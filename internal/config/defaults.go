package config

const (
	defaultConfigPath          = "~/.config/subclean/config.toml"
	projectConfigName          = "subclean.toml"
	defaultOutputPrefix        = "Cleaned-"
	defaultFallbackEncoding    = "utf-8"
	defaultWarnBelowConfidence = 0.5
	defaultReportFormat        = ReportPlain
	defaultReportColor         = ColorAuto
	defaultLogFormat           = "console"
	defaultLogLevel            = "warn"
)

// Report formats.
const (
	ReportPlain = "plain"
	ReportTable = "table"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Prefix: defaultOutputPrefix,
		},
		Encoding: Encoding{
			Fallback:            defaultFallbackEncoding,
			WarnBelowConfidence: defaultWarnBelowConfidence,
		},
		Report: Report{
			Format: defaultReportFormat,
			Color:  defaultReportColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
