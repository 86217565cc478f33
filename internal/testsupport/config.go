package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"subclean/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig returns the default settings with opts applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithPrefix overrides the derived output file prefix.
func WithPrefix(prefix string) ConfigOption {
	return func(c *config.Config) {
		c.Output.Prefix = prefix
	}
}

// WithFallbackEncoding sets the encoding used when detection finds nothing.
func WithFallbackEncoding(label string) ConfigOption {
	return func(c *config.Config) {
		c.Encoding.Fallback = label
	}
}

// WithIgnoreMalformed switches the parser into lenient mode.
func WithIgnoreMalformed() ConfigOption {
	return func(c *config.Config) {
		c.SRT.IgnoreMalformed = true
	}
}

// WriteConfigFile marshals cfg into dir/config.toml and returns the path.
func WriteConfigFile(t testing.TB, dir string, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
