package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vjsx/internal/errors"
	"github.com/vango-dev/vjsx/pkg/vdom"
)

const (
	// DefaultIndent is the default JSON indentation of inspect output.
	DefaultIndent = 2

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "vjsx"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// FileNames are the configuration file names tried by Load, in order.
var FileNames = []string{"vjsx.yaml", "vjsx.yml", "vjsx.json"}

// Config represents the complete vjsx configuration.
type Config struct {
	// DOMProps are extra attribute keys forced onto DOM properties.
	DOMProps []string `json:"domProps,omitempty" yaml:"domProps,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`

	// Output contains CLI output configuration.
	Output OutputConfig `json:"output,omitempty" yaml:"output,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
}

// OutputConfig contains CLI output configuration.
type OutputConfig struct {
	// Indent is the number of spaces used to indent JSON output.
	Indent int `json:"indent,omitempty" yaml:"indent,omitempty"`
}

// MetricsConfig contains Prometheus configuration.
type MetricsConfig struct {
	// Enabled turns on classification metrics in the CLI.
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// New creates a Config with defaults applied.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads the first configuration file found in dir. If none exists the
// defaults are returned.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return New(), nil
}

// LoadFile loads a configuration file. The format is chosen by extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E120").
				WithDetail("No configuration file at " + path).
				WithSuggestion("Check the --config flag or remove it to use defaults")
		}
		return nil, errors.New("E121").Wrap(err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E121").
				Wrap(err).
				WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E121").
				Wrap(err).
				WithSuggestion("Check that " + filepath.Base(path) + " is valid YAML")
		}
	default:
		return nil, errors.New("E121").
			WithDetail("Unsupported configuration format " + filepath.Ext(path)).
			WithSuggestion("Use a .yaml, .yml or .json file")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Output.Indent == 0 {
		c.Output.Indent = DefaultIndent
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("E122").
			WithDetail("log.level must be one of debug, info, warn, error; got " + c.Log.Level)
	}
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return errors.New("E122").
			WithDetail("output.indent must be between 0 and 8")
	}
	for _, name := range c.DOMProps {
		if strings.TrimSpace(name) == "" {
			return errors.New("E122").
				WithDetail("domProps entries must not be empty")
		}
	}
	return nil
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

// BuilderOptions returns the vdom builder options implied by the config.
func (c *Config) BuilderOptions() []vdom.Option {
	var opts []vdom.Option
	if len(c.DOMProps) > 0 {
		opts = append(opts, vdom.WithDOMProps(c.DOMProps...))
	}
	return opts
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
