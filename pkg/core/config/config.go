// Package config loads the acdc configuration file.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/acdc/foundation/acdc/lang"
	mdwerror "github.com/msto63/acdc/foundation/core/error"
	mdwlog "github.com/msto63/acdc/foundation/core/log"
)

// EnvConfigPath names the environment variable LoadFromEnv reads
const EnvConfigPath = "ACDC_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Language LanguageConfig `toml:"language" yaml:"language"`
	Compile  CompileConfig  `toml:"compile" yaml:"compile"`
	Harness  HarnessConfig  `toml:"harness" yaml:"harness"`
	Watch    WatchConfig    `toml:"watch" yaml:"watch"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// LanguageConfig selects the language revision
type LanguageConfig struct {
	// Revision is a semver constraint such as "^2.0"
	Revision string `toml:"revision" yaml:"revision"`
	// Reserved overrides the revision's reserved letters when set
	Reserved string `toml:"reserved" yaml:"reserved"`
}

// CompileConfig holds batch compilation settings
type CompileConfig struct {
	Workers        int   `toml:"workers" yaml:"workers"`
	SkipBlankLines *bool `toml:"skip_blank_lines" yaml:"skip_blank_lines"`
}

// HarnessConfig holds golden test settings
type HarnessConfig struct {
	TestsDir   string `toml:"tests_dir" yaml:"tests_dir"`
	OutputsDir string `toml:"outputs_dir" yaml:"outputs_dir"`
	SourceExt  string `toml:"source_ext" yaml:"source_ext"`
	OutputExt  string `toml:"output_ext" yaml:"output_ext"`
}

// WatchConfig holds file watching settings
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Format is a configuration file format
type Format int

const (
	// FormatTOML is the default format
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format from the file extension. Unknown
// extensions are read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads and validates configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Newf("config file not found: %s", path).
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := LoadFromString(string(content), DetectFormat(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load config file").
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	return cfg, nil
}

// LoadFromString decodes, completes and validates configuration content
func LoadFromString(content string, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(content, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.LoadFromString")
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.LoadFromString")
		}
	default:
		return nil, mdwerror.Newf("unsupported config format: %s", format).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString")
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the ACDC_CONFIG environment variable
// or, when it is unset, from the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set ACDC_CONFIG or create acdc.toml").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// DefaultPaths lists the locations LoadFromEnv searches, in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/acdc.toml",
		"./acdc.toml",
		"./acdc.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "acdc", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "acdc"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = mdwlog.DefaultLevel().String()
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = mdwlog.FormatText.String()
	}

	// Language
	if c.Language.Revision == "" {
		c.Language.Revision = lang.DefaultRevision
	}

	// Compile
	if c.Compile.Workers == 0 {
		c.Compile.Workers = 4
	}
	if c.Compile.SkipBlankLines == nil {
		skip := true
		c.Compile.SkipBlankLines = &skip
	}

	// Harness
	if c.Harness.TestsDir == "" {
		c.Harness.TestsDir = "tests"
	}
	if c.Harness.OutputsDir == "" {
		c.Harness.OutputsDir = "outputs"
	}
	if c.Harness.SourceExt == "" {
		c.Harness.SourceExt = ".ac"
	}
	if c.Harness.OutputExt == "" {
		c.Harness.OutputExt = ".dc"
	}

	// Watch
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 200 * time.Millisecond
	}
}

// expandEnvVars expands environment variables in path settings
func (c *Config) expandEnvVars() {
	c.Harness.TestsDir = os.ExpandEnv(c.Harness.TestsDir)
	c.Harness.OutputsDir = os.ExpandEnv(c.Harness.OutputsDir)
}

// SkipBlank reports whether blank source lines are skipped
func (c *Config) SkipBlank() bool {
	return c.Compile.SkipBlankLines == nil || *c.Compile.SkipBlankLines
}

// Validate checks the configuration for values no component accepts
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return wrapInvalid(err, "general.log_level", c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return wrapInvalid(err, "general.log_format", c.General.LogFormat)
	}
	if _, err := lang.Resolve(c.Language.Revision); err != nil {
		return wrapInvalid(err, "language.revision", c.Language.Revision)
	}
	if c.Language.Reserved != "" {
		if _, err := lang.NewReservedSet(c.Language.Reserved); err != nil {
			return wrapInvalid(err, "language.reserved", c.Language.Reserved)
		}
	}
	if c.Compile.Workers <= 0 {
		return newInvalid("compile.workers", c.Compile.Workers, "must be positive")
	}
	for _, ext := range []struct{ field, value string }{
		{"harness.source_ext", c.Harness.SourceExt},
		{"harness.output_ext", c.Harness.OutputExt},
	} {
		if !strings.HasPrefix(ext.value, ".") {
			return newInvalid(ext.field, ext.value, "must start with '.'")
		}
	}
	if c.Harness.SourceExt == c.Harness.OutputExt {
		return newInvalid("harness.output_ext", c.Harness.OutputExt, "must differ from harness.source_ext")
	}
	if c.Watch.Debounce.Duration < 0 {
		return newInvalid("watch.debounce", c.Watch.Debounce.String(), "must not be negative")
	}
	return nil
}

func newInvalid(field string, value interface{}, reason string) error {
	return mdwerror.Newf("invalid configuration: %s %s, got %v", field, reason, value).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("field", field).
		WithDetail("value", value)
}

func wrapInvalid(err error, field string, value interface{}) error {
	return mdwerror.Wrap(err, "invalid configuration: "+field).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("field", field).
		WithDetail("value", value)
}
