// Package config loads, validates and saves the mindful configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/mindful/internal/greenops"
)

// Version written by `config init`.
const CurrentVersion = "1.0.0"

// SupportedVersions is the semver constraint a config file's version must meet.
const SupportedVersions = "^1.0.0"

// Output formats understood by the non-interactive commands.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

const (
	defaultServerAddr        = "127.0.0.1:8080"
	defaultReadHeaderTimeout = 5 * time.Second
	defaultRevealStepMs      = 100
	maxRevealStepMs          = 2000
	configFileName           = "config.yaml"
	homeDirName              = ".mindful"
)

// Config is the full mindful configuration.
type Config struct {
	Version    string           `yaml:"version"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Calculator CalculatorConfig `yaml:"calculator"`
	Display    DisplayConfig    `yaml:"display"`
	Server     ServerConfig     `yaml:"server"`

	configPath string
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// CalculatorConfig seeds the calculator's starting position.
type CalculatorConfig struct {
	DefaultQueries int    `yaml:"default_queries"`
	DefaultLength  string `yaml:"default_length"`
}

// DisplayConfig controls the terminal page.
type DisplayConfig struct {
	Animations   bool `yaml:"animations"`
	RevealStepMs int  `yaml:"reveal_step_ms"`
}

// ServerConfig controls `mindful serve`.
type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
}

// Home returns the mindful directory: $MINDFUL_HOME, else ~/.mindful.
func Home() string {
	if h := os.Getenv("MINDFUL_HOME"); h != "" {
		return h
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return homeDirName
	}
	return filepath.Join(userHome, homeDirName)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Home(), configFileName)
}

// Default returns the built-in configuration bound to DefaultPath.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Output:  OutputConfig{DefaultFormat: FormatTable},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   filepath.Join(Home(), "logs", "mindful.log"),
		},
		Calculator: CalculatorConfig{
			DefaultQueries: greenops.DefaultQueries,
			DefaultLength:  greenops.DefaultLengthTier.String(),
		},
		Display: DisplayConfig{
			Animations:   true,
			RevealStepMs: defaultRevealStepMs,
		},
		Server: ServerConfig{
			Addr:              defaultServerAddr,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		configPath: DefaultPath(),
	}
}

// Load builds the configuration from defaults, the file at path (if it
// exists) and environment overrides. An empty path means DefaultPath. A
// missing file is not an error; an unreadable or malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	cfg.configPath = path

	if _, err := os.Stat(path); err == nil {
		if err = ShallowMergeYAML(cfg, path); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("cannot access config path %s: %w", path, err)
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// ConfigPath returns the file the config was loaded from or will save to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the directory.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// CalculatorInput returns the configured starting calculator position.
// Validate guarantees the values parse.
func (c *Config) CalculatorInput() (greenops.CalculatorInput, error) {
	tier, err := greenops.ParseLengthTier(c.Calculator.DefaultLength)
	if err != nil {
		return greenops.CalculatorInput{}, err
	}
	in := greenops.CalculatorInput{QueryCount: c.Calculator.DefaultQueries, LengthTier: tier}
	if err = in.Validate(); err != nil {
		return greenops.CalculatorInput{}, err
	}
	return in, nil
}

// RevealStep is the per-rank card entrance delay.
func (c *Config) RevealStep() time.Duration {
	return time.Duration(c.Display.RevealStepMs) * time.Millisecond
}

// Validate checks every section and reports the first problem.
func (c *Config) Validate() error {
	if err := validateVersion(c.Version); err != nil {
		return err
	}

	switch strings.ToLower(c.Output.DefaultFormat) {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		return fmt.Errorf("%w: output.default_format %q (want table, json or ndjson)",
			ErrInvalidValue, c.Output.DefaultFormat)
	}

	if err := c.Logging.Validate(); err != nil {
		return err
	}

	if _, err := c.CalculatorInput(); err != nil {
		return fmt.Errorf("%w: calculator: %w", ErrInvalidValue, err)
	}

	if c.Display.RevealStepMs < 0 || c.Display.RevealStepMs > maxRevealStepMs {
		return fmt.Errorf("%w: display.reveal_step_ms %d (want 0..%d)",
			ErrInvalidValue, c.Display.RevealStepMs, maxRevealStepMs)
	}

	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidValue)
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("%w: server.read_header_timeout must be positive", ErrInvalidValue)
	}
	return nil
}

func validateVersion(v string) error {
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, v, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}
