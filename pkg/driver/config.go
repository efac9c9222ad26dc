package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lpahlavi/jlox/pkg/logger"
)

// ErrConfigNotFound is returned by FindConfig when no config file exists
// between the start directory and the filesystem root.
var ErrConfigNotFound = errors.New("config: no config file found")

// ConfigNames lists the file names FindConfig looks for, in priority order.
var ConfigNames = []string{".lox.yml", "lox.yml", "lox.yaml", "lox.toml"}

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config models a lox config file.
type Config struct {
	Path         string     `yaml:"-" toml:"-"`
	ExitCodes    ExitPolicy `yaml:"exit_codes" toml:"exit_codes"`
	REPL         REPLConfig `yaml:"repl" toml:"repl"`
	Color        string     `yaml:"color" toml:"color"`
	MaxCallDepth int        `yaml:"max_call_depth" toml:"max_call_depth"`
	Log          LogConfig  `yaml:"log" toml:"log"`
}

// REPLConfig configures the interactive prompt.
type REPLConfig struct {
	Prompt             string `yaml:"prompt" toml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt" toml:"continuation_prompt"`
	HistoryFile        string `yaml:"history_file" toml:"history_file"`
}

// LogConfig selects the level and handler of the diagnostic logger.
// File, when set, receives the records instead of stderr.
type LogConfig struct {
	Level     string `yaml:"level" toml:"level"`
	Format    string `yaml:"format" toml:"format"`
	File      string `yaml:"file" toml:"file"`
	AddSource bool   `yaml:"add_source" toml:"add_source"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		ExitCodes: DefaultExitPolicy(),
		REPL: REPLConfig{
			Prompt:             "> ",
			ContinuationPrompt: ". ",
			HistoryFile:        defaultHistoryFile(),
		},
		Color: ColorAuto,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".lox_history")
}

// FindConfig walks up from start and returns the first config file found.
func FindConfig(start string) (string, error) {
	if start == "" {
		start = "."
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("config: resolve %s: %w", start, err)
	}
	dir := filepath.Clean(abs)
	for {
		for _, name := range ConfigNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("config: stat %s: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrConfigNotFound
}

// DiscoverConfig loads the config found from start, or the defaults when
// there is none.
func DiscoverConfig(start string) (Config, error) {
	path, err := FindConfig(start)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return LoadConfig(path)
}

// LoadConfig parses a YAML or TOML config file. Keys missing from the file
// keep their default values; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", abs, err)
	}
	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(abs), ".toml") {
		err = decodeTOML(data, &cfg)
	} else {
		err = decodeYAML(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", abs, err)
	}
	if cfg.Log.File != "" && !filepath.IsAbs(cfg.Log.File) {
		cfg.Log.File = filepath.Join(filepath.Dir(abs), cfg.Log.File)
	}
	cfg.Path = abs
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(cfg)
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color must be auto, always or never, got %q", c.Color))
	}
	if c.MaxCallDepth < 0 {
		errs = append(errs, fmt.Errorf("max_call_depth must not be negative, got %d", c.MaxCallDepth))
	}
	if err := c.ExitCodes.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// LoggerConfig converts the log section into a logger.Config writing to w.
func (c Config) LoggerConfig(w io.Writer) (logger.Config, error) {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return logger.Config{}, err
	}
	cfg := logger.DefaultConfig()
	cfg.Level = level
	cfg.Output = w
	cfg.LogFile = c.Log.File
	cfg.AddSource = c.Log.AddSource
	if c.Log.Format != "" {
		cfg.Format = c.Log.Format
	}
	return cfg, nil
}
