package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Veraticus/numlines/pkg/output"
	"github.com/Veraticus/numlines/pkg/scanner"
	"github.com/Veraticus/numlines/pkg/types"
)

// DefaultInput is the file read when no input is configured.
const DefaultInput = "./test.txt"

// ErrNoPatterns is returned when every pattern is disabled.
var ErrNoPatterns = errors.New("no enabled patterns")

// Config holds all configuration for numlines
type Config struct {
	// Input file, or "-" for standard input
	Input string `yaml:"input" env:"NUMLINES_INPUT"`

	// Output settings
	Format  string `yaml:"format" env:"NUMLINES_FORMAT"`
	Quiet   bool   `yaml:"quiet" env:"NUMLINES_QUIET"`
	Verbose bool   `yaml:"verbose" env:"NUMLINES_VERBOSE"`

	// Pattern configuration
	Patterns []types.Pattern `yaml:"patterns"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Input:  DefaultInput,
		Format: string(output.FormatRaw),
		Patterns: []types.Pattern{
			{
				Name:        scanner.NumberLineName,
				Regex:       scanner.NumberLineRegex,
				Description: "lines consisting only of decimal digits",
				Enabled:     true,
			},
			{
				Name:        "year",
				Regex:       `\b(?:19|20)\d{2}\b`,
				Description: "years in the 20th or 21st century",
			},
			{
				Name:        "url_domain",
				Regex:       `https?://(?:www\.)?(?P<value>[-a-zA-Z0-9@:%._+~#=]{2,256}\.[a-z]{2,6})`,
				Description: "domain names of http(s) URLs",
			},
			{
				Name:        "email",
				Regex:       `[^@\s]+@[^@\s]+\.\w{2,6}`,
				Description: "email addresses",
			},
		},
	}
}

// Load merges the defaults, .env, the config file and the environment. The
// result is not validated; apply command line overrides and then call Finalize.
func Load() (*Config, error) {
	// A missing .env is normal
	_ = godotenv.Load()

	cfg := DefaultConfig()

	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	return cfg, nil
}

// Finalize compiles the enabled patterns and validates cfg.
func Finalize(cfg *Config) error {
	if err := compilePatterns(cfg); err != nil {
		return fmt.Errorf("failed to compile patterns: %w", err)
	}

	if err := validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if path := os.Getenv("NUMLINES_CONFIG"); path != "" {
		return path
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "numlines", "config.yaml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "numlines", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if input := os.Getenv("NUMLINES_INPUT"); input != "" {
		cfg.Input = input
	}

	if format := os.Getenv("NUMLINES_FORMAT"); format != "" {
		cfg.Format = format
	}

	if quiet := os.Getenv("NUMLINES_QUIET"); quiet != "" {
		v, err := parseBool(quiet)
		if err != nil {
			return fmt.Errorf("invalid NUMLINES_QUIET value: %w", err)
		}
		cfg.Quiet = v
	}

	if verbose := os.Getenv("NUMLINES_VERBOSE"); verbose != "" {
		v, err := parseBool(verbose)
		if err != nil {
			return fmt.Errorf("invalid NUMLINES_VERBOSE value: %w", err)
		}
		cfg.Verbose = v
	}

	return nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%q (use true/false)", s)
	}
}

// compilePatterns compiles all enabled regex patterns
func compilePatterns(cfg *Config) error {
	for i := range cfg.Patterns {
		pattern := &cfg.Patterns[i]
		if pattern.Enabled && pattern.Regex != "" {
			if err := pattern.Compile(); err != nil {
				return fmt.Errorf("failed to compile pattern %q: %w", pattern.Name, err)
			}
		}
	}
	return nil
}

// EnablePatterns enables exactly the named patterns and disables the rest.
func (c *Config) EnablePatterns(names []string) error {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		want[name] = true
	}
	for i := range c.Patterns {
		c.Patterns[i].Enabled = want[c.Patterns[i].Name]
		delete(want, c.Patterns[i].Name)
	}
	if len(want) == 0 {
		return nil
	}

	unknown := slices.Sorted(maps.Keys(want))
	quoted := make([]string, len(unknown))
	for i, name := range unknown {
		quoted[i] = strconv.Quote(name)
	}
	noun := "pattern"
	if len(unknown) > 1 {
		noun = "patterns"
	}
	return fmt.Errorf("unknown %s %s", noun, strings.Join(quoted, ", "))
}

// validate validates the configuration
func validate(cfg *Config) error {
	if cfg.Input == "" {
		return fmt.Errorf("input must not be empty")
	}

	if _, err := output.ParseFormat(cfg.Format); err != nil {
		return err
	}

	for _, p := range cfg.Patterns {
		if p.Enabled && p.CompiledRegex() != nil {
			return nil
		}
	}
	return ErrNoPatterns
}
