// Package config resolves lvbasin CLI settings.
//
// Precedence, lowest first: built-in defaults, YAML file (-config or
// LVBASIN_CONFIG), .env file and process environment (LVBASIN_*), flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbasin/basin"
	"github.com/katalvlaran/lvbasin/heightmap"
)

// ErrInvalid is returned by Validate and Load for unusable settings.
var ErrInvalid = errors.New("config: invalid setting")

const (
	// FormatText prints one human-readable block per input file.
	FormatText = "text"
	// FormatYAML prints all reports as a single YAML sequence.
	FormatYAML = "yaml"

	envPrefix      = "LVBASIN_"
	defaultInput   = "input/day9.txt"
	defaultEnvFile = ".env"
)

// Config holds every CLI setting.
type Config struct {
	LogLevel string   `yaml:"log_level"`
	Format   string   `yaml:"format"`
	Boundary int      `yaml:"boundary"`
	Top      int      `yaml:"top"`
	Workers  int      `yaml:"workers"`
	Inputs   []string `yaml:"inputs"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   FormatText,
		Boundary: heightmap.Boundary,
		Top:      basin.DefaultTop,
		Workers:  4,
		Inputs:   []string{defaultInput},
	}
}

// Load resolves the configuration from args (without the program name).
// Positional arguments replace Inputs.
func Load(args []string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("lvbasin", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		flagCfg Config
		cfgPath string
		envFile string
	)
	fs.StringVar(&cfgPath, "config", "", "YAML config file path")
	fs.StringVar(&envFile, "env", defaultEnvFile, "dotenv file path (missing file is ignored)")
	fs.StringVar(&flagCfg.LogLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	fs.StringVar(&flagCfg.Format, "format", "", "output format (text|yaml)")
	fs.IntVar(&flagCfg.Boundary, "boundary", 0, "basin boundary height (0-9)")
	fs.IntVar(&flagCfg.Top, "top", 0, "number of largest basins to multiply")
	fs.IntVar(&flagCfg.Workers, "workers", 0, "maximum files analyzed concurrently")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// a missing .env is normal
	_ = godotenv.Load(envFile)

	cfg := Default()
	if cfgPath == "" {
		cfgPath = os.Getenv(envPrefix + "CONFIG")
	}
	if cfgPath != "" {
		if err := cfg.readFile(cfgPath); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = flagCfg.LogLevel
		case "format":
			cfg.Format = flagCfg.Format
		case "boundary":
			cfg.Boundary = flagCfg.Boundary
		case "top":
			cfg.Top = flagCfg.Top
		case "workers":
			cfg.Workers = flagCfg.Workers
		}
	})
	if fs.NArg() > 0 {
		cfg.Inputs = fs.Args()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// readFile overlays the YAML file at path onto c. Unknown keys are rejected.
func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: parse %s: %w", ErrInvalid, path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(envPrefix + "FORMAT"); ok {
		c.Format = v
	}
	if v, ok := os.LookupEnv(envPrefix + "INPUTS"); ok && strings.TrimSpace(v) != "" {
		c.Inputs = strings.Split(v, ",")
	}
	for name, dst := range map[string]*int{
		"BOUNDARY": &c.Boundary,
		"TOP":      &c.Top,
		"WORKERS":  &c.Workers,
	} {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, envPrefix, name, v)
		}
		*dst = n
	}
	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	if c.Boundary < heightmap.MinHeight || c.Boundary > heightmap.MaxHeight {
		return fmt.Errorf("%w: boundary %d", ErrInvalid, c.Boundary)
	}
	if c.Top < 1 {
		return fmt.Errorf("%w: top %d", ErrInvalid, c.Top)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	if len(c.Inputs) == 0 {
		return fmt.Errorf("%w: no input files", ErrInvalid)
	}
	return nil
}

// Level returns the parsed log level; call after Validate.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Fields returns the configuration as logrus fields.
func (c *Config) Fields() logrus.Fields {
	return logrus.Fields{
		"log_level": c.LogLevel,
		"format":    c.Format,
		"boundary":  c.Boundary,
		"top":       c.Top,
		"workers":   c.Workers,
		"inputs":    strings.Join(c.Inputs, ","),
	}
}
