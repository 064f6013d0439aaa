// Package config resolves exportgen settings from defaults, an optional YAML
// file, .env and the process environment. Flags are applied by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/exportgen/internal/domain"
	"github.com/mouse-blink/exportgen/internal/logging"
)

// FileName is the config file looked up in the project root.
const FileName = "exportgen.yaml"

// EnvFileName is the dotenv file looked up in the project root.
const EnvFileName = ".env"

// Environment variables, highest precedence after flags.
const (
	EnvSourceRoot = "EXPORTGEN_SRC"
	EnvOutputRoot = "EXPORTGEN_OUT"
	EnvDescriptor = "EXPORTGEN_DESCRIPTOR"
	EnvPreview    = "EXPORTGEN_PREVIEW"
	EnvLogLevel   = "EXPORTGEN_LOG_LEVEL"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// DefaultDescriptor is the package descriptor updated when none is configured.
const DefaultDescriptor = "package.json"

// Config holds the resolved settings.
type Config struct {
	SourceRoot string `yaml:"src"`
	OutputRoot string `yaml:"out"`
	Descriptor string `yaml:"descriptor"`
	Preview    int    `yaml:"preview"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
	LogSource  bool   `yaml:"log_source"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SourceRoot: domain.DefaultSourceRoot,
		OutputRoot: domain.DefaultOutputRoot,
		Descriptor: DefaultDescriptor,
		Preview:    domain.DefaultPreviewSize,
		LogLevel:   "warn",
		LogFormat:  logging.FormatText,
	}
}

// Load resolves the config for the project at root. An empty file means
// <root>/exportgen.yaml when present; an explicit file must exist.
func Load(root, file string) (Config, error) {
	cfg := Default()

	if err := cfg.mergeFile(root, file); err != nil {
		return Config{}, err
	}

	env, err := readEnv(root)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.mergeEnv(env); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) mergeFile(root, file string) error {
	explicit := file != ""
	if !explicit {
		file = filepath.Join(root, FileName)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("read config %s: %w", file, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", file, err)
	}

	return nil
}

// readEnv returns the .env values overlaid with the process environment.
func readEnv(root string) (map[string]string, error) {
	values, err := godotenv.Read(filepath.Join(root, EnvFileName))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", EnvFileName, err)
		}

		values = map[string]string{}
	}

	for _, key := range []string{EnvSourceRoot, EnvOutputRoot, EnvDescriptor, EnvPreview, EnvLogLevel} {
		if v := os.Getenv(key); v != "" {
			values[key] = v
		}
	}

	return values, nil
}

func (c *Config) mergeEnv(env map[string]string) error {
	overrides := map[string]*string{
		EnvSourceRoot: &c.SourceRoot,
		EnvOutputRoot: &c.OutputRoot,
		EnvDescriptor: &c.Descriptor,
		EnvLogLevel:   &c.LogLevel,
	}

	for key, dst := range overrides {
		if v := strings.TrimSpace(env[key]); v != "" {
			*dst = v
		}
	}

	if v := strings.TrimSpace(env[EnvPreview]); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvPreview, v)
		}

		c.Preview = n
	}

	return nil
}

// Validate checks the settings the generator relies on.
func (c Config) Validate() error {
	for name, root := range map[string]string{"src": c.SourceRoot, "out": c.OutputRoot} {
		if err := validateRoot(name, root); err != nil {
			return err
		}
	}

	if strings.TrimSpace(c.Descriptor) == "" {
		return fmt.Errorf("%w: descriptor is empty", ErrInvalid)
	}

	if c.Preview < 0 {
		return fmt.Errorf("%w: preview must not be negative, got %d", ErrInvalid, c.Preview)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	switch strings.ToLower(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}

	return nil
}

// Roots are written into the manifest verbatim, so they must already be in
// canonical slash form.
func validateRoot(name, root string) error {
	switch {
	case root == "":
		return fmt.Errorf("%w: %s root is empty", ErrInvalid, name)
	case path.IsAbs(root) || filepath.IsAbs(root):
		return fmt.Errorf("%w: %s root %q must be relative", ErrInvalid, name, root)
	case path.Clean(root) != root || root == ".":
		return fmt.Errorf("%w: %s root %q must be a clean path", ErrInvalid, name, root)
	case root == ".." || strings.HasPrefix(root, "../"):
		return fmt.Errorf("%w: %s root %q escapes the project", ErrInvalid, name, root)
	}

	return nil
}
