package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var configFilenames = []string{
	"contractfind.yaml",
	"contractfind.yml",
	"contractfind.toml",
	"contractfind.json",
}

// LoadOptions carries everything Load needs from the outside world.
type LoadOptions struct {
	// BaseDir overrides the executable directory when non-empty.
	BaseDir string
	// ConfigPath names an explicit config file; relative to BaseDir.
	ConfigPath string
	Flags      Overrides
	Getenv     func(string) string
	Executable func() (string, error)
}

// Load builds the run configuration: defaults, then the config file, then the
// environment, then flags. The result is resolved and validated.
func Load(opts LoadOptions) (Config, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	baseDir := strings.TrimSpace(opts.BaseDir)
	if baseDir == "" {
		baseDir = strings.TrimSpace(getenv(envBaseDir))
	}

	if baseDir == "" {
		dir, err := ExecutableDir(opts.Executable)
		if err != nil {
			return Config{}, err
		}

		baseDir = dir
	}

	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults(baseDir)

	path, err := Find(baseDir, opts.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	if path != "" {
		fileOverrides, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}

		cfg = cfg.Apply(fileOverrides)
	}

	cfg = cfg.Apply(FromEnv(getenv)).Apply(opts.Flags).Resolve()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Find returns the config file to read, or "" when there is none. An explicit
// path must exist.
func Find(baseDir, explicitPath string) (string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		candidate := explicit
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(baseDir, candidate)
		}

		info, err := os.Stat(candidate)
		if err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}

		if info.IsDir() {
			return "", fmt.Errorf("config file %q is a directory", candidate)
		}

		return candidate, nil
	}

	for _, name := range configFilenames {
		candidate := filepath.Join(baseDir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", nil
}

// LoadFile decodes a yaml, toml or json config file. Unknown keys are errors.
func LoadFile(path string) (Overrides, error) {
	var o Overrides

	// #nosec G304 - config path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return o, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return o, nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&o); errors.Is(err, io.EOF) {
			err = nil
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&o)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&o)
	default:
		return o, fmt.Errorf("unsupported config extension: %s", ext)
	}

	if err != nil {
		return Overrides{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return o, nil
}
