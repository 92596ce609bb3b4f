// Package config resolves where a run reads codes, scans documents and writes
// its report. Every path is anchored at the program's own directory unless
// overridden.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	m "github.com/mouse-blink/contractfind/internal/model"
)

// File names and extension used when nothing is configured.
const (
	DefaultCodesFile  = "codes_file.txt"
	DefaultReportFile = "results.txt"
	DefaultExtension  = ".xml"
)

// Validation errors.
var (
	ErrInvalidElement   = errors.New("invalid element name")
	ErrInvalidExtension = errors.New("invalid extension")
)

// Config is built once at startup and handed to the workflow.
type Config struct {
	BaseDir    string
	CorpusRoot string
	CodesFile  string
	ReportFile string
	Element    string
	Extension  string
}

// Overrides holds optional settings from one layer (file, env or flags).
// Nil fields leave the lower layer untouched.
type Overrides struct {
	CorpusRoot *string `yaml:"dir" toml:"dir" json:"dir"`
	CodesFile  *string `yaml:"codes" toml:"codes" json:"codes"`
	ReportFile *string `yaml:"report" toml:"report" json:"report"`
	Element    *string `yaml:"element" toml:"element" json:"element"`
	Extension  *string `yaml:"extension" toml:"extension" json:"extension"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults(baseDir string) Config {
	return Config{
		BaseDir:    baseDir,
		CorpusRoot: baseDir,
		CodesFile:  DefaultCodesFile,
		ReportFile: DefaultReportFile,
		Element:    m.DefaultElement,
		Extension:  DefaultExtension,
	}
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved.
func ExecutableDir(executable func() (string, error)) (string, error) {
	if executable == nil {
		executable = os.Executable
	}

	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe), nil
}

// Apply layers o on top of c.
func (c Config) Apply(o Overrides) Config {
	set := func(dst *string, src *string) {
		if src != nil && strings.TrimSpace(*src) != "" {
			*dst = strings.TrimSpace(*src)
		}
	}

	set(&c.CorpusRoot, o.CorpusRoot)
	set(&c.CodesFile, o.CodesFile)
	set(&c.ReportFile, o.ReportFile)
	set(&c.Element, o.Element)
	set(&c.Extension, o.Extension)

	return c
}

// Resolve anchors relative paths at BaseDir and lower-cases the extension.
func (c Config) Resolve() Config {
	anchor := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return filepath.Clean(p)
		}

		return filepath.Join(c.BaseDir, p)
	}

	c.CorpusRoot = anchor(c.CorpusRoot)
	c.CodesFile = anchor(c.CodesFile)
	c.ReportFile = anchor(c.ReportFile)
	c.Extension = strings.ToLower(c.Extension)

	return c
}

// Validate checks the settings that cannot be defaulted away.
func (c Config) Validate() error {
	if !isNCName(c.Element) {
		return fmt.Errorf("%w: %q", ErrInvalidElement, c.Element)
	}

	if len(c.Extension) < 2 || !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("%w: %q must start with a dot", ErrInvalidExtension, c.Extension)
	}

	if c.CodesFile == c.ReportFile {
		return fmt.Errorf("codes file and report file are the same: %s", c.CodesFile)
	}

	return nil
}

// Paths returns the three locations as model paths.
func (c Config) Paths() (corpus, codes, report m.Path) {
	return m.Path(c.CorpusRoot), m.Path(c.CodesFile), m.Path(c.ReportFile)
}

func isNCName(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}

	return true
}
