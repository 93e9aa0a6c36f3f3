package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/vimotion/internal/editor"
)

// Format is a config file syntax.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatForPath picks a format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Setting limits.
const (
	MinPageSize = 1
	MaxPageSize = 1000
	MinTabWidth = 1
	MaxTabWidth = 16
)

// Config is the complete vimotion configuration.
type Config struct {
	Log    LogConfig         `toml:"log" yaml:"log"`
	Editor EditorConfig      `toml:"editor" yaml:"editor"`
	Keymap map[string]string `toml:"keymap" yaml:"keymap"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error or off.
	Level string `toml:"level" yaml:"level"`

	// File is the log destination. Empty logs to stderr in replay mode
	// and discards logs in the interactive UI.
	File string `toml:"file" yaml:"file"`
}

// EditorConfig configures the buffer and view.
type EditorConfig struct {
	// PageSize is the number of rows ctrl-d and ctrl-u move.
	PageSize int `toml:"page_size" yaml:"page_size"`

	// TabWidth is the rendered width of a tab.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`

	// NewlineMode is auto, unix or windows.
	NewlineMode string `toml:"newline_mode" yaml:"newline_mode"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Editor: EditorConfig{
			PageSize:    editor.DefaultPageSize,
			TabWidth:    4,
			NewlineMode: "auto",
		},
		Keymap: map[string]string{},
	}
}

// Load builds a configuration from defaults, the file at path and the
// environment, then validates it. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			format, err := FormatForPath(path)
			if err != nil {
				return nil, err
			}
			if err := cfg.decode(path, data, format); err != nil {
				return nil, err
			}
		case errors.Is(err, os.ErrNotExist):
			// No file, keep defaults
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes data over the defaults. It does not apply the
// environment or validate.
func Parse(source string, data []byte, format Format) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(source, data, format); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays data onto c. Unknown keys are errors.
func (c *Config) decode(source string, data []byte, format Format) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			perr := &ParseError{Path: source, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				perr.Line, perr.Column = derr.Position()
			}
			return perr
		}
	}
	if c.Keymap == nil {
		c.Keymap = map[string]string{}
	}
	return nil
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Message: "must be one of debug, info, warn, error, off",
			Value:   c.Log.Level,
			Code:    ErrCodeInvalidEnum,
		})
	}
	if c.Editor.PageSize < MinPageSize || c.Editor.PageSize > MaxPageSize {
		errs = append(errs, &ValidationError{
			Path:    "editor.page_size",
			Message: fmt.Sprintf("must be between %d and %d", MinPageSize, MaxPageSize),
			Value:   c.Editor.PageSize,
			Code:    ErrCodeOutOfRange,
		})
	}
	if c.Editor.TabWidth < MinTabWidth || c.Editor.TabWidth > MaxTabWidth {
		errs = append(errs, &ValidationError{
			Path:    "editor.tab_width",
			Message: fmt.Sprintf("must be between %d and %d", MinTabWidth, MaxTabWidth),
			Value:   c.Editor.TabWidth,
			Code:    ErrCodeOutOfRange,
		})
	}
	if _, err := editor.ParseLineEnding(c.Editor.NewlineMode, editor.LineEndingLF); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "editor.newline_mode",
			Message: "must be auto, unix or windows",
			Value:   c.Editor.NewlineMode,
			Code:    ErrCodeInvalidEnum,
		})
	}
	if _, err := c.BuildKeymap(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// LineEnding resolves the newline mode against the line ending detected
// in a loaded file.
func (c *Config) LineEnding(detected editor.LineEnding) editor.LineEnding {
	le, err := editor.ParseLineEnding(c.Editor.NewlineMode, detected)
	if err != nil {
		return detected
	}
	return le
}

var logLevels = map[string]struct{}{
	"debug":   {},
	"info":    {},
	"warn":    {},
	"warning": {},
	"error":   {},
	"off":     {},
}
