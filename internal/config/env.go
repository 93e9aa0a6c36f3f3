package config

import (
	"sort"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "VIMOTION_"

// LookupFunc looks up an environment variable.
type LookupFunc func(name string) (string, bool)

// envSetting applies one environment variable.
type envSetting struct {
	path  string
	apply func(c *Config, value string) error
}

var envSettings = map[string]envSetting{
	EnvPrefix + "LOG_LEVEL": {"log.level", func(c *Config, v string) error {
		c.Log.Level = strings.ToLower(v)
		return nil
	}},
	EnvPrefix + "LOG_FILE": {"log.file", func(c *Config, v string) error {
		c.Log.File = v
		return nil
	}},
	EnvPrefix + "PAGE_SIZE": {"editor.page_size", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Editor.PageSize = n
		return nil
	}},
	EnvPrefix + "TAB_WIDTH": {"editor.tab_width", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Editor.TabWidth = n
		return nil
	}},
	EnvPrefix + "NEWLINE_MODE": {"editor.newline_mode", func(c *Config, v string) error {
		c.Editor.NewlineMode = strings.ToLower(v)
		return nil
	}},
}

// EnvNames returns the environment variables ApplyEnv reads.
func EnvNames() []string {
	names := make([]string, 0, len(envSettings))
	for name := range envSettings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyEnv overrides settings from the environment.
// Empty values are treated as unset.
func ApplyEnv(c *Config, lookup LookupFunc) error {
	for name, s := range envSettings {
		value, ok := lookup(name)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		if err := s.apply(c, strings.TrimSpace(value)); err != nil {
			return &ValidationError{
				Path:    "$" + name,
				Message: "not a number",
				Value:   value,
				Code:    ErrCodeTypeMismatch,
			}
		}
	}
	return nil
}
