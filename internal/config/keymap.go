package config

import (
	"errors"
	"sort"

	"github.com/dshills/vimotion/internal/motion"
)

// BuildKeymap converts the [keymap] section into a motion keymap.
// Every bad entry is reported.
func (c *Config) BuildKeymap() (*motion.Keymap, error) {
	km := motion.NewKeymap()

	specs := make([]string, 0, len(c.Keymap))
	for spec := range c.Keymap {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	var errs []error
	for _, spec := range specs {
		name := c.Keymap[spec]
		chord, ok := motion.ParseChord(name)
		if !ok {
			errs = append(errs, &ValidationError{
				Path:    "keymap." + spec,
				Message: "unknown chord",
				Value:   name,
				Code:    ErrCodeInvalidEnum,
			})
			continue
		}
		if err := km.Bind(spec, chord); err != nil {
			errs = append(errs, &ValidationError{
				Path:    "keymap." + spec,
				Message: err.Error(),
				Value:   spec,
				Code:    ErrCodeInvalidKey,
			})
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return km, nil
}
