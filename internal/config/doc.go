// Package config loads vimotion settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (see Default)
//  2. A TOML or YAML file, chosen by extension
//  3. VIMOTION_* environment variables
//
// Command-line flags are applied on top by the caller.
//
// # File Format
//
//	[log]
//	level = "info"
//	file = ""
//
//	[editor]
//	page_size = 20
//	tab_width = 4
//	newline_mode = "auto"
//
//	[keymap]
//	"<C-f>" = "ctrl-d"
//	"<C-b>" = "ctrl-u"
//
// Keymap entries map a key specification to a chord name. The watcher
// sub-package reports changes to the file for live reload.
package config
