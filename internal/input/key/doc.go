// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "G", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+D", "Alt+F"
//   - Vim-style: "<C-d>", "<A-f>", "<CR>", "<Esc>"
//
// Sequences such as "3w<C-d>fa" are parsed with ParseSequence.
//
// # Chord Names
//
// ChordName renders an event in the editor's chord notation, where
// shifted keys are spelled by their unshifted key: "G" is "shift-g",
// "^" is "shift-6", and Ctrl+D is "ctrl-d".
package key
