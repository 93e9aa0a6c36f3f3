package editor

import (
	"fmt"
	"strings"
)

// LineEnding specifies the line ending style used when writing text out.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the configuration name of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "windows"
	default:
		return "unix"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	default:
		return "\n"
	}
}

// ParseLineEnding parses "unix" or "windows". "auto" and "" return
// detected unchanged.
func ParseLineEnding(mode string, detected LineEnding) (LineEnding, error) {
	switch strings.ToLower(mode) {
	case "", "auto":
		return detected, nil
	case "unix", "lf":
		return LineEndingLF, nil
	case "windows", "crlf":
		return LineEndingCRLF, nil
	default:
		return detected, fmt.Errorf("unknown newline mode %q", mode)
	}
}

// DetectLineEnding returns the most common line ending in text, or
// LineEndingLF if there are none.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, "\r\n")
	lf := strings.Count(text, "\n") - crlf
	if crlf > lf {
		return LineEndingCRLF
	}
	return LineEndingLF
}

// normalizeLineEndings converts CRLF and lone CR to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
