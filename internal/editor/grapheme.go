package editor

import "github.com/rivo/uniseg"

// boundaries returns the rune columns at which grapheme clusters of line
// start, followed by len(line).
func boundaries(line []rune) []int {
	cols := make([]int, 0, len(line)+1)
	col := 0
	g := uniseg.NewGraphemes(string(line))
	for g.Next() {
		cols = append(cols, col)
		col += len(g.Runes())
	}
	return append(cols, col)
}

// nextBoundary returns the first cluster boundary after col.
func nextBoundary(line []rune, col int) int {
	for _, b := range boundaries(line) {
		if b > col {
			return b
		}
	}
	return len(line)
}

// prevBoundary returns the last cluster boundary before col.
func prevBoundary(line []rune, col int) int {
	prev := 0
	for _, b := range boundaries(line) {
		if b >= col {
			break
		}
		prev = b
	}
	return prev
}
