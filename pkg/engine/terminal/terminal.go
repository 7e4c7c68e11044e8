// Package terminal reports the dimensions of the output terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Size returns the width and height of the terminal behind f.
// Falls back to defaults if the size cannot be determined.
func Size(f *os.File) (width, height int) {
	if f == nil {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Fits reports whether a map of the given size can be shown on f without
// wrapping. Non-terminal outputs always fit.
func Fits(f *os.File, mapWidth int) bool {
	if !IsTerminal(f) {
		return true
	}
	width, _ := Size(f)
	return mapWidth <= width
}
