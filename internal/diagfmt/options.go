package diagfmt

import (
	"fmt"
	"strings"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAsGiven prints the path exactly as it was loaded.
	PathModeAsGiven PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
	PathModeAuto
)

var pathModeNames = map[string]PathMode{
	"as-given": PathModeAsGiven,
	"absolute": PathModeAbsolute,
	"relative": PathModeRelative,
	"basename": PathModeBasename,
	"auto":     PathModeAuto,
}

// ParsePathMode converts a flag or config value to a PathMode.
func ParsePathMode(s string) (PathMode, error) {
	if mode, ok := pathModeNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return mode, nil
	}
	return PathModeAsGiven, fmt.Errorf("invalid path mode %q (expected as-given|absolute|relative|basename|auto)", s)
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode     PathMode
	Max          int // обрезка вывода, не Bag
	IncludeNotes bool
}
