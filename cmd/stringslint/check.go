package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"stringslint/internal/diagfmt"
	"stringslint/internal/driver"
	"stringslint/internal/observ"
	"stringslint/internal/source"
)

// checkSettings is the effective configuration after flags and the project
// file are merged.
type checkSettings struct {
	format         string
	color          string
	strictComments bool
	maxDiagnostics int
	timings        bool
	pathMode       diagfmt.PathMode
	baseDir        string // project root for relative paths; "" = working directory
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	settings, err := resolveSettings(cmd, path)
	if err != nil {
		return err
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var timer *observ.Timer
	if settings.timings {
		timer = observ.NewTimer()
	}

	result, err := driver.Check(cmd.Context(), path, driver.CheckOptions{
		MaxDiagnostics: settings.maxDiagnostics,
		StrictComments: settings.strictComments,
		Timer:          timer,
		Stdin:          cmd.InOrStdin(),
	})
	if err != nil {
		if errors.Is(err, source.ErrFileUnreadable) {
			return fmt.Errorf("unable to parse %s: %w", path, unreadableCause(err))
		}
		return err
	}

	out := cmd.OutOrStdout()
	renderIdx := timer.Begin("render")
	err = render(out, result, settings)
	timer.End(renderIdx, settings.format)
	if err != nil {
		return fmt.Errorf("failed to write diagnostics: %w", err)
	}

	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}

	if result.Failed() {
		return errCheckFailed
	}
	return nil
}

func render(out io.Writer, result *driver.CheckResult, settings checkSettings) error {
	if settings.baseDir != "" {
		result.FileSet.SetBaseDir(settings.baseDir)
	}
	switch settings.format {
	case "pretty":
		useColor, err := colorEnabled(settings.color, out)
		if err != nil {
			return err
		}
		return diagfmt.Pretty(out, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor,
			PathMode:  settings.pathMode,
			ShowNotes: true,
		})
	case "short":
		return diagfmt.Short(out, result.Bag, result.FileSet, settings.pathMode, true)
	case "json":
		return diagfmt.JSON(out, result.Bag, result.FileSet, diagfmt.JSONOpts{
			PathMode:     settings.pathMode,
			IncludeNotes: true,
		})
	default:
		return fmt.Errorf("unknown format: %s", settings.format)
	}
}

func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return writerIsTerminal(out), nil
	default:
		return false, fmt.Errorf("invalid color mode %q (expected auto|on|off)", mode)
	}
}

// unreadableCause strips the ErrFileUnreadable marker and keeps the
// underlying reason (missing file, permission, bad encoding).
func unreadableCause(err error) error {
	type multi interface{ Unwrap() []error }
	for {
		m, ok := err.(multi)
		if !ok {
			return err
		}
		var next error
		for _, e := range m.Unwrap() {
			if e != source.ErrFileUnreadable {
				next = e
			}
		}
		if next == nil {
			return err
		}
		err = next
	}
}

func normalizeChoice(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
