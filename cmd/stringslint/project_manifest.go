package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"stringslint/internal/diagfmt"
	"stringslint/internal/driver"
)

const manifestName = ".stringslint.toml"

type projectConfig struct {
	Lint   lintConfig   `toml:"lint"`
	Output outputConfig `toml:"output"`
}

type lintConfig struct {
	StrictComments bool `toml:"strict_comments"`
}

type outputConfig struct {
	Format         string `toml:"format"`
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	PathMode       string `toml:"path_mode"`
}

// projectManifest is a decoded project file together with the keys it sets.
type projectManifest struct {
	Path   string
	Config projectConfig
	meta   toml.MetaData
}

func (m *projectManifest) defines(key ...string) bool {
	return m != nil && m.meta.IsDefined(key...)
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(path string) (*projectManifest, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("output", "max_diagnostics") && cfg.Output.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("%s: [output].max_diagnostics must not be negative", path)
	}
	return &projectManifest{Path: path, Config: cfg, meta: meta}, nil
}

// discoverManifest returns the explicit --config file or the nearest
// .stringslint.toml above the checked file. A missing project file is not
// an error; a missing explicit one is.
func discoverManifest(explicit, target string) (*projectManifest, error) {
	if explicit != "" {
		return loadProjectManifest(explicit)
	}
	startDir := "."
	if target != driver.StdinPath {
		startDir = filepath.Dir(target)
	}
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, err
	}
	return loadProjectManifest(path)
}

// resolveSettings merges flags with the project file. A flag given on the
// command line always wins over the file.
func resolveSettings(cmd *cobra.Command, target string) (checkSettings, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return checkSettings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	manifest, err := discoverManifest(configPath, target)
	if err != nil {
		return checkSettings{}, err
	}

	var s checkSettings
	if s.format, err = flags.GetString("format"); err != nil {
		return checkSettings{}, fmt.Errorf("failed to get format flag: %w", err)
	}
	if s.color, err = flags.GetString("color"); err != nil {
		return checkSettings{}, fmt.Errorf("failed to get color flag: %w", err)
	}
	if s.strictComments, err = flags.GetBool("strict-comments"); err != nil {
		return checkSettings{}, fmt.Errorf("failed to get strict-comments flag: %w", err)
	}
	if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return checkSettings{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return checkSettings{}, fmt.Errorf("failed to get timings flag: %w", err)
	}
	pathMode, err := flags.GetString("path-mode")
	if err != nil {
		return checkSettings{}, fmt.Errorf("failed to get path-mode flag: %w", err)
	}

	if manifest.defines("output", "format") && !flags.Changed("format") {
		s.format = manifest.Config.Output.Format
	}
	if manifest.defines("output", "color") && !flags.Changed("color") {
		s.color = manifest.Config.Output.Color
	}
	if manifest.defines("lint", "strict_comments") && !flags.Changed("strict-comments") {
		s.strictComments = manifest.Config.Lint.StrictComments
	}
	if manifest.defines("output", "max_diagnostics") && !flags.Changed("max-diagnostics") {
		s.maxDiagnostics = manifest.Config.Output.MaxDiagnostics
	}
	if manifest.defines("output", "path_mode") && !flags.Changed("path-mode") {
		pathMode = manifest.Config.Output.PathMode
	}
	if manifest != nil {
		s.baseDir = filepath.Dir(manifest.Path)
	}
	if s.pathMode, err = diagfmt.ParsePathMode(pathMode); err != nil {
		return checkSettings{}, err
	}

	s.format = normalizeChoice(s.format)
	s.color = normalizeChoice(s.color)
	switch s.format {
	case "pretty", "short", "json":
	default:
		return checkSettings{}, fmt.Errorf("unsupported format %q (must be pretty, short or json)", s.format)
	}
	switch s.color {
	case "auto", "on", "off":
	default:
		return checkSettings{}, fmt.Errorf("invalid color mode %q (expected auto|on|off)", s.color)
	}
	if s.maxDiagnostics < 0 {
		return checkSettings{}, fmt.Errorf("--max-diagnostics must not be negative")
	}
	return s, nil
}
