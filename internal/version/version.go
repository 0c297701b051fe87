package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the stringslint CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders Version with a distinct colour per numeric component.
// Pre-release and build suffixes are left plain.
func Colored() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		return "dev"
	}
	core, suffix := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, suffix = v[:i], v[i:]
	}
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2]) + suffix
}

// String returns the one-line version banner printed by --version.
func String(colored bool) string {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	if colored {
		v = Colored()
	}
	var sb strings.Builder
	sb.WriteString(v)
	if c := strings.TrimSpace(GitCommit); c != "" {
		sb.WriteString(" (")
		sb.WriteString(c)
		sb.WriteString(")")
	}
	if d := strings.TrimSpace(BuildDate); d != "" {
		sb.WriteString(" built ")
		sb.WriteString(d)
	}
	return sb.String()
}
