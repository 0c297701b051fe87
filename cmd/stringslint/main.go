package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"stringslint/internal/version"
)

var (
	// errUsage is printed verbatim when the argument count is wrong.
	errUsage = errors.New("stringslint requires a single argument")
	// errCheckFailed signals that diagnostics were already printed.
	errCheckFailed = errors.New("check failed")
)

func newRootCmd(stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stringslint [flags] <path>",
		Short: "Validate the syntax of a .strings localization file",
		Long: `stringslint checks a "key" = "value"; resource file in a single pass and
reports every syntax error at its line and column. The exit status is 0 when
the file is valid and 1 otherwise. Pass - to read standard input.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runCheck,
	}

	cmd.Version = version.String(writerIsTerminal(stdout))
	cmd.SetVersionTemplate("stringslint {{.Version}}\n")

	flags := cmd.Flags()
	flags.String("format", "pretty", "diagnostics format (pretty|short|json)")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.String("path-mode", "as-given", "file paths in diagnostics (as-given|absolute|relative|basename|auto)")
	flags.Bool("strict-comments", false, "report '/' that does not start a comment")
	flags.Int("max-diagnostics", 0, "maximum number of diagnostics to show (0 = unlimited)")
	flags.String("config", "", "path to a .stringslint.toml (default: search upwards from the file)")
	flags.Bool("timings", false, "print phase timings to stderr")
	flags.String("trace", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-output", "", "trace destination file (default: stderr)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.String("cpu-profile", "", "write a CPU profile to file")
	flags.String("mem-profile", "", "write a heap profile to file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to file")

	return cmd
}

// execute runs the CLI and returns the process exit status.
// Every fatal message goes to stdout next to the diagnostics.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintln(stdout, err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func writerIsFile(w io.Writer) bool {
	_, ok := w.(*os.File)
	return ok
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
