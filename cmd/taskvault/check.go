package main

import (
	"fmt"
	"io"

	"github.com/amonks/taskvault/internal/taskjson"
	"github.com/amonks/taskvault/internal/ui"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

// check
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the task file and report everything recovered from",
	Long: `Load the task file and report everything recovered from.

Exits 1 when the file's structure is invalid. With --strict, also exits 2
when any warning was reported.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

var checkStrict bool

// fmt
var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite the task file in canonical form",
	Long: `Rewrite the task file in canonical form.

Every recovered default is written back. Records dropped while reading are
not written back. A completed task with no completion time still warns on
the next check. So does a pending task with a completion time, unless
[load] completion is "normalize".`,
	Args: cobra.NoArgs,
	RunE: runFmt,
}

const checkLineWidth = 80
const checkIndent = 2

func init() {
	rootCmd.AddCommand(checkCmd, fmtCmd)

	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit 2 if there are warnings")
}

func runCheck(cmd *cobra.Command, args []string) error {
	store, _, err := openReportingStore(cmd)
	if err != nil {
		return err
	}

	result, err := store.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", store.Path(), summarizeResult(result))
	writeWarnings(out, result.Warnings)

	if checkStrict && !result.Clean() {
		return &exitError{code: 2, msg: fmt.Sprintf("%d %s", len(result.Warnings), plural(len(result.Warnings), "warning", "warnings"))}
	}
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	store, _, err := openReportingStore(cmd)
	if err != nil {
		return err
	}

	result, err := store.Rewrite()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rewrote %s: %s\n", store.Path(), summarizeResult(result))
	return nil
}

func summarizeResult(result *taskjson.Result) string {
	summary := fmt.Sprintf("%d %s", len(result.Tasks), plural(len(result.Tasks), "task", "tasks"))
	if dropped := result.Dropped(); dropped > 0 {
		summary += fmt.Sprintf(", %d dropped", dropped)
	}
	if result.Clean() {
		return summary + ", no warnings"
	}
	n := len(result.Warnings)
	return summary + fmt.Sprintf(", %d %s", n, plural(n, "warning", "warnings"))
}

func writeWarnings(out io.Writer, warnings []taskjson.Warning) {
	for _, w := range warnings {
		line := w.String()
		if w.Value != "" {
			line += fmt.Sprintf(" (got %q)", w.Value)
		}
		wrapped := wordwrap.String(line, checkLineWidth-checkIndent)
		fmt.Fprintln(out, ui.Warning(indent.String(wrapped, checkIndent)))
	}
}
