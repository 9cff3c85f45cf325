// Package main implements the taskvault CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskvault",
	Short: "Taskvault - a to-do list kept in a plain JSON file",
	Long: `Taskvault keeps a to-do list in a JSON file.

The file defaults to tasks.json in the current directory. Override it with
--file, the TASKVAULT_FILE environment variable, or [storage] file in
taskvault.toml or ~/.config/taskvault/config.toml.

Hand-edited files are read leniently: missing or malformed fields fall
back to defaults and are reported as warnings on stderr.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	rootFile     string
	rootLogLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "Task file (default tasks.json, or $TASKVAULT_FILE)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
}

// exitError carries a process exit code other than 1.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

func (e *exitError) ExitCode() int {
	return e.code
}
