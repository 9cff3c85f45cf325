package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// import
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all tasks with the contents of another task file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

// export
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write all tasks to another file",
	Long: `Write all tasks to another file.

".json" is appended when the name has no such extension. Exporting an
empty list is refused.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(importCmd, exportCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	result, err := store.Import(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d %s from %s\n", len(result.Tasks), plural(len(result.Tasks), "task", "tasks"), args[0])
	if n := len(result.Warnings); n > 0 {
		fmt.Fprintf(out, "%d %s while reading the source\n", n, plural(n, "warning", "warnings"))
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	written, err := store.Export(args[0])
	if err != nil {
		return err
	}

	tasks, err := store.List()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d %s to %s\n", len(tasks), plural(len(tasks), "task", "tasks"), written)
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
