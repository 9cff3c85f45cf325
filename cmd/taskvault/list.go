package main

import (
	"fmt"

	"github.com/amonks/taskvault/internal/taskjson"
	"github.com/amonks/taskvault/task"
	"github.com/amonks/taskvault/vault"
	"github.com/spf13/cobra"
)

// list
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks.

--filter is one of all, pending, completed, overdue, today.
--sort is one of none, priority, due, title, id. Both default to
[list] filter and [list] sort from config.

--json prints the selected tasks in the task file format.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listFilter string
	listSort   string
	listJSON   bool
)

// stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(listCmd, statsCmd)

	listCmd.Flags().StringVar(&listFilter, "filter", "", "Filter (all, pending, completed, overdue, today)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort order (none, priority, due, title, id)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in the task file format")
}

func runList(cmd *cobra.Command, args []string) error {
	store, s, err := openStore(cmd)
	if err != nil {
		return err
	}

	filterName := s.cfg.List.Filter
	if cmd.Flags().Changed("filter") {
		filterName = listFilter
	}
	filter, err := task.ParseFilter(filterName)
	if err != nil {
		return err
	}

	sortName := s.cfg.List.Sort
	if cmd.Flags().Changed("sort") {
		sortName = listSort
	}
	sortBy, err := task.ParseSort(sortName)
	if err != nil {
		return err
	}

	tasks, err := store.Query(vault.ListFilter{Filter: filter, Sort: sortBy})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listJSON {
		_, err := out.Write(taskjson.Marshal(tasks))
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(out, emptyListMessage(filter))
		return nil
	}
	fmt.Fprint(out, formatTaskTable(tasks, today(), nowFunc()))
	return nil
}

func emptyListMessage(filter task.Filter) string {
	if filter == task.FilterAll {
		return "No tasks found."
	}
	return fmt.Sprintf("No %s tasks found.", filter)
}

func runStats(cmd *cobra.Command, args []string) error {
	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatStats(stats))
	return nil
}

func formatStats(stats task.Stats) string {
	return fmt.Sprintf("Total:     %d\nPending:   %d\nCompleted: %d\nOverdue:   %d\n",
		stats.Total, stats.Pending, stats.Completed, stats.Overdue)
}
