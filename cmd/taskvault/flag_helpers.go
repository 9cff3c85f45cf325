package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	internalstrings "github.com/amonks/taskvault/internal/strings"
	"github.com/spf13/cobra"
)

func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}

// parseTaskIDs parses positional task IDs.
func parseTaskIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid task id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// resolveDescriptionFromStdin reads the description from reader when it is "-".
func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	return internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(string(input))), nil
}
