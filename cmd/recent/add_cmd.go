package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <path>",
		Short:   "Record a file as most recently opened",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Record a file as the most recently opened one.

The path is stored exactly as given: it is not checked for existence,
made absolute, or cleaned. If the path is already in the list it moves
to the front. The list keeps at most 10 entries.`,
		Example: `  recent add ~/notes/todo.md
  recent add "$PWD/main.go"`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			if err := store.Add(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("add recent file: %w", err)
			}
			return nil
		},
	}

	return cmd
}
