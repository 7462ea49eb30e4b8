package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/recent/internal/output"
	"github.com/raphi011/recent/internal/recent"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "path",
		Short:   "Print the location of the list file",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println(store.Path())
			return nil
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "schema",
		Short:   "Print the JSON Schema of the list file",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.FromContext(cmd.Context()).JSON(recent.Schema())
		},
	}
}
