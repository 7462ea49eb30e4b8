package main

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/recent/internal/log"
	"github.com/raphi011/recent/internal/output"
)

var errNoRecentFiles = errors.New("no recent files")

func newLastCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "last",
		Short:   "Print the most recently opened file",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Example: `  $EDITOR "$(recent last)"   # Reopen the last file
  recent last --copy         # Also copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			files := store.List(ctx)
			if len(files) == 0 {
				return errNoRecentFiles
			}

			if copyToClipboard {
				copyPath(log.FromContext(ctx), files[0])
			}
			out.Println(files[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy path to clipboard")

	return cmd
}

// copyPath puts path on the clipboard. Failure is only a warning.
func copyPath(l *log.Logger, path string) {
	if err := clipboard.WriteAll(path); err != nil {
		l.Warn("failed to copy to clipboard: %v", err)
	}
}
