package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/recent/internal/log"
	"github.com/raphi011/recent/internal/output"
	"github.com/raphi011/recent/internal/ui/picker"
)

func newPickCmd() *cobra.Command {
	var (
		copyToClipboard bool
		readd           bool
	)

	cmd := &cobra.Command{
		Use:     "pick",
		Short:   "Choose a recent file interactively",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Choose a recent file with fuzzy search and print its path.

The picker draws on stderr, so the chosen path can be captured from stdout.
With --add the chosen file is moved to the front of the list, as if it had
been opened again.`,
		Example: `  $EDITOR "$(recent pick --add)"
  recent pick --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			if !isTerminal(cmd.InOrStdin()) {
				return errors.New("pick requires a terminal; use 'recent list' instead")
			}

			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			files := store.List(ctx)
			if len(files) == 0 {
				return errNoRecentFiles
			}

			result, err := picker.Run(files, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("picker: %w", err)
			}
			if result.Cancelled {
				l.Debug("pick cancelled")
				return nil
			}

			if readd {
				if err := store.Add(ctx, result.Path); err != nil {
					return fmt.Errorf("add recent file: %w", err)
				}
			}
			if copyToClipboard {
				copyPath(l, result.Path)
			}
			out.Println(result.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy path to clipboard")
	cmd.Flags().BoolVar(&readd, "add", false, "Move the chosen file to the front of the list")

	return cmd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
