package main

import (
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/recent/internal/config"
	"github.com/raphi011/recent/internal/log"
	"github.com/raphi011/recent/internal/output"
	"github.com/raphi011/recent/internal/ui/picker"
	"github.com/raphi011/recent/internal/ui/static"
)

func newListCmd() *cobra.Command {
	var (
		jsonOutput bool
		plain      bool
		filter     string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List recent files, most recent first",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List recently opened files, most recent first.

On a terminal the list is shown as a table of file names and paths.
When piped, one path is printed per line. The default can be changed
with list.format in the config file.

A missing or damaged list file reads as an empty list.`,
		Example: `  recent list                 # Table on a terminal, paths when piped
  recent list --json          # JSON array for scripting
  recent list --filter notes  # Fuzzy filter, best match first`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			files := store.List(ctx)
			if filter != "" {
				matches := picker.Rank(files, filter)
				files = make([]string, len(matches))
				for i, m := range matches {
					files[i] = m.Path
				}
			}

			switch listFormat(cfg.List.Format, jsonOutput, plain, out.IsTerminal()) {
			case "json":
				return out.JSON(files)
			case "plain":
				for _, f := range files {
					out.Println(f)
				}
				return nil
			default:
				if len(files) == 0 {
					l.Println("No recent files")
					return nil
				}
				w := colorprofile.NewWriter(out.Writer(), os.Environ())
				_, err := io.WriteString(w, static.RenderTable(static.RecentHeaders, static.RecentTableRows(files)))
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Output one path per line")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Fuzzy filter entries")
	cmd.MarkFlagsMutuallyExclusive("json", "plain")

	return cmd
}

// listFormat picks the output format. Flags beat config; "auto" renders a
// table only on a terminal.
func listFormat(configured string, jsonOutput, plain, terminal bool) string {
	switch {
	case jsonOutput:
		return "json"
	case plain:
		return "plain"
	case configured == "" || configured == "auto":
		if terminal {
			return "table"
		}
		return "plain"
	default:
		return configured
	}
}
