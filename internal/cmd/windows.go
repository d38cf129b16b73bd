package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/githere/internal/config"
	"github.com/quantmind-br/githere/internal/explorer"
	"github.com/quantmind-br/githere/internal/target"
	"github.com/quantmind-br/githere/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type windowRow struct {
	Handle     string `json:"handle"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Path       string `json:"path,omitempty"`
	Foreground bool   `json:"foreground"`
}

// NewWindowsCmd creates the windows command
func NewWindowsCmd(cfg *config.Config, log *zerolog.Logger, env *Env) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "windows",
		Short: "List open Explorer windows",
		Long: `Show the foreground window and every open Explorer window with the
filesystem path githere would resolve for it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceErrors = true
			var fgHandle uintptr
			fg, err := env.Desktop.ForegroundWindow()
			if err != nil {
				log.Debug().Err(err).Msg("foreground window unavailable")
			} else {
				fgHandle = fg.Handle
			}

			list, err := env.Desktop.ShellWindows()
			if err != nil {
				ui.PrintError("failed to list Explorer windows: %v", err)
				return err
			}
			rows := windowRows(list, fgHandle)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			if fgHandle != 0 {
				ui.PrintKeyValue("Foreground", fmt.Sprintf("%#x %s (%s)", fg.Handle, fg.Class, target.Classify(cfg.Shell, fg.Class)))
			}
			if len(rows) == 0 {
				ui.PrintInfo("No Explorer windows open")
				return nil
			}
			renderWindowTable(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	return cmd
}

func windowRows(list []explorer.ShellWindow, foreground uintptr) []windowRow {
	rows := make([]windowRow, 0, len(list))
	for _, w := range list {
		row := windowRow{
			Handle:     fmt.Sprintf("%#x", w.Handle),
			Name:       w.Name,
			URL:        w.LocationURL,
			Foreground: foreground != 0 && w.Handle == foreground,
		}
		if p, err := explorer.PathFromURL(w.LocationURL); err == nil {
			row.Path = p
		}
		rows = append(rows, row)
	}
	return rows
}

func renderWindowTable(w io.Writer, rows []windowRow) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"FG", "Handle", "Name", "Path"}),
		tablewriter.WithAlignment(tw.MakeAlign(4, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleLight)),
	)

	for _, r := range rows {
		marker := ""
		if r.Foreground {
			marker = "*"
		}
		path := r.Path
		if path == "" {
			path = ui.Muted.Sprint("(virtual)")
		}
		table.Append(marker, r.Handle, r.Name, path)
	}

	table.Render()
}
