package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/githere/internal/config"
	"github.com/quantmind-br/githere/internal/errs"
	"github.com/quantmind-br/githere/internal/executable"
	"github.com/quantmind-br/githere/internal/fsops"
	"github.com/quantmind-br/githere/internal/locator"
	"github.com/quantmind-br/githere/internal/target"
	"github.com/quantmind-br/githere/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger, env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the install and the shell environment",
		Long: `Probe every configured registry location, check the launcher binary and
inspect the foreground window, reporting anything that would make the
context-menu command fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceErrors = true
			ui.PrintHeader("githere diagnostics")

			var issues []string
			var warnings []string

			// 1. Registry
			ui.PrintSubheader("Install locations")
			loc, err := env.Locator(cfg, log)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}
			results := loc.Probe()
			renderProbeTable(cmd.OutOrStdout(), results)
			if selected := selectedProbe(results); selected == nil {
				issues = append(issues, "no install location could be opened")
			} else if selected.Err != nil {
				issues = append(issues, fmt.Sprintf("%s: %v", selected.Location, selected.Err))
			}

			// 2. Launcher binary
			ui.PrintSubheader("Launcher binary")
			finder, err := env.Finder(cfg, log)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}
			if root, err := loc.Locate(); err == nil && !fsops.IsDir(env.Fs, root) {
				ui.PrintError("install root %s does not exist", root)
				issues = append(issues, fmt.Sprintf("install root %s is stale", root))
			}
			if exe, err := finder.Find(); err != nil {
				ui.PrintError("%v", err)
				if errs.GetCode(err) == errs.NotFound && isStage(err, executable.StageExecutable) {
					issues = append(issues, fmt.Sprintf("%s not found in install root", cfg.Install.Executable))
				}
			} else {
				ui.PrintSuccess("%s", exe)
			}

			// 3. Shell
			ui.PrintSubheader("Shell")
			if fg, err := env.Desktop.ForegroundWindow(); err != nil {
				ui.PrintWarning("foreground window: %v", err)
				warnings = append(warnings, "foreground window cannot be inspected; only explicit paths will work")
			} else {
				ui.PrintKeyValue("Foreground window", fmt.Sprintf("%s (%s)", fg.Class, target.Classify(cfg.Shell, fg.Class)))
			}
			if dir, err := env.Desktop.DesktopDir(); err != nil {
				ui.PrintWarning("desktop folder: %v", err)
				warnings = append(warnings, "desktop folder is unavailable")
			} else {
				ui.PrintKeyValue("Desktop folder", dir)
			}

			// 4. Configuration
			ui.PrintSubheader("Configuration")
			ui.PrintKeyValue("Value name", cfg.Install.ValueName)
			ui.PrintKeyValue("Directory flag", cfg.Launch.CdFlag)
			ui.PrintKeyValue("Log file", cfg.Paths.LogFile)

			// Summary
			ui.PrintHeader("Summary")
			if len(issues) == 0 {
				ui.PrintSuccess("All critical checks passed!")
			} else {
				ui.PrintError("Found %d issue(s):", len(issues))
				ui.PrintList(issues)
			}
			if len(warnings) > 0 {
				ui.PrintWarning("Found %d warning(s):", len(warnings))
				ui.PrintList(warnings)
			}

			if len(issues) > 0 {
				return fmt.Errorf("system check failed with %d issue(s)", len(issues))
			}
			return nil
		},
	}

	return cmd
}

func renderProbeTable(w io.Writer, results []locator.ProbeResult) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Location", "Key", "Value", "Status"}),
		tablewriter.WithAlignment(tw.MakeAlign(5, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleLight)),
	)

	selected := selectedProbe(results)
	for i, res := range results {
		key := ui.ColorizeStatus(res.Opened, "missing")
		if res.Opened {
			key = ui.ColorizeStatus(true, "open")
		}

		status := "-"
		switch {
		case selected != nil && &results[i] == selected && res.Err == nil:
			status = ui.ColorizeStatus(true, "used")
		case selected != nil && &results[i] == selected:
			status = ui.ColorizeStatus(false, res.Err.Error())
		case res.Opened && res.Err != nil:
			status = res.Err.Error()
		case res.Opened:
			status = "shadowed"
		}

		value := res.Value
		if value == "" {
			value = "-"
		}

		table.Append(
			fmt.Sprintf("%d", i+1),
			res.Location.String(),
			key,
			value,
			status,
		)
	}

	table.Render()
}

// selectedProbe returns the location Locate would read, the first that opens.
func selectedProbe(results []locator.ProbeResult) *locator.ProbeResult {
	for i := range results {
		if results[i].Opened {
			return &results[i]
		}
	}
	return nil
}

func isStage(err error, stage string) bool {
	e, ok := errs.As(err)
	if !ok {
		return false
	}
	s, _ := e.Detail("stage").(string)
	return s == stage
}
