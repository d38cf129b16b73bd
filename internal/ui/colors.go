package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color scheme for githere
var (
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow)
	Info    = color.New(color.FgCyan)

	Highlight = color.New(color.FgHiCyan, color.Bold)
	Muted     = color.New(color.Faint)
	Bold      = color.New(color.Bold)

	CheckMark = color.GreenString("✓")
	CrossMark = color.RedString("✗")
	Arrow     = color.CyanString("→")
	Bullet    = color.HiBlackString("•")

	// Target sources
	SourceSelection = color.New(color.FgGreen)
	SourceSite      = color.New(color.FgBlue)
	SourceDesktop   = color.New(color.FgMagenta)
	SourceWindow    = color.New(color.FgCyan)
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects the Print helpers. A nil writer restores the default.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

// InitColors initializes color settings based on environment and the
// configured mode (auto, always, never).
func InitColors(mode string) {
	switch mode {
	case "never":
		DisableColors()
		return
	case "always":
		EnableColors()
		return
	}

	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		DisableColors()
	}
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Success.Fprintf(stdout, "%s %s\n", CheckMark, fmt.Sprintf(format, args...))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	Error.Fprintf(stderr, "%s Error: %s\n", CrossMark, fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Warning.Fprintf(stderr, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Info.Fprintf(stdout, "%s %s\n", Arrow, fmt.Sprintf(format, args...))
}

// PrintKeyValue prints a key-value pair with color
func PrintKeyValue(key, value string) {
	Bold.Fprintf(stdout, "%s: ", key)
	fmt.Fprintln(stdout, value)
}

// PrintHeader prints a section header
func PrintHeader(text string) {
	fmt.Fprintln(stdout)
	Bold.Fprintln(stdout, text)
	Muted.Fprintln(stdout, "────────────────────────────────────────")
}

// PrintSubheader prints a subsection header
func PrintSubheader(text string) {
	fmt.Fprintln(stdout)
	Highlight.Fprintln(stdout, text)
}

// PrintList prints a bulleted list
func PrintList(items []string) {
	for _, item := range items {
		fmt.Fprintf(stdout, "  %s %s\n", Bullet, item)
	}
}

// ColorizeSource returns a colored target source name
func ColorizeSource(source string) string {
	switch source {
	case "selection":
		return SourceSelection.Sprint(source)
	case "site":
		return SourceSite.Sprint(source)
	case "desktop":
		return SourceDesktop.Sprint(source)
	case "explorer-window":
		return SourceWindow.Sprint(source)
	default:
		return source
	}
}

// ColorizeStatus renders ok/fail markers for table cells.
func ColorizeStatus(ok bool, text string) string {
	if ok {
		return Success.Sprint(text)
	}
	return Error.Sprint(text)
}

// DisableColors disables all color output
func DisableColors() {
	color.NoColor = true
}

// EnableColors enables color output
func EnableColors() {
	color.NoColor = false
}
