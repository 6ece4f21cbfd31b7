package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"

	"overlog/internal/config"
)

// fallbackWidth is used when the terminal width cannot be determined
const fallbackWidth = 80

// printHelp writes the full help text
func printHelp(w io.Writer) {
	fmt.Fprintf(w, "\n%s %s\n", titleStyle.Render(config.AppName), versionStyle.Render("v"+config.Version))
	fmt.Fprintf(w, "%s\n\n", mutedStyle.Render(config.AppDescription))

	fmt.Fprintf(w, "%s\n", sectionStyle.Render("USAGE"))
	fmt.Fprintf(w, "  %s %s\n\n", config.AppName, mutedStyle.Render("[flags] [service...]"))

	fmt.Fprintf(w, "%s\n", sectionStyle.Render("FLAGS"))
	fmt.Fprintf(w, "  %-14s %s\n", flagStyle.Render("-f, --follow"), mutedStyle.Render("Follow log output"))
	fmt.Fprintf(w, "  %-14s %s\n\n", flagStyle.Render("-n, --tail"), mutedStyle.Render("History lines to show: a positive count or 'all' (default "+config.DefaultTail+")"))

	fmt.Fprintf(w, "%s\n", sectionStyle.Render("SERVICES"))
	fmt.Fprintf(w, "%s\n", mutedStyle.Render("  Names may be glob patterns; no services means all of them."))

	for _, row := range serviceRows(terminalWidth() - 2) {
		fmt.Fprintf(w, "  %s\n", serviceStyle.Render(row))
	}

	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", sectionStyle.Render("EXAMPLES"))
	fmt.Fprintf(w, "  %-24s %s\n", config.AppName, mutedStyle.Render("Recent logs for all services"))
	fmt.Fprintf(w, "  %-24s %s\n", config.AppName+" -f web", mutedStyle.Render("Follow the web service"))
	fmt.Fprintf(w, "  %-24s %s\n\n", config.AppName+" -n all 'doc*'", mutedStyle.Render("Full history for matching services"))
}

// printUsage writes the short usage summary
func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [-f] [-n COUNT|all] [SERVICE...]\n", config.AppName)
	fmt.Fprintf(w, "Services: %s\n", strings.Join(config.KnownServices, ", "))
	fmt.Fprintf(w, "Run '%s --help' for details.\n", config.AppName)
}

// serviceRows lays the known service names out in rows that fit the width
func serviceRows(width int) []string {
	if width < 20 {
		width = 20
	}

	var (
		rows []string
		row  strings.Builder
	)

	for _, name := range config.KnownServices {
		if row.Len() > 0 && row.Len()+len(name)+2 > width {
			rows = append(rows, row.String())
			row.Reset()
		}

		if row.Len() > 0 {
			row.WriteString("  ")
		}

		row.WriteString(name)
	}

	if row.Len() > 0 {
		rows = append(rows, row.String())
	}

	return rows
}

// terminalWidth returns the current terminal width, or a fallback
func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width < 40 {
		return fallbackWidth
	}

	return width
}
