// Package output renders completed dispatch results and failures for the
// terminal. Every render returns one string so concurrent dispatches can
// print whole results atomically.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/ad-si/cai/internal/llm"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorBold  = "\033[1m"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Colorize reports whether decorated output should be used for stdout.
func Colorize() bool {
	return isTerminal(os.Stdout)
}

func bold(s string, colorize bool) string {
	if !colorize {
		return s
	}
	return colorBold + s + colorReset
}

// header formats the metadata line shown above every non-raw result:
// elapsed time and the resolved model label.
func header(label string, elapsedMs int64, colorize bool) string {
	return bold(fmt.Sprintf("⏱️ %5d ms | 🧠 %s", elapsedMs, label), colorize)
}

// Render formats one completed dispatch. Raw mode prints the response text
// only, with no metadata line and no decoration.
func Render(result *llm.Result, raw bool, colorize bool) string {
	if raw {
		return result.Outcome.Text
	}

	var b strings.Builder
	b.WriteString(header(result.Label, result.Elapsed.Milliseconds(), colorize))
	b.WriteString("\n\n")

	if text := strings.TrimRight(result.Outcome.Text, "\n"); text != "" {
		b.WriteString(text)
		b.WriteString("\n")
	}

	for _, path := range result.Outcome.Files {
		fmt.Fprintf(&b, "Saved %s\n", path)
	}

	if len(result.Outcome.Citations) > 0 {
		b.WriteString("\nSources:\n")
		for i, c := range result.Outcome.Citations {
			fmt.Fprintf(&b, "%d. %s\n   %s\n", i+1, c.Title, c.URL)
			if c.Date != "" {
				fmt.Fprintf(&b, "   Published: %s\n", c.Date)
			}
			if c.LastUpdated != "" {
				fmt.Fprintf(&b, "   Updated:   %s\n", c.LastUpdated)
			}
		}
	}

	return b.String()
}

// RenderError formats one failed dispatch so it stays attributable to its
// model when several dispatches run concurrently. A failure that made it past
// model resolution carries elapsed time and gets the same metadata line as a
// success; earlier failures have no timing to show.
func RenderError(label string, elapsed time.Duration, err error, colorize bool) string {
	var b strings.Builder
	switch {
	case label != "" && elapsed > 0:
		b.WriteString(header(label, elapsed.Milliseconds(), colorize))
		b.WriteString("\n")
	case label != "":
		b.WriteString(bold("🧠 "+label, colorize))
		b.WriteString("\n")
	}
	msg := "ERROR:\n" + err.Error()
	if colorize {
		msg = colorRed + msg + colorReset
	}
	b.WriteString(msg)
	b.WriteString("\n")
	return b.String()
}
