package renderer

import (
	"fmt"
	"strings"

	shop "github.com/Jvntrials/COGSHALFHALF"
)

// ActivityMarkdown generates a markdown report of the whole ledger
// activity, oldest entries first.
func ActivityMarkdown(entries []shop.ActivityEntry, currency string) string {
	r := &activityRenderer{
		Builder:  &strings.Builder{},
		currency: currency,
	}

	r.Printf("## Activity\n\n")
	if len(entries) == 0 {
		r.Printf("Nothing recorded yet.\n")
		return r.String()
	}

	r.Printf("| Date | Kind | Detail | Amount |\n")
	r.Printf("|:---|:---|:---|---:|\n")
	for _, e := range entries {
		r.renderEntry(e)
	}
	return r.String()
}

// activityRenderer formats the output of the activity report into a markdown string.
type activityRenderer struct {
	*strings.Builder
	currency string
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *activityRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *activityRenderer) renderEntry(e shop.ActivityEntry) {
	detail := e.Label
	if detail == "" {
		detail = e.ID
	}
	r.Printf("| %s | %s | %s | %s |\n", e.Date.Short(), e.Kind, detail, Amount(e.Amount, r.currency))
}
