package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"vincit.fi/image-triage/backend/session"
)

func printSummary(out io.Writer, s *session.Session) {
	stats := s.Stats()
	title := color.New(color.Bold)
	_, _ = title.Fprintf(out, "%s\n", stats)

	for _, category := range s.Categories().Categories() {
		count := stats.ByCategory[category.Id()]
		line := fmt.Sprintf("  %-20s %d", category.Name(), count)
		if count > 0 {
			fmt.Fprintln(out, color.GreenString(line))
		} else {
			fmt.Fprintln(out, color.HiBlackString(line))
		}
	}

	if stats.Quarantined > 0 {
		fmt.Fprintln(out, color.RedString("  %-20s %d", "error", stats.Quarantined))
		for _, item := range s.Quarantined() {
			fmt.Fprintln(out, color.RedString("    %s", item))
		}
	}
	if stats.Remaining > 0 {
		fmt.Fprintln(out, color.YellowString("  %-20s %d", "not sorted", stats.Remaining))
	}
}
