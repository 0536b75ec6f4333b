package notify

import (
	"fmt"
	"strings"

	"github.com/san-kum/mrua/internal/motion"
)

// Section is a titled group of summary lines.
type Section struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// SummarySections lays out s for the summary dialogs.
func SummarySections(s motion.Summary) []Section {
	out := []Section{
		{
			Title: "Initial parameters",
			Lines: []string{
				fmt.Sprintf("Configured velocity: %g m/s", s.ConfiguredVelocity),
				fmt.Sprintf("Acceleration: %g m/s²", s.Acceleration),
				fmt.Sprintf("Total distance: %g m", s.TotalDistance),
			},
		},
		{
			Title: "Current results",
			Lines: []string{
				fmt.Sprintf("Elapsed time: %.2f s", s.Elapsed),
				fmt.Sprintf("Distance traveled: %.2f m (%.1f%%)", s.DistanceTraveled, s.PercentComplete),
				fmt.Sprintf("Average velocity: %.2f m/s", s.AverageVelocity),
			},
		},
	}

	t := s.Target
	switch {
	case t == nil:
	case t.Reached:
		out = append(out, Section{
			Title: "Target results",
			Lines: []string{
				fmt.Sprintf("Target distance: %g m", t.Distance),
				fmt.Sprintf("Time to reach target: %.2f s", t.TimeToTarget),
				fmt.Sprintf("Average velocity to target: %.2f m/s", t.AverageVelocity),
			},
		})
	default:
		est := "unknown"
		if t.EstimatedTime > 0 {
			est = fmt.Sprintf("%.2f s", t.EstimatedTime)
		}
		out = append(out, Section{
			Title: "Target",
			Lines: []string{
				fmt.Sprintf("Target distance: %g m", t.Distance),
				"Estimated time: " + est,
				"Status: not reached",
			},
		})
	}
	return out
}

// SummaryText renders the sections as plain text.
func SummaryText(s motion.Summary) string {
	var b strings.Builder
	for i, sec := range SummarySections(s) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sec.Title + ":\n")
		for _, l := range sec.Lines {
			b.WriteString("  " + l + "\n")
		}
	}
	return b.String()
}
