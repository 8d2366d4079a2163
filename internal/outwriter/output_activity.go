package outwriter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// maxBarWidth caps the hourly bar chart so wide terminals stay readable.
const maxBarWidth = 50

// WriteActivity outputs activity analysis results, dispatching on the
// configured output format.
func WriteActivity(stats schema.ActivityStats, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, stats)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg, func(w io.Writer) error {
		return writeActivityReport(stats, cfg, duration, w)
	}, "Wrote report")
}

// writeActivityReport prints monthly counts chronologically, then an
// hourly bar chart covering every hour 0-23 including empty ones.
func writeActivityReport(stats schema.ActivityStats, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	fmt.Fprintln(writer, "📈 Commit Activity by Month:")

	// Lexicographic order equals chronological order for YYYY-MM keys.
	months := make([]string, 0, len(stats.MonthlyCommits))
	for month := range stats.MonthlyCommits {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		fmt.Fprintf(writer, "%s: %d commits\n", month, stats.MonthlyCommits[month])
	}

	fmt.Fprintln(writer, "\n📊 Commit Activity by Hour:")

	var maxCount uint
	for _, count := range stats.HourlyCommits {
		if count > maxCount {
			maxCount = count
		}
	}
	barWidth := hourlyBarWidth(cfg)

	var totalCommits uint
	for hour := 0; hour < 24; hour++ {
		count := stats.HourlyCommits[hour]
		totalCommits += count
		fmt.Fprintf(writer, "%02d:00 - %02d:59 │ %-*s %d commits\n",
			hour, hour, barWidth, renderBar(count, maxCount, barWidth), count)
	}

	fmt.Fprintf(writer, "\n📊 Summary: %s commits across %d months in %s\n",
		humanize.Comma(int64(totalCommits)), len(months), duration.Round(time.Millisecond))
	return nil
}

// hourlyBarWidth derives the bar width from the terminal width, leaving
// room for the hour-range prefix and the trailing count.
func hourlyBarWidth(cfg *contract.Config) int {
	// "HH:00 - HH:59 │ " prefix plus " N commits" suffix.
	const reserved = 30

	available := terminalWidth(cfg) - reserved
	if available < 10 {
		return 10
	}
	if available > maxBarWidth {
		return maxBarWidth
	}
	return available
}

// renderBar scales a count against the busiest hour. Any non-zero count
// draws at least one cell so sparse hours stay visible.
func renderBar(count, maxCount uint, barWidth int) string {
	if count == 0 || maxCount == 0 {
		return ""
	}
	cells := int(uint(barWidth) * count / maxCount)
	if cells < 1 {
		cells = 1
	}
	return strings.Repeat("█", cells)
}
