package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// WriteContributors outputs contributor analysis results, dispatching on
// the configured output format. JSON carries the full sorted record set;
// the table shows the top contributors only.
func WriteContributors(contributors []schema.ContributorStats, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, contributors)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg, func(w io.Writer) error {
		return writeContributorTable(contributors, cfg, duration, w)
	}, "Wrote table")
}

// writeContributorTable generates and writes the human-readable table.
func writeContributorTable(contributors []schema.ContributorStats, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	fmt.Fprintln(writer, "📊 Top Contributors:")

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Name", "Email", "Commits", "Pattern", "Confidence", "Day/Night"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	shown := min(schema.TopContributors, len(contributors))
	var data [][]string
	for i, c := range contributors[:shown] {
		label := contract.GetPlainPatternLabel(c.WorkPattern.PatternType)
		if useColor(cfg) {
			label = contract.GetColorPatternLabel(c.WorkPattern.PatternType)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			c.Name,
			c.Email,
			strconv.FormatUint(uint64(c.Commits), 10),
			label,
			fmt.Sprintf("%.1f%%", c.WorkPattern.Confidence*100),
			fmt.Sprintf("%d/%d", c.WorkPattern.DayCommits, c.WorkPattern.NightCommits),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	printContributorLegend(writer)

	var totalCommits uint
	for _, c := range contributors {
		totalCommits += c.Commits
	}
	fmt.Fprintf(writer, "\n📊 Summary: %d contributors, %s commits analyzed in %s\n",
		len(contributors), humanize.Comma(int64(totalCommits)), duration.Round(time.Millisecond))
	return nil
}

// printContributorLegend explains the pattern labels, matching the labels
// produced by the classifier.
func printContributorLegend(w io.Writer) {
	fmt.Fprintln(w, "\nLegend:")
	fmt.Fprintln(w, "☀️  Day Worker: Primarily commits during business hours (9 AM - 6 PM)")
	fmt.Fprintln(w, "🌙  Moonlighter: Commits mostly evenings/nights and weekends")
	fmt.Fprintln(w, "⚖️  Mixed: Balanced between day and night work")
	fmt.Fprintln(w, "❓  Unknown: Insufficient data (< 5 commits)")
}
