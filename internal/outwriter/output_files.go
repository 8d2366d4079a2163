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

// lastModifiedFormat matches the timestamp shown in the files table.
const lastModifiedFormat = "2006-01-02 15:04"

// WriteFiles outputs file-change analysis results, dispatching on the
// configured output format. JSON carries the full sorted record set; the
// table shows the top files only.
func WriteFiles(files []schema.FileStats, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, files)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg, func(w io.Writer) error {
		return writeFileTable(files, cfg, duration, w)
	}, "Wrote table")
}

// writeFileTable generates and writes the human-readable table.
func writeFileTable(files []schema.FileStats, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	fmt.Fprintln(writer, "📁 Most Modified Files:")

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Path", "Commits", "Last Modified"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	pathWidth := getMaxTablePathWidth(cfg)
	shown := min(schema.TopFiles, len(files))
	var data [][]string
	for i, f := range files[:shown] {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(f.Path, pathWidth),
			strconv.FormatUint(uint64(f.Commits), 10),
			f.LastModified.UTC().Format(lastModifiedFormat),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	var totalCommits uint
	for _, f := range files {
		totalCommits += f.Commits
	}
	fmt.Fprintf(writer, "\n📁 Summary: %d files, %s touching commits in %s\n",
		len(files), humanize.Comma(int64(totalCommits)), duration.Round(time.Millisecond))
	return nil
}
