// Package parquet provides data structures and functions for exporting
// gitpulse analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/gitpulse/gitpulse/schema"
)

// ContributorRow is the flattened Parquet record for one contributor.
type ContributorRow struct {
	Name           string    `parquet:"name,snappy"`
	Email          string    `parquet:"email,snappy"`
	Commits        int64     `parquet:"commits,snappy"`
	FirstCommit    time.Time `parquet:"first_commit,snappy"`
	LastCommit     time.Time `parquet:"last_commit,snappy"`
	PatternType    string    `parquet:"pattern_type,snappy"`
	DayCommits     int64     `parquet:"day_commits,snappy"`
	NightCommits   int64     `parquet:"night_commits,snappy"`
	WeekendCommits int64     `parquet:"weekend_commits,snappy"`
	Confidence     float64   `parquet:"confidence,snappy"`
}

// FileRow is the Parquet record for one tracked path.
type FileRow struct {
	Path         string    `parquet:"path,snappy"`
	Commits      int64     `parquet:"commits,snappy"`
	LastModified time.Time `parquet:"last_modified,snappy"`
}

// WriteContributorsParquet writes contributor rows to a Parquet file.
func WriteContributorsParquet(data []ContributorRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteFileStatsParquet writes file rows to a Parquet file.
func WriteFileStatsParquet(data []FileRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes rows of any record type to outputPath. The Parquet
// schema is inferred from the struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ConvertContributorStats converts schema.ContributorStats to ContributorRow for Parquet export.
func ConvertContributorStats(records []schema.ContributorStats) []ContributorRow {
	result := make([]ContributorRow, len(records))
	for i, record := range records {
		result[i] = ContributorRow{
			Name:           record.Name,
			Email:          record.Email,
			Commits:        int64(record.Commits),
			FirstCommit:    record.FirstCommit,
			LastCommit:     record.LastCommit,
			PatternType:    string(record.WorkPattern.PatternType),
			DayCommits:     int64(record.WorkPattern.DayCommits),
			NightCommits:   int64(record.WorkPattern.NightCommits),
			WeekendCommits: int64(record.WorkPattern.WeekendCommits),
			Confidence:     record.WorkPattern.Confidence,
		}
	}
	return result
}

// ConvertFileStats converts schema.FileStats to FileRow for Parquet export.
func ConvertFileStats(records []schema.FileStats) []FileRow {
	result := make([]FileRow, len(records))
	for i, record := range records {
		result[i] = FileRow{
			Path:         record.Path,
			Commits:      int64(record.Commits),
			LastModified: record.LastModified,
		}
	}
	return result
}
