// Package schema has models, enums and JSON contracts for all parts of gitpulse.
package schema

import "time"

// Commit is a single commit record produced by the repository walker.
// It carries only what the aggregators consume: author identity, the
// author timestamp normalized to UTC, and (when requested) the paths
// touched relative to the commit's first parent.
type Commit struct {
	AuthorName  string
	AuthorEmail string
	When        time.Time
	// Paths holds the new-side path of every changed tree entry versus the
	// first parent. It is nil unless the walk was asked to compute diffs.
	// Root commits always have an empty set.
	Paths []string
}

// WorkPattern summarizes when a contributor tends to commit.
// It is derived once from a contributor's full timestamp list and is
// immutable afterwards.
type WorkPattern struct {
	PatternType    PatternType `json:"pattern_type"`
	DayCommits     uint        `json:"day_commits"`
	NightCommits   uint        `json:"night_commits"`
	WeekendCommits uint        `json:"weekend_commits"`
	Confidence     float64     `json:"confidence"`
}

// ContributorStats is the aggregated record for one "{name} <{email}>"
// identity. The same human with two emails is two contributors.
type ContributorStats struct {
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Commits       uint         `json:"commits"`
	FirstCommit   time.Time    `json:"first_commit"`
	LastCommit    time.Time    `json:"last_commit"`
	WorkPattern   WorkPattern  `json:"work_pattern"`
	HourlyCommits map[int]uint `json:"hourly_commits"`
}

// FileStats tracks how many commits touched a path and when it was last
// modified. Renames are not followed, so a renamed file shows up as two
// independent paths.
type FileStats struct {
	Path         string    `json:"path"`
	Commits      uint      `json:"commits"`
	LastModified time.Time `json:"last_modified"`
}

// ActivityStats buckets commit counts across all contributors combined.
// Monthly keys use the zero-padded "YYYY-MM" form, which sorts
// lexicographically into chronological order.
type ActivityStats struct {
	MonthlyCommits map[string]uint `json:"monthly_commits"`
	HourlyCommits  map[int]uint    `json:"hourly_commits"`
}
