package core

import (
	"context"
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// fakeSource replays a fixed commit slice, mirroring what the repository
// walker would produce.
type fakeSource struct {
	commits []schema.Commit
}

func (f *fakeSource) ForEachCommit(_ context.Context, includePaths bool, fn func(schema.Commit) error) error {
	for _, c := range f.commits {
		if !includePaths {
			c.Paths = nil
		}
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}

// Fixed weekday anchors for readable test data. 2024-01-01 is a Monday
// and 2024-01-06 is a Saturday.
var (
	monday   = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
)

// at returns the anchor day shifted to a given hour, optionally pushed
// forward by whole days.
func at(day time.Time, addDays, hour int) time.Time {
	return day.AddDate(0, 0, addDays).Add(time.Duration(hour) * time.Hour)
}

// commitBy builds a pathless commit record for aggregation tests.
func commitBy(name, email string, when time.Time) schema.Commit {
	return schema.Commit{AuthorName: name, AuthorEmail: email, When: when}
}
