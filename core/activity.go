package core

import (
	"context"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// CollectActivity folds the commit stream into monthly and hourly commit
// counts across all contributors combined. Both mappings only ever grow;
// the fold is order-independent.
func CollectActivity(ctx context.Context, src contract.CommitSource) (schema.ActivityStats, error) {
	stats := schema.ActivityStats{
		MonthlyCommits: make(map[string]uint),
		HourlyCommits:  make(map[int]uint),
	}

	err := src.ForEachCommit(ctx, false, func(c schema.Commit) error {
		when := c.When.UTC()
		stats.MonthlyCommits[when.Format(schema.MonthKeyFormat)]++
		stats.HourlyCommits[when.Hour()]++
		return nil
	})
	if err != nil {
		return schema.ActivityStats{}, err
	}
	return stats, nil
}
