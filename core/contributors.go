package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// Fallback identity values so every commit lands in exactly one bucket.
const (
	fallbackAuthorName  = "Unknown"
	fallbackAuthorEmail = "unknown@example.com"
)

// contributorAcc is the running per-identity record built during the walk.
// The timestamp list is kept in walk order; it exists only as classifier
// input and its order is semantically irrelevant.
type contributorAcc struct {
	stats schema.ContributorStats
	times []time.Time
}

// CollectContributors folds the commit stream into one record per distinct
// "{name} <{email}>" identity, then classifies each contributor's work
// pattern over its full timestamp list. The result is sorted by commit
// count descending; tie order among equal counts is unspecified.
func CollectContributors(ctx context.Context, src contract.CommitSource) ([]schema.ContributorStats, error) {
	byIdentity := make(map[string]*contributorAcc)

	err := src.ForEachCommit(ctx, false, func(c schema.Commit) error {
		name, email := c.AuthorName, c.AuthorEmail
		if name == "" {
			name = fallbackAuthorName
		}
		if email == "" {
			email = fallbackAuthorEmail
		}
		key := fmt.Sprintf("%s <%s>", name, email)

		acc, ok := byIdentity[key]
		if !ok {
			acc = &contributorAcc{stats: schema.ContributorStats{
				Name:        name,
				Email:       email,
				FirstCommit: c.When,
				LastCommit:  c.When,
			}}
			byIdentity[key] = acc
		}

		acc.stats.Commits++
		if c.When.Before(acc.stats.FirstCommit) {
			acc.stats.FirstCommit = c.When
		}
		if c.When.After(acc.stats.LastCommit) {
			acc.stats.LastCommit = c.When
		}
		acc.times = append(acc.times, c.When)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Classification needs the full-sample ratios, so it runs only after
	// the walk completes.
	contributors := make([]schema.ContributorStats, 0, len(byIdentity))
	for _, acc := range byIdentity {
		acc.stats.WorkPattern = ClassifyWorkPattern(acc.times)
		acc.stats.HourlyCommits = HourlyDistribution(acc.times)
		contributors = append(contributors, acc.stats)
	}

	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Commits > contributors[j].Commits
	})
	return contributors, nil
}
