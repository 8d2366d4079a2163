package core

import (
	"context"
	"sort"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// CollectFileChanges folds each commit's changed-path set into per-path
// modification counts. A path's count tallies commits that touched it, not
// line-level changes; a rename shows up as two independent paths. Paths
// only ever present in a root commit are never recorded, since root
// commits have no parent to diff against.
//
// The result is sorted by commit count descending; tie order is
// unspecified.
func CollectFileChanges(ctx context.Context, src contract.CommitSource) ([]schema.FileStats, error) {
	byPath := make(map[string]*schema.FileStats)

	err := src.ForEachCommit(ctx, true, func(c schema.Commit) error {
		for _, p := range c.Paths {
			stats, ok := byPath[p]
			if !ok {
				byPath[p] = &schema.FileStats{Path: p, Commits: 1, LastModified: c.When}
				continue
			}
			stats.Commits++
			if c.When.After(stats.LastModified) {
				stats.LastModified = c.When
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	files := make([]schema.FileStats, 0, len(byPath))
	for _, stats := range byPath {
		files = append(files, *stats)
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Commits > files[j].Commits
	})
	return files, nil
}
