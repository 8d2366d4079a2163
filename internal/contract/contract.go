// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/gitpulse/gitpulse/schema"
)

// CommitSource yields every commit reachable from the repository head,
// each exactly once, in reverse-chronological walk order. This allows the
// core aggregation logic to be tested without a real repository.
type CommitSource interface {
	// ForEachCommit invokes fn for each commit in the stream. When
	// includePaths is true, each record also carries the paths changed
	// versus the commit's first parent, which is a distinctly more
	// expensive walk. The walk aborts on the first error from fn or from
	// the underlying repository; partial results are never surfaced.
	ForEachCommit(ctx context.Context, includePaths bool, fn func(schema.Commit) error) error
}
