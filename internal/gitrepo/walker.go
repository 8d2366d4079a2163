// Package gitrepo provides repository access on top of go-git: source
// resolution (local path or remote clone), the commit stream walker, and
// the error taxonomy shared by both.
package gitrepo

import (
	"context"
	"errors"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/gitpulse/gitpulse/schema"
)

// Repository wraps an opened go-git repository. It implements
// contract.CommitSource.
type Repository struct {
	repo *git.Repository
	path string
}

// Open opens the repository at path.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	return &Repository{repo: repo, path: path}, nil
}

// ForEachCommit walks every commit reachable from the current head, each
// exactly once, in reverse-chronological graph order, and invokes fn with
// a record per commit. Aggregation downstream is order-independent, so the
// exact tie-break among commits at equal depth does not matter.
//
// When includePaths is true each record also carries the paths changed
// versus the commit's first parent; root commits carry none. The context
// is checked once per commit so very large histories stay interruptible.
// Any failure aborts the walk; no partial results are surfaced.
func (r *Repository) ForEachCommit(ctx context.Context, includePaths bool, fn func(schema.Commit) error) error {
	head, err := r.repo.Head()
	if err != nil {
		return &AccessError{Path: r.path, Err: err}
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return &AccessError{Path: r.path, Err: err}
	}
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec := schema.Commit{
			AuthorName:  c.Author.Name,
			AuthorEmail: c.Author.Email,
			When:        normalizeWhen(c.Author.When),
		}
		if includePaths {
			paths, err := changedPaths(c)
			if err != nil {
				return err
			}
			rec.Paths = paths
		}
		return fn(rec)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		var diffErr *DiffError
		if errors.As(err, &diffErr) {
			return err
		}
		// Anything else came from dereferencing commit objects mid-walk.
		return &AccessError{Path: r.path, Err: err}
	}
}

// normalizeWhen resolves the author time to UTC. A zero or unparseable
// timestamp falls back to the Unix epoch rather than failing the walk.
func normalizeWhen(t time.Time) time.Time {
	if t.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return t.UTC()
}

// changedPaths diffs the commit's tree against its first parent's tree and
// returns the path of every changed entry as seen on the new side of the
// diff (deletions keep their old path, matching what the transport-level
// delta reports). Root commits contribute nothing: the initial commit's
// full file set is never attributed to it.
func changedPaths(c *object.Commit) ([]string, error) {
	if c.NumParents() == 0 {
		return nil, nil
	}

	parent, err := c.Parent(0)
	if err != nil {
		return nil, &DiffError{Commit: c.Hash.String(), Err: err}
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, &DiffError{Commit: c.Hash.String(), Err: err}
	}
	tree, err := c.Tree()
	if err != nil {
		return nil, &DiffError{Commit: c.Hash.String(), Err: err}
	}

	changes, err := parentTree.Diff(tree)
	if err != nil {
		return nil, &DiffError{Commit: c.Hash.String(), Err: err}
	}

	seen := make(map[string]struct{}, len(changes))
	paths := make([]string, 0, len(changes))
	for _, ch := range changes {
		name := ch.To.Name
		if name == "" {
			name = ch.From.Name
		}
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		paths = append(paths, name)
	}
	return paths, nil
}
