package gitrepo

import (
	"context"
	"errors"
	"io"
	"net/url"
	"os"

	git "github.com/go-git/go-git/v5"
)

// Source is a resolved, ready-to-read repository location. For remote
// sources it owns the ephemeral clone directory: the caller holds the
// Source for the duration of the analysis and releases the directory
// deterministically via Cleanup.
type Source struct {
	Path   string
	cloned bool
}

// Cleanup removes the ephemeral clone directory, if any. Calling it on a
// local source is a no-op.
func (s *Source) Cleanup() error {
	if !s.cloned {
		return nil
	}
	return os.RemoveAll(s.Path)
}

// ResolveSource yields a ready-to-read repository path. A local path is
// returned unchanged. A remote URL is validated and cloned into a fresh
// temporary directory; transfer and reference-resolution progress from the
// transport streams to the progress writer as it happens.
func ResolveSource(ctx context.Context, path, rawURL string, progress io.Writer) (*Source, error) {
	if rawURL == "" {
		return &Source{Path: path}, nil
	}

	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, &InvalidURLError{URL: rawURL, Err: err}
	}
	if u.Host == "" {
		return nil, &InvalidURLError{URL: rawURL, Err: errors.New("missing host")}
	}

	dir, err := os.MkdirTemp("", "gitpulse-*")
	if err != nil {
		return nil, &CloneError{URL: rawURL, Err: err}
	}

	if _, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:      rawURL,
		Progress: progress,
	}); err != nil {
		_ = os.RemoveAll(dir)
		return nil, &CloneError{URL: rawURL, Err: err}
	}

	return &Source{Path: dir, cloned: true}, nil
}
