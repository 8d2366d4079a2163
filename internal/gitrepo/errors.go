package gitrepo

import "fmt"

// AccessError reports a repository that cannot be opened, whose head
// cannot be resolved, or whose objects cannot be dereferenced mid-walk.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot access repository %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// InvalidURLError reports a malformed remote URL.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid repository URL %q: %v", e.URL, e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

// CloneError reports a transport, auth or protocol failure during a
// remote clone.
type CloneError struct {
	URL string
	Err error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("cannot clone %s: %v", e.URL, e.Err)
}

func (e *CloneError) Unwrap() error { return e.Err }

// DiffError reports a tree-diff computation failure on a commit pair.
type DiffError struct {
	Commit string
	Err    error
}

func (e *DiffError) Error() string {
	return fmt.Sprintf("cannot diff commit %s: %v", e.Commit, e.Err)
}

func (e *DiffError) Unwrap() error { return e.Err }
