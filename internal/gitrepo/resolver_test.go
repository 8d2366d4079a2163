package gitrepo

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSourceLocalPath(t *testing.T) {
	src, err := ResolveSource(context.Background(), "/some/local/repo", "", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "/some/local/repo", src.Path)

	// Local sources own nothing; cleanup must not touch the path.
	require.NoError(t, src.Cleanup())
	assert.Equal(t, "/some/local/repo", src.Path)
}

func TestResolveSourceInvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"not a url", "not a url"},
		{"missing scheme", "github.com/spf13/cobra"},
		{"missing host", "https:///spf13/cobra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveSource(context.Background(), ".", tt.url, io.Discard)
			require.Error(t, err)

			var urlErr *InvalidURLError
			assert.ErrorAs(t, err, &urlErr)
			assert.Equal(t, tt.url, urlErr.URL)
		})
	}
}

func TestResolveSourceCloneFailure(t *testing.T) {
	// A well-formed URL pointing nowhere reachable surfaces a clone
	// error, never a panic or a leaked temp dir path.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ResolveSource(ctx, ".", "https://invalid.invalid/owner/repo.git", io.Discard)
	require.Error(t, err)

	var cloneErr *CloneError
	assert.ErrorAs(t, err, &cloneErr)
}

func TestErrorMessages(t *testing.T) {
	access := &AccessError{Path: "/r", Err: assert.AnError}
	assert.Contains(t, access.Error(), "/r")
	assert.ErrorIs(t, access, assert.AnError)

	invalid := &InvalidURLError{URL: "bogus", Err: assert.AnError}
	assert.Contains(t, invalid.Error(), "bogus")
	assert.ErrorIs(t, invalid, assert.AnError)

	clone := &CloneError{URL: "https://example.com/r.git", Err: assert.AnError}
	assert.Contains(t, clone.Error(), "https://example.com/r.git")
	assert.ErrorIs(t, clone, assert.AnError)

	diff := &DiffError{Commit: "abc123", Err: assert.AnError}
	assert.Contains(t, diff.Error(), "abc123")
	assert.ErrorIs(t, diff, assert.AnError)
}
