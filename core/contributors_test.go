package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitpulse/gitpulse/schema"
)

func TestCollectContributorsGroupsByIdentity(t *testing.T) {
	src := &fakeSource{commits: []schema.Commit{
		commitBy("Alice", "alice@example.com", at(monday, 0, 10)),
		commitBy("Bob", "bob@example.com", at(monday, 1, 11)),
		commitBy("Alice", "alice@example.com", at(monday, 2, 12)),
		// Same name, different email: distinct contributor.
		commitBy("Alice", "alice@corp.example.com", at(monday, 3, 13)),
	}}

	contributors, err := CollectContributors(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, contributors, 3)

	assert.Equal(t, "Alice", contributors[0].Name)
	assert.Equal(t, "alice@example.com", contributors[0].Email)
	assert.Equal(t, uint(2), contributors[0].Commits)
}

func TestCollectContributorsFallbackIdentity(t *testing.T) {
	src := &fakeSource{commits: []schema.Commit{
		commitBy("", "", at(monday, 0, 10)),
		commitBy("", "", at(monday, 1, 10)),
	}}

	contributors, err := CollectContributors(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, contributors, 1)
	assert.Equal(t, "Unknown", contributors[0].Name)
	assert.Equal(t, "unknown@example.com", contributors[0].Email)
	assert.Equal(t, uint(2), contributors[0].Commits)
}

func TestCollectContributorsFirstLastCommit(t *testing.T) {
	first := at(monday, 0, 9)
	last := at(monday, 30, 17)

	// Deliberately out of order: first/last must come from min/max, not
	// from walk position.
	src := &fakeSource{commits: []schema.Commit{
		commitBy("Alice", "alice@example.com", at(monday, 10, 12)),
		commitBy("Alice", "alice@example.com", last),
		commitBy("Alice", "alice@example.com", first),
	}}

	contributors, err := CollectContributors(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, contributors, 1)
	assert.Equal(t, first, contributors[0].FirstCommit)
	assert.Equal(t, last, contributors[0].LastCommit)
}

func TestCollectContributorsSortedByCommitsDesc(t *testing.T) {
	var commits []schema.Commit
	for i := range 3 {
		commits = append(commits, commitBy("Bob", "bob@example.com", at(monday, i, 10)))
	}
	for i := range 7 {
		commits = append(commits, commitBy("Alice", "alice@example.com", at(monday, i, 11)))
	}

	contributors, err := CollectContributors(context.Background(), &fakeSource{commits: commits})
	require.NoError(t, err)
	require.Len(t, contributors, 2)
	assert.Equal(t, "Alice", contributors[0].Name)
	assert.Equal(t, "Bob", contributors[1].Name)
}

func TestCollectContributorsClassifiesPerContributor(t *testing.T) {
	var commits []schema.Commit
	for i := range 6 {
		commits = append(commits, commitBy("Day", "day@example.com", at(monday, i%5, 10)))
	}
	for i := range 6 {
		commits = append(commits, commitBy("Night", "night@example.com", at(monday, i%5, 23)))
	}
	commits = append(commits, commitBy("Rare", "rare@example.com", at(monday, 0, 10)))

	contributors, err := CollectContributors(context.Background(), &fakeSource{commits: commits})
	require.NoError(t, err)

	byName := make(map[string]schema.ContributorStats)
	for _, c := range contributors {
		byName[c.Name] = c
	}

	assert.Equal(t, schema.DayWorkerPattern, byName["Day"].WorkPattern.PatternType)
	assert.Equal(t, schema.MoonlighterPattern, byName["Night"].WorkPattern.PatternType)
	assert.Equal(t, schema.UnknownPattern, byName["Rare"].WorkPattern.PatternType)
	assert.Equal(t, map[int]uint{10: 6}, byName["Day"].HourlyCommits)
}

func TestCollectContributorsOrderIndependent(t *testing.T) {
	commits := []schema.Commit{
		commitBy("Alice", "alice@example.com", at(monday, 0, 10)),
		commitBy("Bob", "bob@example.com", at(monday, 1, 23)),
		commitBy("Alice", "alice@example.com", at(monday, 2, 14)),
		commitBy("Bob", "bob@example.com", at(saturday, 0, 3)),
		commitBy("Alice", "alice@example.com", at(monday, 4, 9)),
	}
	reversed := make([]schema.Commit, len(commits))
	for i, c := range commits {
		reversed[len(commits)-1-i] = c
	}

	forward, err := CollectContributors(context.Background(), &fakeSource{commits: commits})
	require.NoError(t, err)
	backward, err := CollectContributors(context.Background(), &fakeSource{commits: reversed})
	require.NoError(t, err)

	assert.ElementsMatch(t, forward, backward)
}
