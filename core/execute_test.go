package core

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// seedRepo builds a scratch repository with a known history: Alice with
// six business-hour commits and Bob with one late-night commit.
func seedRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	tree, err := repo.Worktree()
	require.NoError(t, err)

	doCommit := func(path, content, name, email string, when time.Time) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, path), []byte(content), 0o644))
		_, err := tree.Add(path)
		require.NoError(t, err)
		sig := &object.Signature{Name: name, Email: email, When: when}
		_, err = tree.Commit("update "+path, &git.CommitOptions{Author: sig, Committer: sig})
		require.NoError(t, err)
	}

	base := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC) // a Monday
	for i := range 6 {
		doCommit("main.go", fmt.Sprintf("package main // rev %d\n", i),
			"Alice", "alice@example.com", base.AddDate(0, 0, i%5))
	}
	doCommit("notes.md", "midnight\n",
		"Bob", "bob@example.com", time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC))
	return dir
}

func TestGetContributorsResultsEndToEnd(t *testing.T) {
	cfg := &contract.Config{RepoPath: seedRepo(t)}

	results, err := GetContributorsResults(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Alice", results[0].Name)
	assert.Equal(t, uint(6), results[0].Commits)
	assert.Equal(t, schema.DayWorkerPattern, results[0].WorkPattern.PatternType)

	assert.Equal(t, "Bob", results[1].Name)
	assert.Equal(t, schema.UnknownPattern, results[1].WorkPattern.PatternType)
}

func TestGetFilesResultsEndToEnd(t *testing.T) {
	cfg := &contract.Config{RepoPath: seedRepo(t)}

	results, err := GetFilesResults(context.Background(), cfg)
	require.NoError(t, err)

	// The root commit's file set is never attributed, so main.go shows
	// five touching commits out of six.
	require.NotEmpty(t, results)
	assert.Equal(t, "main.go", results[0].Path)
	assert.Equal(t, uint(5), results[0].Commits)
}

func TestGetResultsMissingRepository(t *testing.T) {
	cfg := &contract.Config{RepoPath: t.TempDir()}
	ctx := context.Background()

	_, err := GetContributorsResults(ctx, cfg)
	assert.Error(t, err)
	_, err = GetActivityResults(ctx, cfg)
	assert.Error(t, err)
	_, err = GetFilesResults(ctx, cfg)
	assert.Error(t, err)
}

func TestExecuteContributorsJSONToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "contributors.json")
	cfg := &contract.Config{
		RepoPath:   seedRepo(t),
		Output:     schema.JSONOut,
		OutputFile: outPath,
	}

	require.NoError(t, ExecuteContributors(context.Background(), cfg))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var decoded []schema.ContributorStats
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Alice", decoded[0].Name)
}

func TestExecuteAllOutputFileKeepsAllSections(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "report.txt")
	cfg := &contract.Config{
		RepoPath:   seedRepo(t),
		OutputFile: outPath,
		Width:      100,
	}

	require.NoError(t, ExecuteAll(context.Background(), cfg))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	out := string(data)

	// Each sub-analysis must land in the file; none may truncate the
	// sections written before it.
	assert.Contains(t, out, "Top Contributors")
	assert.Contains(t, out, "Commit Activity by Month")
	assert.Contains(t, out, "Most Modified Files")
}

func TestExecuteAllSkipsParquetWithWarning(t *testing.T) {
	parquetPath := filepath.Join(t.TempDir(), "all.parquet")
	cfg := &contract.Config{
		RepoPath:    seedRepo(t),
		OutputFile:  filepath.Join(t.TempDir(), "report.txt"),
		ParquetFile: parquetPath,
		Width:       100,
	}

	origStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	runErr := ExecuteAll(context.Background(), cfg)

	require.NoError(t, w.Close())
	os.Stderr = origStderr
	captured, err := io.ReadAll(r)
	require.NoError(t, err)

	require.NoError(t, runErr)
	assert.Contains(t, string(captured), "parquet")

	_, statErr := os.Stat(parquetPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExecuteFilesParquetExport(t *testing.T) {
	parquetPath := filepath.Join(t.TempDir(), "files.parquet")
	outPath := filepath.Join(t.TempDir(), "files.json")
	cfg := &contract.Config{
		RepoPath:    seedRepo(t),
		Output:      schema.JSONOut,
		OutputFile:  outPath,
		ParquetFile: parquetPath,
	}

	require.NoError(t, ExecuteFiles(context.Background(), cfg))

	info, err := os.Stat(parquetPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
