// Package core has the commit-history aggregation and classification
// engine: contributor folding, work-pattern classification, activity
// bucketing and file-change tracking, plus the per-command orchestration.
package core

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/gitrepo"
	"github.com/gitpulse/gitpulse/internal/outwriter"
	"github.com/gitpulse/gitpulse/internal/parquet"
	"github.com/gitpulse/gitpulse/schema"
)

// withRepository resolves the configured source (local path or remote
// URL), opens the repository, runs fn against it, and releases any
// ephemeral clone directory once fn returns. Clone progress streams to
// stderr so it never pollutes stdout output.
func withRepository(ctx context.Context, cfg *contract.Config, fn func(*gitrepo.Repository) error) error {
	src, err := gitrepo.ResolveSource(ctx, cfg.RepoPath, cfg.URL, os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Cleanup(); err != nil {
			contract.LogWarn("Could not remove clone directory", err)
		}
	}()

	repo, err := gitrepo.Open(src.Path)
	if err != nil {
		return err
	}
	return fn(repo)
}

// GetContributorsResults resolves the source and collects contributor
// records. Exposed for the MCP server.
func GetContributorsResults(ctx context.Context, cfg *contract.Config) ([]schema.ContributorStats, error) {
	var results []schema.ContributorStats
	err := withRepository(ctx, cfg, func(repo *gitrepo.Repository) error {
		var err error
		results, err = CollectContributors(ctx, repo)
		return err
	})
	return results, err
}

// GetActivityResults resolves the source and collects activity buckets.
// Exposed for the MCP server.
func GetActivityResults(ctx context.Context, cfg *contract.Config) (schema.ActivityStats, error) {
	var results schema.ActivityStats
	err := withRepository(ctx, cfg, func(repo *gitrepo.Repository) error {
		var err error
		results, err = CollectActivity(ctx, repo)
		return err
	})
	return results, err
}

// GetFilesResults resolves the source and collects file-change records.
// Exposed for the MCP server.
func GetFilesResults(ctx context.Context, cfg *contract.Config) ([]schema.FileStats, error) {
	var results []schema.FileStats
	err := withRepository(ctx, cfg, func(repo *gitrepo.Repository) error {
		var err error
		results, err = CollectFileChanges(ctx, repo)
		return err
	})
	return results, err
}

// ExecuteContributors runs the contributor analysis and renders it.
func ExecuteContributors(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	results, err := GetContributorsResults(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.ParquetFile != "" {
		if err := parquet.WriteContributorsParquet(parquet.ConvertContributorStats(results), cfg.ParquetFile); err != nil {
			return err
		}
	}
	return outwriter.WriteContributors(results, cfg, time.Since(start))
}

// ExecuteActivity runs the activity analysis and renders it.
func ExecuteActivity(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	results, err := GetActivityResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteActivity(results, cfg, time.Since(start))
}

// ExecuteFiles runs the file-change analysis and renders it.
func ExecuteFiles(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	results, err := GetFilesResults(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.ParquetFile != "" {
		if err := parquet.WriteFileStatsParquet(parquet.ConvertFileStats(results), cfg.ParquetFile); err != nil {
			return err
		}
	}
	return outwriter.WriteFiles(results, cfg, time.Since(start))
}

// ExecuteAll resolves the source once, then runs the three analyses in
// sequence against the same repository path. Each analysis performs its
// own independent walk; the first failure aborts the remainder.
func ExecuteAll(ctx context.Context, cfg *contract.Config) error {
	outwriter.PrintAllHeader()

	src, err := gitrepo.ResolveSource(ctx, cfg.RepoPath, cfg.URL, os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Cleanup(); err != nil {
			contract.LogWarn("Could not remove clone directory", err)
		}
	}()

	// The clone (if any) already happened; point the sub-analyses at the
	// resolved path so they do not re-clone.
	local := *cfg
	local.RepoPath = src.Path
	local.URL = ""
	if local.ParquetFile != "" {
		// A single parquet path cannot hold multiple record sets.
		contract.LogWarn("Skipping parquet export for the combined run",
			errors.New("run contributors or files directly to export parquet"))
		local.ParquetFile = ""
	}
	if local.OutputFile != "" {
		// Truncate the file once up front, then let every sub-analysis
		// append so all three sections survive in one file.
		f, err := os.Create(local.OutputFile)
		if err != nil {
			return err
		}
		_ = f.Close()
		local.OutputAppend = true
	}

	if err := ExecuteContributors(ctx, &local); err != nil {
		return err
	}
	if err := ExecuteActivity(ctx, &local); err != nil {
		return err
	}
	return ExecuteFiles(ctx, &local)
}
