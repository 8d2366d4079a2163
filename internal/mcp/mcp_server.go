// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gitpulse/gitpulse/internal/contract"
)

// NewMCPServer initializes and configures the gitpulse MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitpulse Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: analyze_contributors ---
	s.AddTool(mcp.NewTool("analyze_contributors",
		mcp.WithDescription("Analyze git history for per-contributor activity and work-pattern classification."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithString("url", mcp.Description("Remote repository URL to clone and analyze instead of repo_path.")),
	), h.handleAnalyzeContributors)

	// --- 2. Tool: analyze_activity ---
	s.AddTool(mcp.NewTool("analyze_activity",
		mcp.WithDescription("Analyze git history for monthly and hourly commit activity."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("url", mcp.Description("Remote repository URL to clone and analyze instead of repo_path.")),
	), h.handleAnalyzeActivity)

	// --- 3. Tool: analyze_files ---
	s.AddTool(mcp.NewTool("analyze_files",
		mcp.WithDescription("Analyze git history for per-file modification frequency."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("url", mcp.Description("Remote repository URL to clone and analyze instead of repo_path.")),
	), h.handleAnalyzeFiles)

	return s
}

// StartMCPServer starts the gitpulse MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
