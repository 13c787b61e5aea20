// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the moodtrack MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Moodtrack Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: add_entry ---
	s.AddTool(mcp.NewTool("add_entry",
		mcp.WithDescription("Record a mood check-in. Scores use a 1-5 scale."),
		mcp.WithNumber("mood", mcp.Description("Mood score from 1 (low) to 5 (high)."), mcp.Required()),
		mcp.WithNumber("energy", mcp.Description("Energy score from 1 (low) to 5 (high)."), mcp.Required()),
		mcp.WithNumber("stress", mcp.Description("Stress score from 1 (low) to 5 (high)."), mcp.Required()),
		mcp.WithString("notes", mcp.Description("Optional free-text note.")),
		mcp.WithString("timestamp", mcp.Description("When the check-in happened (RFC3339, 'YYYY-MM-DD HH:MM' or '2 days ago'). Defaults to now.")),
	), h.handleAddEntry)

	// --- 2. Tool: list_entries ---
	s.AddTool(mcp.NewTool("list_entries",
		mcp.WithDescription("List stored check-ins, optionally limited to the days ending at an end date."),
		mcp.WithString("end", mcp.Description("End date (YYYY-MM-DD or relative like '1 week ago'). Lists everything when omitted.")),
		mcp.WithNumber("days", mcp.Description("Number of calendar days ending at 'end' to include.")),
	), h.handleListEntries)

	// --- 3. Tool: get_rolling_trend ---
	s.AddTool(mcp.NewTool("get_rolling_trend",
		mcp.WithDescription("Compute the trailing-window average of mood, energy and stress for every entry timestamp."),
		mcp.WithNumber("window", mcp.Description("Window size in days. Defaults to 7.")),
		mcp.WithString("granularity", mcp.Description("Timestamp granularity."), mcp.Enum("day", "instant")),
	), h.handleGetRollingTrend)

	// --- 4. Tool: get_weekly_summary ---
	s.AddTool(mcp.NewTool("get_weekly_summary",
		mcp.WithDescription("Summarize the 7 calendar days ending at a date, with recent notes."),
		mcp.WithString("end", mcp.Description("Last day of the week (YYYY-MM-DD). Defaults to the latest entry.")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of notes. Defaults to 6.")),
	), h.handleGetWeeklySummary)

	// --- 5. Tool: get_overview ---
	s.AddTool(mcp.NewTool("get_overview",
		mcp.WithDescription("Aggregate the whole check-in history."),
	), h.handleGetOverview)

	return s
}

// StartMCPServer starts the moodtrack MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
