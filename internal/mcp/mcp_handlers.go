package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/moodtrack/core"
	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func jsonResult(v any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleAddEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	rec := schema.EntryRecord{}
	for name, dst := range map[string]**int{"mood": &rec.Mood, "energy": &rec.Energy, "stress": &rec.Stress} {
		if _, ok := args[name]; ok {
			v := request.GetInt(name, 0)
			*dst = &v
		}
	}
	if notes := request.GetString("notes", ""); notes != "" {
		rec.Notes = &notes
	}

	now := time.Now()
	if ts := request.GetString("timestamp", ""); ts != "" {
		parsed, err := contract.ParseDateInput(ts, now)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid timestamp: %v", err)), nil
		}
		rec.Timestamp = &parsed
	}

	saved, err := core.AddEntry(ctx, h.mgr, rec, now)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("add entry failed: %v", err)), nil
	}
	return jsonResult(saved), nil
}

func (h *toolHandler) handleListEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := contract.RevalidateEnd(cfg, request.GetString("end", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if d := request.GetInt("days", 0); d != 0 {
		if err := contract.RevalidateWindow(cfg, d); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
		}
	}

	entries, _, err := core.GetEntriesResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing failed: %v", err)), nil
	}
	return jsonResult(entries), nil
}

func (h *toolHandler) handleGetRollingTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if _, ok := request.GetArguments()["window"]; ok {
		if err := contract.RevalidateWindow(cfg, request.GetInt("window", 0)); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
		}
	}
	if g := request.GetString("granularity", ""); g != "" {
		parsed, err := contract.ParseGranularity(g)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
		}
		cfg.Granularity = parsed
	}

	result, _, err := core.GetTrendResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend failed: %v", err)), nil
	}
	return jsonResult(result), nil
}

func (h *toolHandler) handleGetWeeklySummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := contract.RevalidateEnd(cfg, request.GetString("end", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	contract.OverrideNotesLimit(cfg, request.GetInt("limit", 0))

	result, _, err := core.GetSummaryResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}
	return jsonResult(result), nil
}

func (h *toolHandler) handleGetOverview(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	overview, _, err := core.GetOverviewResults(core.WithSuppressHeader(ctx), h.baseCfg.Clone(), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("overview failed: %v", err)), nil
	}
	if overview == nil {
		return mcp.NewToolResultText("No entries yet."), nil
	}
	return jsonResult(overview), nil
}
