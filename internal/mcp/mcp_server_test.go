package mcp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/huangsam/moodtrack/internal/contract"
	mcp_internal "github.com/huangsam/moodtrack/internal/mcp"
	"github.com/huangsam/moodtrack/internal/store"
	"github.com/huangsam/moodtrack/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*server.MCPServer, *store.EntryStoreManager) {
	t.Helper()
	baseCfg := &contract.Config{
		DBBackend:   schema.NoneBackend,
		Granularity: schema.DayGranularity,
		WindowDays:  7,
		NotesLimit:  6,
		Precision:   2,
	}
	mgr := store.NewManager(store.NewMemoryStore())
	return mcp_internal.NewMCPServer(baseCfg, mgr), mgr
}

func call(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func text(res *mcp.CallToolResult) string {
	return res.Content[0].(mcp.TextContent).Text
}

func TestMCPServerHandlers_AddAndQuery(t *testing.T) {
	s, _ := newTestServer(t)

	for i, day := range []string{"2024-03-01 09:00", "2024-03-03 09:00", "2024-03-07 09:00"} {
		res := call(t, s, "add_entry", map[string]any{
			"mood":      float64(2 + i),
			"energy":    3.0,
			"stress":    float64(4 - i),
			"notes":     "note " + day[:10],
			"timestamp": day,
		})
		require.False(t, res.IsError, text(res))
	}

	t.Run("list_entries", func(t *testing.T) {
		res := call(t, s, "list_entries", map[string]any{"end": "2024-03-03", "days": 3.0})
		require.False(t, res.IsError, text(res))
		var entries []schema.Entry
		require.NoError(t, json.Unmarshal([]byte(text(res)), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, 2, entries[0].Mood)
	})

	t.Run("get_rolling_trend", func(t *testing.T) {
		res := call(t, s, "get_rolling_trend", map[string]any{"window": 3.0})
		require.False(t, res.IsError, text(res))
		var result schema.TrendResult
		require.NoError(t, json.Unmarshal([]byte(text(res)), &result))
		assert.Equal(t, 3, result.WindowDays)
		require.Len(t, result.Points, 3)
		assert.Equal(t, 1, result.Points[2].Count)
	})

	t.Run("get_weekly_summary", func(t *testing.T) {
		res := call(t, s, "get_weekly_summary", map[string]any{"limit": 2.0})
		require.False(t, res.IsError, text(res))
		var result schema.SummaryResult
		require.NoError(t, json.Unmarshal([]byte(text(res)), &result))
		require.NotNil(t, result.Summary)
		assert.Equal(t, 3, result.Summary.Count)
		assert.Equal(t, []string{"note 2024-03-07", "note 2024-03-03"}, result.TopNotes)
	})

	t.Run("get_overview", func(t *testing.T) {
		res := call(t, s, "get_overview", map[string]any{})
		require.False(t, res.IsError, text(res))
		var overview schema.Overview
		require.NoError(t, json.Unmarshal([]byte(text(res)), &overview))
		assert.Equal(t, 3, overview.Count)
		assert.Equal(t, 3.0, overview.AvgMood)
	})
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	s, _ := newTestServer(t)

	t.Run("add_entry missing stress", func(t *testing.T) {
		res := call(t, s, "add_entry", map[string]any{"mood": 3.0, "energy": 3.0})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, text(res), "missing stress")
	})

	t.Run("add_entry score out of range", func(t *testing.T) {
		res := call(t, s, "add_entry", map[string]any{"mood": 7.0, "energy": 3.0, "stress": 3.0})
		assert.True(t, res.IsError)
		assert.Contains(t, text(res), "outside the 1-5 scale")
	})

	t.Run("add_entry bad timestamp", func(t *testing.T) {
		res := call(t, s, "add_entry", map[string]any{"mood": 3.0, "energy": 3.0, "stress": 3.0, "timestamp": "someday"})
		assert.True(t, res.IsError)
		assert.Contains(t, text(res), "invalid timestamp")
	})

	t.Run("get_rolling_trend invalid window", func(t *testing.T) {
		res := call(t, s, "get_rolling_trend", map[string]any{"window": 0.0})
		assert.True(t, res.IsError)
		assert.Contains(t, text(res), "window must be greater than 0")
	})

	t.Run("get_weekly_summary invalid end", func(t *testing.T) {
		res := call(t, s, "get_weekly_summary", map[string]any{"end": "not a date"})
		assert.True(t, res.IsError)
		assert.Contains(t, text(res), "invalid end date")
	})
}

func TestMCPServerHandlers_EmptyStore(t *testing.T) {
	s, _ := newTestServer(t)

	res := call(t, s, "get_overview", map[string]any{})
	assert.False(t, res.IsError)
	assert.Equal(t, "No entries yet.", text(res))

	res = call(t, s, "get_weekly_summary", map[string]any{})
	assert.False(t, res.IsError)
	assert.Contains(t, text(res), "No data for this week.")
}

func TestMCPServerHandlers_AddDefaultsToNow(t *testing.T) {
	s, mgr := newTestServer(t)
	before := time.Now().Add(-time.Second)

	res := call(t, s, "add_entry", map[string]any{"mood": 4.0, "energy": 4.0, "stress": 2.0})
	require.False(t, res.IsError, text(res))

	entries, err := mgr.GetEntryStore().FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Timestamp.After(before))
}

func TestMCPServerHandlers_SummaryLimitIsCapped(t *testing.T) {
	s, mgr := newTestServer(t)
	ctx := context.Background()
	day := time.Date(2024, 3, 7, 0, 0, 0, 0, time.Local)
	for i := range contract.MaxNotesLimit + 5 {
		_, err := mgr.GetEntryStore().Insert(ctx, schema.Entry{
			Timestamp: day.Add(time.Duration(i) * time.Minute),
			Mood:      3, Energy: 3, Stress: 3,
			Notes: fmt.Sprintf("note %d", i),
		})
		require.NoError(t, err)
	}

	res := call(t, s, "get_weekly_summary", map[string]any{"limit": 1000.0})
	require.False(t, res.IsError, text(res))
	var result schema.SummaryResult
	require.NoError(t, json.Unmarshal([]byte(text(res)), &result))
	assert.Len(t, result.TopNotes, contract.MaxNotesLimit)
}
