package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthcast/synthcast/internal/contract"
	mcp_internal "github.com/synthcast/synthcast/internal/mcp"
	"github.com/synthcast/synthcast/schema"
)

// testBaseConfig returns a validated config small enough for tool calls.
func testBaseConfig() *contract.Config {
	return &contract.Config{
		Spec: schema.SeriesSpec{
			Length:     120,
			Baseline:   5,
			Slope:      0.1,
			Period:     12,
			Amplitude:  3,
			NoiseLevel: 0.5,
			Seed:       42,
		},
		SplitTime:     80,
		Methods:       schema.AllForecastMethods,
		MAWindow:      5,
		DiffWindow:    4,
		SmoothWindow:  4,
		ModelWindow:   4,
		BatchSize:     8,
		ShuffleBuffer: 16,
		Epochs:        2,
		LearningRate:  1e-4,
		Momentum:      0.9,
		Loss:          schema.HuberLoss,
		SweepStartLR:  1e-8,
		NoCache:       true,
	}
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
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

func TestMCPServerTools(t *testing.T) {
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(testBaseConfig(), mgr)

	t.Run("generate_series returns the requested length", func(t *testing.T) {
		res := callTool(t, s, "generate_series", map[string]any{
			"length": 30.0,
			"seed":   7.0,
		})
		require.False(t, res.IsError)

		var series schema.Series
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &series))
		assert.Equal(t, 30, series.Len())
	})

	t.Run("run_baselines evaluates four methods", func(t *testing.T) {
		res := callTool(t, s, "run_baselines", map[string]any{})
		require.False(t, res.IsError)

		var run schema.RunResult
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &run))
		assert.Len(t, run.Evaluations, 4)
	})

	t.Run("train_model rejects an unknown loss", func(t *testing.T) {
		res := callTool(t, s, "train_model", map[string]any{
			"loss": "hinge",
		})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid loss")
	})

	t.Run("compare_methods ranks by MAE", func(t *testing.T) {
		res := callTool(t, s, "compare_methods", map[string]any{})
		require.False(t, res.IsError)

		var run schema.RunResult
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &run))
		require.Len(t, run.Evaluations, len(schema.AllForecastMethods))
		for i := 1; i < len(run.Evaluations); i++ {
			assert.LessOrEqual(t, run.Evaluations[i-1].MAE, run.Evaluations[i].MAE)
		}
	})
}
