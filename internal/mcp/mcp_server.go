// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/synthcast/synthcast/internal/contract"
)

// NewMCPServer initializes and configures the synthcast MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Synthcast Forecasting Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: generate_series ---
	s.AddTool(mcp.NewTool("generate_series",
		mcp.WithDescription("Generate a deterministic synthetic series (baseline + trend + seasonality + seeded noise)."),
		mcp.WithNumber("length", mcp.Description("Total number of ticks in the series.")),
		mcp.WithNumber("seed", mcp.Description("Seed for the noise generator.")),
		mcp.WithNumber("noise", mcp.Description("Noise level (standard deviation multiplier).")),
	), h.handleGenerateSeries)

	// --- 2. Tool: run_baselines ---
	s.AddTool(mcp.NewTool("run_baselines",
		mcp.WithDescription("Run the classical baseline forecasters and evaluate MAE/MSE against the validation segment."),
		mcp.WithNumber("split", mcp.Description("Train/validation boundary tick.")),
		mcp.WithNumber("seed", mcp.Description("Seed for the noise generator.")),
		mcp.WithNumber("ma_window", mcp.Description("Moving average window size.")),
		mcp.WithNumber("diff_window", mcp.Description("Differenced moving average window size.")),
	), h.handleRunBaselines)

	// --- 3. Tool: train_model ---
	s.AddTool(mcp.NewTool("train_model",
		mcp.WithDescription("Train the autoregressive window model and evaluate its forecast."),
		mcp.WithNumber("split", mcp.Description("Train/validation boundary tick.")),
		mcp.WithNumber("seed", mcp.Description("Seed for the noise generator and shuffle.")),
		mcp.WithNumber("epochs", mcp.Description("Number of training epochs.")),
		mcp.WithNumber("window", mcp.Description("Model lookback window size.")),
		mcp.WithString("loss", mcp.Description("Training loss (huber, mse, mae)."), mcp.Enum("huber", "mse", "mae")),
	), h.handleTrainModel)

	// --- 4. Tool: compare_methods ---
	s.AddTool(mcp.NewTool("compare_methods",
		mcp.WithDescription("Run every forecast method and rank them by MAE over the validation segment."),
		mcp.WithNumber("split", mcp.Description("Train/validation boundary tick.")),
		mcp.WithNumber("seed", mcp.Description("Seed for the noise generator.")),
	), h.handleCompareMethods)

	return s
}

// StartMCPServer starts the synthcast MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
