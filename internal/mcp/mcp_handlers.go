package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/synthcast/synthcast/core"
	"github.com/synthcast/synthcast/internal/contract"
	"github.com/synthcast/synthcast/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

func (h *toolHandler) handleGenerateSeries(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("length", 0); l > 0 {
		cfg.Spec.Length = l
	}
	if s := request.GetInt("seed", -1); s >= 0 {
		cfg.Spec.Seed = uint64(s)
	}
	if n := request.GetFloat("noise", -1); n >= 0 {
		cfg.Spec.NoiseLevel = n
	}

	series, err := core.GetSeriesResult(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(series, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRunBaselines(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Methods = []schema.ForecastMethod{
		schema.NaiveMethod,
		schema.MovingAverageMethod,
		schema.DiffMethod,
		schema.DiffSmoothMethod,
	}
	applySharedOverrides(cfg, request)
	if w := request.GetInt("ma_window", 0); w > 0 {
		cfg.MAWindow = w
	}
	if w := request.GetInt("diff_window", 0); w > 0 {
		cfg.DiffWindow = w
	}

	run, err := core.GetCachedRunResults(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("baseline run failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(run, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleTrainModel(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Methods = []schema.ForecastMethod{schema.NaiveMethod, schema.ModelMethod}
	applySharedOverrides(cfg, request)
	if e := request.GetInt("epochs", 0); e > 0 {
		cfg.Epochs = e
	}
	if w := request.GetInt("window", 0); w > 0 {
		cfg.ModelWindow = w
	}
	if l := request.GetString("loss", ""); l != "" {
		loss := schema.LossKind(l)
		if _, ok := schema.ValidLossKinds[loss]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid loss: %s", l)), nil
		}
		cfg.Loss = loss
	}

	run, err := core.GetCachedRunResults(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("training failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(run, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareMethods(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Methods = schema.AllForecastMethods
	applySharedOverrides(cfg, request)

	run, err := core.GetCachedRunResults(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	// Rank best-first by MAE
	sort.SliceStable(run.Evaluations, func(i, j int) bool {
		return run.Evaluations[i].MAE < run.Evaluations[j].MAE
	})

	jsonData, _ := json.MarshalIndent(run, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// applySharedOverrides applies the split and seed overrides common to the
// forecasting tools.
func applySharedOverrides(cfg *contract.Config, request mcp.CallToolRequest) {
	if s := request.GetInt("split", 0); s > 0 {
		cfg.SplitTime = s
	}
	if s := request.GetInt("seed", -1); s >= 0 {
		cfg.Spec.Seed = uint64(s)
	}
}
