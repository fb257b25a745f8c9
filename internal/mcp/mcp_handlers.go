package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/covidboard/covidstore/core"
	"github.com/covidboard/covidstore/internal/contract"
	"github.com/covidboard/covidstore/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers. The store is
// loaded lazily on the first tool call and shared by subsequent ones.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.FeedClient
	mgr     contract.CacheManager

	once    sync.Once
	store   *core.Store
	loadErr error
}

// getStore loads the data store once, serving every tool call from the same
// snapshot.
func (h *toolHandler) getStore(ctx context.Context) (*core.Store, error) {
	h.once.Do(func() {
		h.store, h.loadErr = core.LoadStore(ctx, h.baseCfg, h.client, h.mgr, nil)
	})
	return h.store, h.loadErr
}

func (h *toolHandler) handleListLocations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store, err := h.getStore(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("store load failed: %v", err)), nil
	}

	locations, err := store.Locations()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing locations failed: %v", err)), nil
	}
	if l := request.GetInt("limit", 0); l > 0 && l < len(locations) {
		locations = locations[:l]
	}

	jsonData, _ := json.MarshalIndent(locations, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetLocationSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location := request.GetString("location", "")
	if location == "" {
		return mcp.NewToolResultError("location is required"), nil
	}

	property := schema.CumulativeProperty(request.GetString("property", string(schema.ConfirmedProperty)))
	if _, ok := schema.ValidCumulativeProperties[property]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid property %q: must be confirmed, deaths, or recovered", property)), nil
	}

	store, err := h.getStore(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("store load failed: %v", err)), nil
	}

	series, err := store.GetDataByLocation(location)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("series lookup failed: %v", err)), nil
	}
	if threshold := request.GetInt("threshold", 0); threshold > 0 {
		series = core.StripDataBeforePropertyExceedsN(series, property, threshold)
	}

	jsonData, _ := json.MarshalIndent(series, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetLocationOnDate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location := request.GetString("location", "")
	if location == "" {
		return mcp.NewToolResultError("location is required"), nil
	}
	date := request.GetString("date", "")
	if date == "" {
		return mcp.NewToolResultError("date is required"), nil
	}

	store, err := h.getStore(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("store load failed: %v", err)), nil
	}

	record, err := store.GetDataByLocationAndDate(location, date)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("record lookup failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(record, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
