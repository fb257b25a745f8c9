// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/covidboard/covidstore/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the covidstore MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.FeedClient, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"COVID-19 Data Store Server",
		baseCfg.AppVersion,
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		mgr:     mgr,
	}

	// --- 1. Tool: list_locations ---
	s.AddTool(mcp.NewTool("list_locations",
		mcp.WithDescription("List every known location in the COVID-19 dataset, sorted by name."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of locations returned.")),
	), h.handleListLocations)

	// --- 2. Tool: get_location_series ---
	s.AddTool(mcp.NewTool("get_location_series",
		mcp.WithDescription("Get the full daily series for one location, including day-over-day deltas and rates."),
		mcp.WithString("location", mcp.Description("Location name, e.g. 'Italy' or 'Canada (Ontario)'."), mcp.Required()),
		mcp.WithString("property", mcp.Description("Cumulative property for threshold filtering (confirmed, deaths, recovered)."), mcp.Enum("confirmed", "deaths", "recovered")),
		mcp.WithNumber("threshold", mcp.Description("Drop leading days until the property exceeds this value.")),
	), h.handleGetLocationSeries)

	// --- 3. Tool: get_location_on_date ---
	s.AddTool(mcp.NewTool("get_location_on_date",
		mcp.WithDescription("Get one location's record on a specific date (M/D/YY)."),
		mcp.WithString("location", mcp.Description("Location name."), mcp.Required()),
		mcp.WithString("date", mcp.Description("Date in M/D/YY form, e.g. '3/15/20'."), mcp.Required()),
	), h.handleGetLocationOnDate)

	return s
}

// StartMCPServer starts the covidstore MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.FeedClient, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, client, mgr)
	return server.ServeStdio(s)
}
