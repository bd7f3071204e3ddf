// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var toolCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "mcp",
		Subsystem: "tool",
		Name:      "calls_total",
		Help:      "Number of tool calls by tool name and status",
	},
	[]string{"tool", "status"},
)

// instrumentTool counts every invocation of the tool. A handler error or
// an IsError result counts as error.
func instrumentTool(tool server.ServerTool) server.ServerTool {
	name := tool.Tool.Name
	handler := tool.Handler
	tool.Handler = func(
		ctx context.Context,
		request mcp.CallToolRequest,
	) (*mcp.CallToolResult, error) {
		result, err := handler(ctx, request)
		status := "success"
		if err != nil || (result != nil && result.IsError) {
			status = "error"
		}
		toolCallsTotal.WithLabelValues(name, status).Inc()
		return result, err
	}
	return tool
}
