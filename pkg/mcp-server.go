// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"github.com/mark3labs/mcp-go/server"
)

func NewMCPServer(chatClient ChatClient, searcher Searcher) *server.MCPServer {
	// Create a new MCP server
	s := server.NewMCPServer(
		"Assistant Tools MCP Server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	// Add tool handlers using the typed handlers
	s.AddTools(
		instrumentTool(NewCalculateTool()),
		instrumentTool(NewWebSearchTool(searcher)),
		instrumentTool(NewSummarizeTool()),
		instrumentTool(NewChatTool(chatClient)),
	)
	return s
}
