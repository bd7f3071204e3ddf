// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bborbe/assistant_mcp_server/pkg"
)

func main() {
	mcpServer := pkg.NewMCPServer(
		pkg.NewOllamaChatClient(os.Getenv("OLLAMA_URL")),
		pkg.NewTavilySearcher(os.Getenv("TAVILY_API_KEY")),
	)

	// Start the stdio server
	if err := server.ServeStdio(mcpServer); err != nil {
		fmt.Printf("Server error: %v\n", err)
	}
}
