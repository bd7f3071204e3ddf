// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bborbe/assistant_mcp_server/pkg"
)

func main() {
	mcpServer := pkg.NewMCPServer(
		pkg.NewOllamaChatClient(os.Getenv("OLLAMA_URL")),
		pkg.NewTavilySearcher(os.Getenv("TAVILY_API_KEY")),
	)

	// Create HTTP server
	httpServer := server.NewStreamableHTTPServer(mcpServer)

	log.Println("Starting HTTP MCP server on :8080")
	log.Println("Endpoint: http://localhost:8080/mcp")
	log.Println("")
	log.Println("This server uses the streamable HTTP transport.")
	log.Println("")
	log.Println("Available tools:")
	log.Println("- calculate: Evaluate a mathematical expression")
	log.Println("- web_search: Search the web via Tavily")
	log.Println("- summarize_text: Summarize a given text")
	log.Println("- chat: Chat with the configured language model")

	// Start the server
	if err := httpServer.Start(":8080"); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
