// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
)

const defaultCommand = "stdio-server"

func main() {
	command := flag.String("command", defaultCommand, "command to start the MCP stdio server")
	flag.Parse()

	// Create stdio transport, remaining arguments are passed to the server command
	stdioTransport := transport.NewStdio(*command, nil, flag.Args()...)

	// Create MCP client
	mcpClient := client.NewClient(stdioTransport)
	defer func() {
		_ = mcpClient.Close()
	}()

	// Start the client
	ctx := context.Background()
	if err := mcpClient.Start(ctx); err != nil {
		log.Fatalf("Failed to start client: %v", err)
	}

	// Initialize the MCP session
	initRequest := mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "assistant-tools-client",
				Version: "1.0.0",
			},
		},
	}

	if _, err := mcpClient.Initialize(ctx, initRequest); err != nil {
		log.Fatalf("Failed to initialize MCP session: %v", err)
	}

	tools, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		log.Fatalf("list tools failed: %v", err)
	}

	printTools(tools)
	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "quit" || input == "exit" || input == "q":
			fmt.Println("Goodbye!")
			return
		case input == "tools":
			printTools(tools)
		case strings.HasPrefix(input, "calc:"):
			expression := strings.TrimSpace(strings.TrimPrefix(input, "calc:"))
			if expression == "" {
				fmt.Println("Please provide an expression. Example: calc: 2+2")
				continue
			}
			fmt.Printf("Calculator: %s\n", callTool(ctx, mcpClient, "calculate", map[string]interface{}{
				"expression": expression,
			}))
		case strings.HasPrefix(input, "search:"):
			query := strings.TrimSpace(strings.TrimPrefix(input, "search:"))
			if query == "" {
				fmt.Println("Please provide a search query. Example: search: golang")
				continue
			}
			fmt.Printf("Searching: %s\n", callTool(ctx, mcpClient, "web_search", map[string]interface{}{
				"query": query,
			}))
		case strings.HasPrefix(input, "summarize:"):
			text := strings.TrimSpace(strings.TrimPrefix(input, "summarize:"))
			if text == "" {
				fmt.Println("Please provide text to summarize. Example: summarize: <your text>")
				continue
			}
			fmt.Printf("Summarizing: %s\n", callTool(ctx, mcpClient, "summarize_text", map[string]interface{}{
				"text": text,
			}))
		default:
			fmt.Printf("Model: %s\n", callTool(ctx, mcpClient, "chat", map[string]interface{}{
				"message": input,
			}))
		}
	}
}

func callTool(
	ctx context.Context,
	mcpClient *client.Client,
	name string,
	arguments map[string]interface{},
) string {
	result, err := mcpClient.CallTool(ctx, mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: arguments,
		},
	})
	if err != nil {
		return fmt.Sprintf("call failed: %v", err)
	}
	if len(result.Content) == 0 {
		return "no response received"
	}
	textContent, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		return "no response received"
	}
	return textContent.Text
}

func printTools(tools *mcp.ListToolsResult) {
	fmt.Printf("Available tools (%d):\n", len(tools.Tools))
	for _, tool := range tools.Tools {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
}

func printHelp() {
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  - type normally to chat with the model")
	fmt.Println("  - 'calc: <expression>' for the calculator")
	fmt.Println("  - 'search: <query>' for web search")
	fmt.Println("  - 'summarize: <text>' for text summarization")
	fmt.Println("  - 'tools' to list all tools")
	fmt.Println("  - 'quit' to exit")
}
