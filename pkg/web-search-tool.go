// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	maxSearchResults = 3
	snippetLength    = 200
)

// WebSearchResult is a single hit returned by a Searcher.
type WebSearchResult struct {
	Title   string
	URL     string
	Content string
}

// Searcher performs a web search for the given query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]WebSearchResult, error)
}

func NewWebSearchTool(searcher Searcher) server.ServerTool {

	type WebSearchArgs struct {
		Query string `json:"query"`
	}

	tool := mcp.NewTool("web_search",
		mcp.WithDescription("Search the web for information"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query"),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args WebSearchArgs,
	) (*mcp.CallToolResult, error) {
		if args.Query == "" {
			return mcp.NewToolResultError("query is required"), nil
		}

		glog.V(2).Infof("search web for '%s'", args.Query)
		results, err := searcher.Search(ctx, args.Query)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No search results found."), nil
		}
		if len(results) > maxSearchResults {
			results = results[:maxSearchResults]
		}

		buf := &strings.Builder{}
		fmt.Fprintf(buf, "Search results for '%s':\n\n", args.Query)
		for i, result := range results {
			fmt.Fprintf(buf, "%d. %s\n", i+1, result.Title)
			fmt.Fprintf(buf, "   %s...\n", snippet(result.Content))
			fmt.Fprintf(buf, "   Source: %s\n\n", result.URL)
		}
		return mcp.NewToolResultText(buf.String()), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

func snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetLength {
		return content
	}
	return string(runes[:snippetLength])
}
