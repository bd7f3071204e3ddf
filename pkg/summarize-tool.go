// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const defaultSummaryWords = 100

func NewSummarizeTool() server.ServerTool {

	type SummarizeArgs struct {
		Text      string `json:"text"`
		MaxLength int    `json:"max_length"`
	}

	tool := mcp.NewTool("summarize_text",
		mcp.WithDescription("Summarize a given text"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text to summarize"),
		),
		mcp.WithNumber("max_length",
			mcp.Description("Maximum length of the summary in words"),
			mcp.DefaultNumber(defaultSummaryWords),
			mcp.Min(1),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args SummarizeArgs,
	) (*mcp.CallToolResult, error) {
		if strings.TrimSpace(args.Text) == "" {
			return mcp.NewToolResultError("text is required"), nil
		}

		maxLength := args.MaxLength
		if maxLength <= 0 {
			maxLength = defaultSummaryWords
		}

		words := strings.Fields(args.Text)
		if len(words) <= maxLength {
			return mcp.NewToolResultText(
				fmt.Sprintf("Text is already short (%d words): %s", len(words), args.Text),
			), nil
		}

		// Keep the head and the tail of the text within the word budget.
		first := strings.Join(words[:maxLength/2], " ")
		last := strings.Join(words[len(words)-maxLength/2:], " ")
		summary := fmt.Sprintf("%s... %s", first, last)

		return mcp.NewToolResultText(
			fmt.Sprintf("Summary (%d words): %s", len(strings.Fields(summary)), summary),
		), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
