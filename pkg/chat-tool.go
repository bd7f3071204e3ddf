// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const DefaultChatModel = "gemma3"

// ChatClient completes a single-turn chat message against a language model.
type ChatClient interface {
	Complete(ctx context.Context, model string, message string) (string, error)
}

func NewChatTool(chatClient ChatClient) server.ServerTool {

	type ChatArgs struct {
		Message string `json:"message"`
		Model   string `json:"model"`
	}

	tool := mcp.NewTool("chat",
		mcp.WithDescription("Chat with the configured language model"),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The message to send to the model"),
		),
		mcp.WithString("model",
			mcp.Description("The model to use"),
			mcp.DefaultString(DefaultChatModel),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args ChatArgs,
	) (*mcp.CallToolResult, error) {
		if args.Message == "" {
			return mcp.NewToolResultError("message is required"), nil
		}

		model := args.Model
		if model == "" {
			model = DefaultChatModel
		}

		answer, err := chatClient.Complete(ctx, model, args.Message)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("chat failed: %v", err)), nil
		}
		return mcp.NewToolResultText(answer), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
