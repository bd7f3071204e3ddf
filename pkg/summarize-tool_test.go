// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/assistant_mcp_server/pkg"
)

var _ = Describe("SummarizeTool", func() {
	var ctx context.Context
	var tool server.ServerTool
	var request mcp.CallToolRequest
	var result *mcp.CallToolResult
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		tool = pkg.NewSummarizeTool()
	})

	Context("NewSummarizeTool", func() {
		It("creates tool with correct name", func() {
			Expect(tool.Tool.Name).To(Equal("summarize_text"))
		})

		It("creates tool with correct description", func() {
			Expect(tool.Tool.Description).To(Equal("Summarize a given text"))
		})

		It("creates tool with handler", func() {
			Expect(tool.Handler).NotTo(BeNil())
		})
	})

	Context("tool execution", func() {
		JustBeforeEach(func() {
			result, err = tool.Handler(ctx, request)
		})

		Context("with missing text", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name:      "summarize_text",
						Arguments: map[string]interface{}{},
					},
				}
			})

			It("returns no error", func() {
				Expect(err).To(BeNil())
			})

			It("returns error result", func() {
				Expect(result.IsError).To(BeTrue())
			})

			It("returns correct error message", func() {
				Expect(getTextContent(result.Content[0])).To(Equal("text is required"))
			})
		})

		Context("with short text", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "summarize_text",
						Arguments: map[string]interface{}{
							"text": "short and sweet",
						},
					},
				}
			})

			It("returns no error", func() {
				Expect(err).To(BeNil())
			})

			It("returns the text unchanged", func() {
				Expect(getTextContent(result.Content[0])).To(
					Equal("Text is already short (3 words): short and sweet"),
				)
			})
		})

		Context("with text exceeding the word budget", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "summarize_text",
						Arguments: map[string]interface{}{
							"text":       "one two three four five six seven eight nine ten",
							"max_length": 6,
						},
					},
				}
			})

			It("returns success result", func() {
				Expect(result.IsError).To(BeFalse())
			})

			It("keeps the head and tail of the text", func() {
				Expect(getTextContent(result.Content[0])).To(
					Equal("Summary (6 words): one two three... eight nine ten"),
				)
			})
		})

		Context("with default word budget", func() {
			BeforeEach(func() {
				words := make([]string, 0, 120)
				for i := 0; i < 120; i++ {
					words = append(words, fmt.Sprintf("word%d", i))
				}
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "summarize_text",
						Arguments: map[string]interface{}{
							"text": strings.Join(words, " "),
						},
					},
				}
			})

			It("summarizes to one hundred words", func() {
				text := getTextContent(result.Content[0])
				Expect(text).To(HavePrefix("Summary (100 words): word0 "))
				Expect(text).To(HaveSuffix(" word119"))
				Expect(text).To(ContainSubstring("word49... word70"))
			})
		})
	})
})
