// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/openai/openai-go/v3/option"

	"github.com/bborbe/assistant_mcp_server/pkg"
)

var _ = Describe("OllamaChatClient", func() {
	var ctx context.Context
	var httpServer *httptest.Server
	var chatClient *pkg.OllamaChatClient
	var answer string
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		httpServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodPost))

			var body map[string]interface{}
			Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
			Expect(body["model"]).To(Equal("gemma3"))

			w.Header().Set("Content-Type", "application/json")
			Expect(json.NewEncoder(w).Encode(map[string]interface{}{
				"id":     "chatcmpl-123",
				"object": "chat.completion",
				"model":  "gemma3",
				"choices": []map[string]interface{}{
					{
						"index": 0,
						"message": map[string]interface{}{
							"role":    "assistant",
							"content": "Hello!",
						},
						"finish_reason": "stop",
					},
				},
			})).To(Succeed())
		}))
		chatClient = pkg.NewOllamaChatClient(
			httpServer.URL,
			option.WithHTTPClient(httpServer.Client()),
			option.WithMaxRetries(0),
		)
	})

	AfterEach(func() {
		httpServer.Close()
	})

	Context("Complete", func() {
		JustBeforeEach(func() {
			answer, err = chatClient.Complete(ctx, "gemma3", "hi")
		})

		It("returns no error", func() {
			Expect(err).To(BeNil())
		})

		It("returns the assistant answer", func() {
			Expect(answer).To(Equal("Hello!"))
		})

		Context("with failing backend", func() {
			BeforeEach(func() {
				httpServer.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					http.Error(w, "boom", http.StatusInternalServerError)
				})
			})

			It("returns an error", func() {
				Expect(err).NotTo(BeNil())
				Expect(err.Error()).To(ContainSubstring("chat completion failed"))
			})
		})

		Context("without choices", func() {
			BeforeEach(func() {
				httpServer.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					Expect(json.NewEncoder(w).Encode(map[string]interface{}{
						"id":      "chatcmpl-123",
						"object":  "chat.completion",
						"model":   "gemma3",
						"choices": []map[string]interface{}{},
					})).To(Succeed())
				})
			})

			It("returns an error", func() {
				Expect(err).NotTo(BeNil())
				Expect(err.Error()).To(Equal("chat completion returned no choices"))
			})
		})
	})
})
