// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"

	"github.com/golang/glog"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/pkg/errors"
)

const DefaultOllamaURL = "http://localhost:11434/v1"

// OllamaChatClient talks to the OpenAI-compatible chat completions API
// of a local Ollama instance.
type OllamaChatClient struct {
	client openai.Client
}

var _ ChatClient = (*OllamaChatClient)(nil)

func NewOllamaChatClient(baseURL string, opts ...option.RequestOption) *OllamaChatClient {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	requestOptions := append([]option.RequestOption{
		option.WithBaseURL(baseURL),
		// Ollama ignores the key, the client just requires one.
		option.WithAPIKey("ollama"),
	}, opts...)
	return &OllamaChatClient{
		client: openai.NewClient(requestOptions...),
	}
}

func (o *OllamaChatClient) Complete(ctx context.Context, model string, message string) (string, error) {
	glog.V(2).Infof("chat completion with model '%s'", model)
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(message),
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion failed")
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
