// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"net/http"

	tavilygo "github.com/diverged/tavily-go"
	tavilymodels "github.com/diverged/tavily-go/models"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// TavilySearcher performs web searches against the Tavily API.
type TavilySearcher struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Searcher = (*TavilySearcher)(nil)

func NewTavilySearcher(apiKey string) *TavilySearcher {
	return &TavilySearcher{
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

func (t *TavilySearcher) WithBaseURL(baseURL string) *TavilySearcher {
	t.baseURL = baseURL
	return t
}

func (t *TavilySearcher) WithHTTPClient(httpClient *http.Client) *TavilySearcher {
	t.httpClient = httpClient
	return t
}

func (t *TavilySearcher) Search(ctx context.Context, query string) ([]WebSearchResult, error) {
	if t.apiKey == "" {
		return nil, errors.New("tavily api key is empty")
	}

	client := tavilygo.NewClient(t.apiKey)
	if t.baseURL != "" {
		client.BaseURL = t.baseURL
	}
	if t.httpClient != nil {
		client.HTTPClient = t.httpClient
	}

	response, err := tavilygo.Search(client, tavilymodels.SearchRequest{
		Query:       query,
		SearchDepth: "basic",
	})
	if err != nil {
		return nil, errors.Wrap(err, "tavily search failed")
	}
	glog.V(2).Infof("tavily returned %d results for '%s'", len(response.Results), query)

	results := make([]WebSearchResult, 0, len(response.Results))
	for _, result := range response.Results {
		results = append(results, WebSearchResult{
			Title:   result.Title,
			URL:     result.URL,
			Content: result.Content,
		})
	}
	return results, nil
}
