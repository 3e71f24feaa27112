// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package openai is a minimal client for chat completions APIs compatible with
// OpenAI's, like the one Clarifai exposes.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.astrophena.name/aidemos/internal/request"
)

// Client holds configuration for interacting with a chat completions API.
type Client struct {
	// BaseURL is the API base, like "https://api.openai.com/v1". Required.
	BaseURL string
	// APIKey is sent as a bearer token.
	APIKey string
	// HTTPClient is an optional HTTP client to use for requests. Defaults to
	// request.DefaultClient.
	HTTPClient *http.Client
}

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the request body of the chat completions API.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// ChatResponse is the response of the chat completions API.
type ChatResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}

// Choice is a single completion choice.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Text returns the content of the first choice.
func (r *ChatResponse) Text() (string, error) {
	if r == nil || len(r.Choices) == 0 {
		return "", errors.New("openai: response has no choices")
	}
	return r.Choices[0].Message.Content, nil
}

// ChatCompletion sends a chat completions request.
func (c *Client) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if c.BaseURL == "" {
		return nil, errors.New("openai: missing base URL")
	}
	if c.APIKey == "" {
		return nil, errors.New("openai: missing API key")
	}
	return request.Make[*ChatResponse](ctx, request.Params{
		Method: http.MethodPost,
		URL:    strings.TrimSuffix(c.BaseURL, "/") + "/chat/completions",
		Headers: map[string]string{
			"Authorization": "Bearer " + c.APIKey,
		},
		Body:       req,
		HTTPClient: c.HTTPClient,
		Scrubber:   strings.NewReplacer(c.APIKey, "[EXPUNGED]"),
	})
}
