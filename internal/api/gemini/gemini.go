// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package gemini provides a very minimal client for interacting with Gemini
// API.
package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"go.astrophena.name/aidemos/internal/request"
)

// DefaultModel is the model used when none is specified.
const DefaultModel = "gemini-2.0-flash"

const apiURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrNoCandidates is returned by [GenerateContentResponse.Text] when the
// model returned nothing.
var ErrNoCandidates = errors.New("gemini: response has no candidates")

// Client holds configuration for interacting with the Gemini API.
type Client struct {
	// APIKey is the API key used for authentication.
	APIKey string
	// Model is the model name, like "gemini-2.0-flash". Defaults to
	// DefaultModel.
	Model string
	// BaseURL overrides the API endpoint. Used in tests.
	BaseURL string
	// HTTPClient is an optional HTTP client to use for requests. Defaults to
	// request.DefaultClient.
	HTTPClient *http.Client
}

// GenerateContentParams defines the structure for the request body sent to the
// GenerateContent API.
type GenerateContentParams struct {
	// Contents is a list of Content objects representing the input for
	// generation.
	Contents []*Content `json:"contents"`
	// SystemInstruction is an optional Content object specifying system
	// instructions for generation.
	SystemInstruction *Content `json:"systemInstruction,omitempty"`
}

// Content represents a piece of content with a list of Part objects.
type Content struct {
	// Parts is a list of Part objects representing the elements within
	// the content.
	Parts []*Part `json:"parts"`
	// Role is the producer of the content. Must be either 'user' or 'model'.
	Role string `json:"role,omitempty"`
}

// Part represents an element within a Content object.
type Part struct {
	// InlineData is the inline media bytes.
	InlineData *InlineData `json:"inline_data,omitempty"`
	// Text is the content of the textual element.
	Text string `json:"text,omitempty"`
}

// InlineData is the raw media bytes.
type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // encoded as Base64
}

// Text returns a Content with a single text part authored by the user.
func Text(s string) *Content {
	return &Content{Role: "user", Parts: []*Part{{Text: s}}}
}

// Image returns a Part carrying an image with the given MIME type.
func Image(mimeType string, data []byte) *Part {
	return &Part{InlineData: &InlineData{
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}}
}

// GenerateContentResponse defines the structure of the response received from
// the GenerateContent API.
type GenerateContentResponse struct {
	// Candidates is a list of Candidate objects representing the generated text
	// alternatives.
	Candidates []*Candidate `json:"candidates"`
}

// Candidate represents a generated text candidate with a corresponding Content
// object.
type Candidate struct {
	// Content is the generated text content for this candidate.
	Content *Content `json:"content"`
}

// Text returns the text parts of the first candidate joined together.
func (r *GenerateContentResponse) Text() (string, error) {
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return "", ErrNoCandidates
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// GenerateContent sends a request to the Gemini API to generate content.
func (c *Client) GenerateContent(ctx context.Context, params GenerateContentParams) (*GenerateContentResponse, error) {
	if c.APIKey == "" {
		return nil, errors.New("gemini: missing API key")
	}
	model := c.Model
	if model == "" {
		model = DefaultModel
	}
	base := c.BaseURL
	if base == "" {
		base = apiURL
	}
	return request.Make[*GenerateContentResponse](ctx, request.Params{
		Method: http.MethodPost,
		URL:    base + "/models/" + model + ":generateContent",
		Headers: map[string]string{
			"x-goog-api-key": c.APIKey,
		},
		Body:       params,
		HTTPClient: c.HTTPClient,
		Scrubber:   strings.NewReplacer(c.APIKey, "[EXPUNGED]"),
	})
}

// Generate is a shortcut for a single-prompt GenerateContent call that returns
// the generated text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.GenerateContent(ctx, GenerateContentParams{
		Contents: []*Content{Text(prompt)},
	})
	if err != nil {
		return "", err
	}
	return resp.Text()
}
