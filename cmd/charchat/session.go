// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// session is a conversation with a model. The conversation history is kept by
// the session.
type session interface {
	Send(ctx context.Context, msg string) (string, error)
}

// startFunc starts a new session with the given system instruction.
type startFunc func(ctx context.Context, persona string) (session, error)

// geminiChat starts sessions backed by Gemini chat.
type geminiChat struct {
	client *genai.Client
	model  string
}

func newGeminiChat(ctx context.Context, apiKey, model string) (*geminiChat, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &geminiChat{client: client, model: model}, nil
}

func (g *geminiChat) start(_ context.Context, persona string) (session, error) {
	m := g.client.GenerativeModel(g.model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(persona)}}
	return &geminiSession{cs: m.StartChat()}, nil
}

func (g *geminiChat) Close() error { return g.client.Close() }

type geminiSession struct {
	cs *genai.ChatSession
}

func (s *geminiSession) Send(ctx context.Context, msg string) (string, error) {
	resp, err := s.cs.SendMessage(ctx, genai.Text(msg))
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

var errEmptyResponse = errors.New("model returned an empty response")

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errEmptyResponse
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if sb.Len() == 0 {
		return "", errEmptyResponse
	}
	return sb.String(), nil
}
