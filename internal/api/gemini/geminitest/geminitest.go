// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package geminitest provides a fake Gemini API server for tests.
package geminitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go.astrophena.name/aidemos/internal/api/gemini"
)

// APIKey is the key the fake server accepts.
const APIKey = "test-gemini-key"

// Server is a fake Gemini API server.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []gemini.GenerateContentParams
	models   []string
}

// NewServer starts a fake server that answers every generateContent request
// with the text returned by respond. An empty text produces a response
// without candidates. The server is closed when the test ends.
func NewServer(t *testing.T, respond func(gemini.GenerateContentParams) string) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		model, ok := strings.CutPrefix(r.URL.Path, "/models/")
		if r.Method != http.MethodPost || !ok || !strings.HasSuffix(model, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("x-goog-api-key") != APIKey {
			http.Error(w, "API key not valid", http.StatusBadRequest)
			return
		}
		var params gemini.GenerateContentParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		s.requests = append(s.requests, params)
		s.models = append(s.models, strings.TrimSuffix(model, ":generateContent"))
		s.mu.Unlock()

		var resp gemini.GenerateContentResponse
		if text := respond(params); text != "" {
			resp.Candidates = []*gemini.Candidate{{
				Content: &gemini.Content{Role: "model", Parts: []*gemini.Part{{Text: text}}},
			}}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(s.Close)
	return s
}

// Client returns a client configured to talk to s.
func (s *Server) Client() *gemini.Client {
	return &gemini.Client{
		APIKey:     APIKey,
		BaseURL:    s.URL,
		HTTPClient: s.Server.Client(),
	}
}

// Requests returns the requests received so far.
func (s *Server) Requests() []gemini.GenerateContentParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]gemini.GenerateContentParams(nil), s.requests...)
}

// Models returns the model names requested so far.
func (s *Server) Models() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.models...)
}

// PromptText returns the text parts of all contents in params joined by
// newlines.
func PromptText(params gemini.GenerateContentParams) string {
	var parts []string
	for _, c := range params.Contents {
		for _, p := range c.Parts {
			if p.Text != "" {
				parts = append(parts, p.Text)
			}
		}
	}
	return strings.Join(parts, "\n")
}
