// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"go.astrophena.name/aidemos/internal/cli"
	"go.astrophena.name/aidemos/internal/cli/clitest"
	"go.astrophena.name/aidemos/internal/testutil"
)

// fakeChat records started sessions and what was sent to them.
type fakeChat struct {
	mu       sync.Mutex
	personas []string
	sent     [][]string
}

type fakeSession struct {
	chat *fakeChat
	n    int
}

func (f *fakeChat) start(_ context.Context, persona string) (session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.personas = append(f.personas, persona)
	f.sent = append(f.sent, nil)
	return &fakeSession{chat: f, n: len(f.sent) - 1}, nil
}

func (s *fakeSession) Send(_ context.Context, msg string) (string, error) {
	s.chat.mu.Lock()
	defer s.chat.mu.Unlock()
	s.chat.sent[s.n] = append(s.chat.sent[s.n], msg)
	if msg == "break" {
		return "", errors.New("quota exceeded")
	}
	return "  echo: " + msg + "\n", nil
}

func TestRun(t *testing.T) {
	fakes := make(map[*engine]*fakeChat)
	var mu sync.Mutex
	fakeOf := func(e *engine) *fakeChat {
		mu.Lock()
		defer mu.Unlock()
		return fakes[e]
	}

	clitest.Run(t, func(t *testing.T) *engine {
		f := new(fakeChat)
		e := &engine{start: f.start}
		mu.Lock()
		fakes[e] = f
		mu.Unlock()
		return e
	}, map[string]clitest.Case[*engine]{
		"list": {
			Args:         []string{"-list"},
			WantInStdout: "Cleopatra\nEinstein\nShakespeare\nSpider-Man\n",
		},
		"no character": {
			WantErr: cli.ErrInvalidArgs,
		},
		"unknown character": {
			Args:    []string{"Napoleon"},
			WantErr: cli.ErrInvalidArgs,
		},
		"greeting": {
			Args:         []string{"einstein"},
			WantInStdout: "Einstein: Greetings! A pleasure to engage in discourse",
			CheckFunc: func(t *testing.T, e *engine) {
				f := fakeOf(e)
				testutil.AssertEqual(t, f.personas, []string{characters["Einstein"].persona})
			},
		},
		"reply": {
			Args:         []string{"Cleopatra"},
			Stdin:        strings.NewReader("hello\n\n/quit\nnot sent\n"),
			WantInStdout: "Cleopatra: echo: hello\n",
			CheckFunc: func(t *testing.T, e *engine) {
				testutil.AssertEqual(t, fakeOf(e).sent, [][]string{{"hello"}})
			},
		},
		"error keeps chatting": {
			Args:         []string{"Spider-Man"},
			Stdin:        strings.NewReader("break\nstill there?\n"),
			WantInStdout: "An error occurred: quota exceeded\n> Spider-Man: echo: still there?",
		},
		"new chat": {
			Args:         []string{"Shakespeare"},
			Stdin:        strings.NewReader("to be\n/new\nor not\n"),
			WantInStdout: "New chat started with Shakespeare!",
			CheckFunc: func(t *testing.T, e *engine) {
				f := fakeOf(e)
				testutil.AssertEqual(t, len(f.personas), 2)
				testutil.AssertEqual(t, f.sent, [][]string{{"to be"}, {"or not"}})
			},
		},
	})
}

func TestMissingAPIKey(t *testing.T) {
	err := cli.Run(cli.WithEnv(context.Background(), &cli.Env{
		Args:   []string{"Einstein"},
		Getenv: func(string) string { return "" },
		Stdin:  strings.NewReader(""),
		Stdout: new(strings.Builder),
		Stderr: new(strings.Builder),
	}), new(engine))
	if err == nil || !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Fatalf("want missing key error, got %v", err)
	}
}

func TestResponseText(t *testing.T) {
	cases := map[string]struct {
		resp    *genai.GenerateContentResponse
		want    string
		wantErr error
	}{
		"text parts": {
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello, "), genai.Text("world")}},
				}},
			},
			want: "Hello, world",
		},
		"skips non-text parts": {
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}, genai.Text("ok")}},
				}},
			},
			want: "ok",
		},
		"no candidates": {
			resp:    &genai.GenerateContentResponse{},
			wantErr: errEmptyResponse,
		},
		"nil content": {
			resp:    &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			wantErr: errEmptyResponse,
		},
		"only non-text": {
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}},
				}},
			},
			wantErr: errEmptyResponse,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := responseText(tc.resp)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want error %v, got %v", tc.wantErr, err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestCharacterLookup(t *testing.T) {
	name, c, ok := lookupCharacter("SPIDER-MAN")
	if !ok {
		t.Fatal("Spider-Man not found")
	}
	testutil.AssertEqual(t, name, "Spider-Man")
	if !strings.Contains(c.greeting, "friendly neighborhood") {
		t.Errorf("unexpected greeting: %q", c.greeting)
	}
	if _, _, ok := lookupCharacter("Batman"); ok {
		t.Error("Batman must not be found")
	}
}
