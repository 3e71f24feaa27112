// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go.astrophena.name/aidemos/internal/api/clarifai"
	"go.astrophena.name/aidemos/internal/cli"
	"go.astrophena.name/aidemos/internal/cli/clitest"
	"go.astrophena.name/aidemos/internal/testutil"
)

const testPAT = "test-pat"

type fakeClarifai struct {
	*httptest.Server

	mu    sync.Mutex
	paths []string
}

func (f *fakeClarifai) requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

// newFakeClarifai answers predictions by echoing the prompt. A prompt of
// "fail" gets a failed status.
func newFakeClarifai(t *testing.T) *fakeClarifai {
	f := new(fakeClarifai)
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Key "+testPAT {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req struct {
			Inputs []clarifai.Input `json:"inputs"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.paths = append(f.paths, r.URL.Path)
		f.mu.Unlock()

		prompt := req.Inputs[0].Data.Text.Raw
		resp := clarifai.PredictResponse{Status: clarifai.Status{Code: 10000, Description: "Ok"}}
		if prompt == "fail" {
			resp.Status = clarifai.Status{Code: 21200, Description: "Model does not exist"}
		} else {
			resp.Outputs = []clarifai.Output{{
				Status: clarifai.Status{Code: 10000, Description: "Ok"},
				Data:   clarifai.Data{Text: &clarifai.Text{Raw: "You asked: " + prompt}},
			}}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(f.Close)
	return f
}

func TestRun(t *testing.T) {
	f := newFakeClarifai(t)

	clitest.Run(t, func(t *testing.T) *engine {
		return &engine{clarifai: &clarifai.Client{
			PAT:        testPAT,
			BaseURL:    f.URL,
			HTTPClient: f.Client(),
		}}
	}, map[string]clitest.Case[*engine]{
		"default prompt": {
			WantInStdout: "You asked: What's the future of AI?\n",
		},
		"custom model": {
			Args:         []string{"-model", "https://clarifai.com/openai/chat-completion/models/gpt-4o", "hi"},
			WantInStdout: "You asked: hi\n",
		},
		"prompt from args": {
			Args:         []string{"Tell", "me", "a", "joke"},
			WantInStdout: "You asked: Tell me a joke\n",
		},
		"invalid model URL": {
			Args:    []string{"-model", "https://clarifai.com/explore"},
			WantErr: cli.ErrInvalidArgs,
		},
	})
}

func TestModelPath(t *testing.T) {
	f := newFakeClarifai(t)
	e := &engine{clarifai: &clarifai.Client{PAT: testPAT, BaseURL: f.URL, HTTPClient: f.Client()}}
	err := cli.Run(cli.WithEnv(t.Context(), &cli.Env{
		Args:   []string{"hello"},
		Getenv: func(string) string { return "" },
		Stdin:  strings.NewReader(""),
		Stdout: new(strings.Builder),
		Stderr: new(strings.Builder),
	}), e)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, f.requested(), []string{"/users/deepseek-ai/apps/deepseek-chat/models/DeepSeek-R1-0528-Qwen3-8B/outputs"})
}

func TestFailedStatus(t *testing.T) {
	f := newFakeClarifai(t)
	e := &engine{clarifai: &clarifai.Client{PAT: testPAT, BaseURL: f.URL, HTTPClient: f.Client()}}
	var stdout strings.Builder
	err := cli.Run(cli.WithEnv(t.Context(), &cli.Env{
		Args:   []string{"fail"},
		Getenv: func(string) string { return "" },
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: new(strings.Builder),
	}), e)
	if err == nil || !strings.Contains(err.Error(), "Model does not exist") {
		t.Fatalf("want failed status error, got %v", err)
	}
	testutil.AssertEqual(t, stdout.String(), "")
}

func TestMissingPAT(t *testing.T) {
	err := cli.Run(cli.WithEnv(t.Context(), &cli.Env{
		Getenv: func(string) string { return "" },
		Stdin:  strings.NewReader(""),
		Stdout: new(strings.Builder),
		Stderr: new(strings.Builder),
	}), new(engine))
	if err == nil || !strings.Contains(err.Error(), "CLARIFAI_PAT") {
		t.Fatalf("want missing PAT error, got %v", err)
	}
}
