// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package clarifai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.astrophena.name/aidemos/internal/testutil"
)

func TestParseModelURL(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in      string
		want    ModelRef
		wantErr bool
	}{
		"model": {
			in:   "https://clarifai.com/deepseek-ai/deepseek-chat/models/DeepSeek-R1-0528-Qwen3-8B",
			want: ModelRef{UserID: "deepseek-ai", AppID: "deepseek-chat", ModelID: "DeepSeek-R1-0528-Qwen3-8B"},
		},
		"with version": {
			in:   "https://clarifai.com/openai/chat-completion/models/gpt-4o/versions/abc123",
			want: ModelRef{UserID: "openai", AppID: "chat-completion", ModelID: "gpt-4o", VersionID: "abc123"},
		},
		"trailing slash": {
			in:   "https://clarifai.com/meta/Llama-3/models/llama-3-8b/",
			want: ModelRef{UserID: "meta", AppID: "Llama-3", ModelID: "llama-3-8b"},
		},
		"not a model": {
			in:      "https://clarifai.com/explore",
			wantErr: true,
		},
		"wrong segment": {
			in:      "https://clarifai.com/a/b/workflows/c",
			wantErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseModelURL(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("want error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestPredictText(t *testing.T) {
	t.Parallel()

	const pat = "test-pat"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/deepseek-ai/apps/deepseek-chat/models/DeepSeek-R1/outputs" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Key "+pat {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status": {"code": 11102, "description": "Invalid request"}}`))
			return
		}
		var req predictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		prompt := req.Inputs[0].Data.Text.Raw
		if prompt == "fail" {
			w.Write([]byte(`{"status": {"code": 21200, "description": "Model does not exist"}}`))
			return
		}
		json.NewEncoder(w).Encode(PredictResponse{
			Status: Status{Code: statusSuccess, Description: "Ok"},
			Outputs: []Output{{
				Status: Status{Code: statusSuccess, Description: "Ok"},
				Data:   Data{Text: &Text{Raw: "The future of AI is " + strings.ToLower(prompt)}},
			}},
		})
	}))
	defer srv.Close()

	model := ModelRef{UserID: "deepseek-ai", AppID: "deepseek-chat", ModelID: "DeepSeek-R1"}
	c := &Client{PAT: pat, BaseURL: srv.URL, HTTPClient: srv.Client()}

	got, err := c.PredictText(context.Background(), model, "BRIGHT")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, "The future of AI is bright")

	if _, err := c.PredictText(context.Background(), model, "fail"); err == nil || !strings.Contains(err.Error(), "Model does not exist") {
		t.Fatalf("want status error, got %v", err)
	}

	bad := &Client{PAT: "wrong-pat", BaseURL: srv.URL, HTTPClient: srv.Client()}
	_, err = bad.PredictText(context.Background(), model, "x")
	if err == nil {
		t.Fatal("want error for invalid token")
	}
	if strings.Contains(err.Error(), "wrong-pat") {
		t.Fatalf("error leaks token: %v", err)
	}

	if _, err := (&Client{}).PredictText(context.Background(), model, "x"); err == nil {
		t.Fatal("want error for missing token")
	}
}
