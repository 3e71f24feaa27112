// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clarifai runs predictions on models hosted by Clarifai.
package clarifai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.astrophena.name/aidemos/internal/request"
)

const apiURL = "https://api.clarifai.com/v2"

// OpenAIBaseURL is the Clarifai endpoint compatible with the OpenAI chat
// completions API.
const OpenAIBaseURL = apiURL + "/ext/openai/v1"

// statusSuccess is the Clarifai status code for a successful request.
const statusSuccess = 10000

// Client holds configuration for interacting with the Clarifai API.
type Client struct {
	// PAT is the personal access token used for authentication.
	PAT string
	// BaseURL overrides the API endpoint. Used in tests.
	BaseURL string
	// HTTPClient is an optional HTTP client to use for requests. Defaults to
	// request.DefaultClient.
	HTTPClient *http.Client
}

// ModelRef identifies a model on Clarifai.
type ModelRef struct {
	UserID    string
	AppID     string
	ModelID   string
	VersionID string // optional
}

// ParseModelURL parses a model page URL like
// https://clarifai.com/deepseek-ai/deepseek-chat/models/DeepSeek-R1-0528-Qwen3-8B
// into a ModelRef. A trailing /versions/<id> selects the version.
func ParseModelURL(s string) (ModelRef, error) {
	u, err := url.Parse(s)
	if err != nil {
		return ModelRef{}, err
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if (len(parts) != 4 && len(parts) != 6) || parts[2] != "models" || (len(parts) == 6 && parts[4] != "versions") {
		return ModelRef{}, fmt.Errorf("clarifai: %q is not a model URL", s)
	}
	ref := ModelRef{UserID: parts[0], AppID: parts[1], ModelID: parts[3]}
	if len(parts) == 6 {
		ref.VersionID = parts[5]
	}
	for _, p := range parts {
		if p == "" {
			return ModelRef{}, fmt.Errorf("clarifai: %q is not a model URL", s)
		}
	}
	return ref, nil
}

func (r ModelRef) path() string {
	p := "/users/" + r.UserID + "/apps/" + r.AppID + "/models/" + r.ModelID
	if r.VersionID != "" {
		p += "/versions/" + r.VersionID
	}
	return p + "/outputs"
}

// Status is the status of a request or an output.
type Status struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Details     string `json:"details,omitempty"`
}

// Err returns an error if the status is not successful.
func (s Status) Err() error {
	if s.Code == statusSuccess {
		return nil
	}
	msg := fmt.Sprintf("clarifai: status %d: %s", s.Code, s.Description)
	if s.Details != "" {
		msg += " (" + s.Details + ")"
	}
	return errors.New(msg)
}

// Data holds input or output data.
type Data struct {
	Text *Text `json:"text,omitempty"`
}

// Text is raw text data.
type Text struct {
	Raw string `json:"raw"`
}

// Input is a single prediction input.
type Input struct {
	Data Data `json:"data"`
}

// Output is a single prediction output.
type Output struct {
	Status Status `json:"status"`
	Data   Data   `json:"data"`
}

type predictRequest struct {
	Inputs []Input `json:"inputs"`
}

// PredictResponse is the response of the model outputs API.
type PredictResponse struct {
	Status  Status   `json:"status"`
	Outputs []Output `json:"outputs"`
}

// Predict runs the model on the given inputs.
func (c *Client) Predict(ctx context.Context, model ModelRef, inputs ...Input) (*PredictResponse, error) {
	if c.PAT == "" {
		return nil, errors.New("clarifai: missing personal access token")
	}
	base := c.BaseURL
	if base == "" {
		base = apiURL
	}
	resp, err := request.Make[*PredictResponse](ctx, request.Params{
		Method: http.MethodPost,
		URL:    base + model.path(),
		Headers: map[string]string{
			"Authorization": "Key " + c.PAT,
		},
		Body:       predictRequest{Inputs: inputs},
		HTTPClient: c.HTTPClient,
		Scrubber:   strings.NewReplacer(c.PAT, "[EXPUNGED]"),
	})
	if err != nil {
		return nil, err
	}
	if err := resp.Status.Err(); err != nil {
		return nil, err
	}
	return resp, nil
}

// PredictText runs a text model on prompt and returns the raw text of the first
// output.
func (c *Client) PredictText(ctx context.Context, model ModelRef, prompt string) (string, error) {
	resp, err := c.Predict(ctx, model, Input{Data: Data{Text: &Text{Raw: prompt}}})
	if err != nil {
		return "", err
	}
	if len(resp.Outputs) == 0 {
		return "", errors.New("clarifai: response has no outputs")
	}
	out := resp.Outputs[0]
	// Outputs of some models carry no status of their own.
	if out.Status.Code != 0 {
		if err := out.Status.Err(); err != nil {
			return "", err
		}
	}
	if out.Data.Text == nil {
		return "", errors.New("clarifai: output has no text")
	}
	return out.Data.Text.Raw, nil
}
