// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package imgflip lists meme templates from the Imgflip API.
package imgflip

import (
	"context"
	"errors"
	"net/http"

	"go.astrophena.name/aidemos/internal/request"
)

const apiURL = "https://api.imgflip.com"

// ErrUnsuccessful is returned when the API reports a failure.
var ErrUnsuccessful = errors.New("imgflip: request was not successful")

// Client talks to the Imgflip API. The zero value is ready to use.
type Client struct {
	// BaseURL overrides the API endpoint. Used in tests.
	BaseURL string
	// HTTPClient is an optional HTTP client to use for requests. Defaults to
	// request.DefaultClient.
	HTTPClient *http.Client
}

// Template is a meme template.
type Template struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	BoxCount int    `json:"box_count"`
}

type getMemesResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message"`
	Data         struct {
		Memes []Template `json:"memes"`
	} `json:"data"`
}

// Templates returns popular meme templates, most popular first.
func (c *Client) Templates(ctx context.Context) ([]Template, error) {
	base := c.BaseURL
	if base == "" {
		base = apiURL
	}
	resp, err := request.Make[getMemesResponse](ctx, request.Params{
		Method:     http.MethodGet,
		URL:        base + "/get_memes",
		HTTPClient: c.HTTPClient,
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		if resp.ErrorMessage != "" {
			return nil, errors.Join(ErrUnsuccessful, errors.New(resp.ErrorMessage))
		}
		return nil, ErrUnsuccessful
	}
	return resp.Data.Memes, nil
}
