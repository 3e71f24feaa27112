// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Clarifai sends a prompt to a text model hosted on Clarifai and prints the
answer.

# Usage

	$ CLARIFAI_PAT=... clarifai [-model URL] [prompt...]

Without a prompt, asks "What's the future of AI?". The model is selected by
its page URL, like https://clarifai.com/deepseek-ai/deepseek-chat/models/DeepSeek-R1-0528-Qwen3-8B.

# Environment Variables

  - CLARIFAI_PAT: Clarifai personal access token. Required.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/aidemos/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
