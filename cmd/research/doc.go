// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Research is an interactive research assistant backed by a model served
through Clarifai's OpenAI-compatible API.

# Usage

	$ CLARIFAI_PAT=... research [-model name]

Enter a topic at the prompt. Research writes an analysis report, prints it
and saves it to research_report_<topic>_<timestamp>.txt in the current
directory. Type exit, quit or q (or press Ctrl+D) to leave.

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
