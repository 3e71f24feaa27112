// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Charchat lets you talk to historical figures and fictional characters played
by Gemini.

# Usage

	$ GEMINI_API_KEY=... charchat [flags...] <character>

To list available characters:

	$ charchat -list

After the character's greeting, type a message and press Enter. Type /new to
start the conversation over and /quit (or press Ctrl+D) to leave.

# Environment Variables

  - GEMINI_API_KEY: Gemini API key. Required.
  - GEMINI_MODEL: model used when -model is not set. Defaults to gemini-2.0-flash.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/aidemos/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
