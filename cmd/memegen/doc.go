// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Memegen asks Gemini for a meme caption about a topic and draws it on a popular
Imgflip template.

# Usage

	$ GEMINI_API_KEY=... memegen [flags...]

Memegen asks for a topic, prints the generated caption, lists the ten most
popular templates and asks to pick one. The result is saved as meme.png in the
current directory, replacing the existing file.

The caption is drawn with the font given by -font. If it can't be loaded,
memegen falls back to the bundled Go Bold font.

# Environment Variables

  - GEMINI_API_KEY: Gemini API key. Required.
  - GEMINI_MODEL: model used when -model is not set. Defaults to gemini-2.0-flash.
  - MEME_FONT: font used when -font is not set. Defaults to impact.ttf.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/aidemos/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
