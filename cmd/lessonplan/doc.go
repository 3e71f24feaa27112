// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Lessonplan drafts a lesson plan in Markdown with Gemini.

# Usage

	$ GEMINI_API_KEY=... lessonplan [flags...]

The plan is printed and saved to a Markdown file named after the topic, for
example the_water_cycle_lesson_plan.md. Use -o to choose another file.

Learning styles accepted by -style:

  - Standard
  - Active Learning
  - Project-Based
  - Inquiry-Based
  - Discussion-Heavy

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
