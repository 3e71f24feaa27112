// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Imgcaption writes captions for images with Gemini.

# Usage

	$ GEMINI_API_KEY=... imgcaption [-style descriptive|fun|quirky] <image>...

PNG, JPEG, GIF, BMP, TIFF and WebP images are accepted. Images that Gemini
can't read directly are converted to PNG before upload.

A caption is printed for each image. Images that can't be read are reported
and skipped; imgcaption exits with a non-zero status if any image failed.

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
