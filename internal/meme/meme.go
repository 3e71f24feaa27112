// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package meme composes classic top/bottom captioned meme images.
//
// Captions are upper-cased, wrapped to [WrapWidth] characters per line and
// drawn centered in white with a black outline: the top caption starts
// [TopMargin] pixels below the top edge and the bottom caption ends
// [BottomMargin] pixels above the bottom edge.
//
// The bottom caption is not clamped: a tall caption on a short image may start
// above the top edge or overlap the top caption.
package meme

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go.astrophena.name/aidemos/internal/atomicio"
	"go.astrophena.name/aidemos/internal/logger"
	"go.astrophena.name/aidemos/internal/textwrap"
)

// Layout constants, in pixels unless noted otherwise.
const (
	WrapWidth     = 25 // characters per line
	TopMargin     = 10
	BottomMargin  = 15
	LineGap       = 5
	OutlineOffset = 2
)

// Defaults used by [Options] and the memegen tool.
const (
	DefaultFontPath = "impact.ttf"
	DefaultFontSize = 50
	OutputFile      = "meme.png"
)

// ErrDecode is returned when the source image can't be decoded.
var ErrDecode = errors.New("cannot decode image")

var (
	fillColor    = image.White
	outlineColor = image.Black
	outline      = [...]image.Point{
		{-OutlineOffset, -OutlineOffset},
		{OutlineOffset, -OutlineOffset},
		{-OutlineOffset, OutlineOffset},
		{OutlineOffset, OutlineOffset},
	}
)

// Options configure a single composition.
type Options struct {
	// TopText and BottomText are the captions. Empty captions draw nothing.
	TopText, BottomText string
	// FontPath is the path to a TrueType or OpenType font. If it can't be
	// loaded, the bundled Go Bold font is used instead. Defaults to
	// DefaultFontPath.
	FontPath string
	// FontSize is the font size in points (equal to pixels). Defaults to
	// DefaultFontSize.
	FontSize int
	// Logf receives a message when the font falls back to the default one.
	Logf logger.Logf
}

// Compose decodes src, draws the captions from opts on it and returns the
// result encoded as PNG. The output has the same dimensions as src.
func Compose(src []byte, opts Options) ([]byte, error) {
	if opts.FontPath == "" {
		opts.FontPath = DefaultFontPath
	}
	if opts.FontSize == 0 {
		opts.FontSize = DefaultFontSize
	}
	if opts.FontSize < 0 {
		return nil, fmt.Errorf("invalid font size %d", opts.FontSize)
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	face, _ := ResolveFace(opts.FontPath, opts.FontSize, opts.Logf)
	defer face.Close()

	var buf bytes.Buffer
	if err := png.Encode(&buf, Render(img, face, opts.TopText, opts.BottomText)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the composed image to OutputFile in the current directory,
// overwriting it. The file is replaced atomically.
func Save(data []byte) error {
	return atomicio.WriteFile(OutputFile, data, 0o644)
}

// ResolveFace loads the font at path with the given size. If that fails for
// any reason it logs the reason and returns the bundled default font at the
// same size; fallback reports whether that happened.
func ResolveFace(path string, size int, logf logger.Logf) (face font.Face, fallback bool) {
	face, err := loadFace(path, size)
	if err == nil {
		return face, false
	}
	logger.Or(logf)("font %q not found, using default font: %v", path, err)
	return defaultFace(size), true
}

func loadFace(path string, size int) (font.Face, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseFace(b, size)
}

func parseFace(b []byte, size int) (font.Face, error) {
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func defaultFace(size int) font.Face {
	face, err := parseFace(gobold.TTF, size)
	if err != nil {
		// Bundled font is known to be valid; this is not expected.
		return basicfont.Face7x13
	}
	return face
}

// Lines upper-cases the caption and wraps it into display lines.
func Lines(caption string) []string {
	// A Caser is stateful, so it's not shared between calls.
	return textwrap.Wrap(cases.Upper(language.Und).String(caption), WrapWidth)
}

// SplitCaption splits a generated caption into top and bottom text at the
// first newline. Without a newline, the whole caption is the top text.
func SplitCaption(caption string) (top, bottom string) {
	top, bottom, _ = strings.Cut(strings.TrimSpace(caption), "\n")
	return strings.TrimSpace(top), strings.TrimSpace(bottom)
}

// Metrics are the measured pixel dimensions of a rendered line.
type Metrics struct {
	Width, Height int
}

// Measure returns the ink bounds of s drawn with face.
func Measure(face font.Face, s string) Metrics {
	b, _ := font.BoundString(face, s)
	return Metrics{
		Width:  (b.Max.X - b.Min.X).Ceil(),
		Height: (b.Max.Y - b.Min.Y).Ceil(),
	}
}

// Placement is a line positioned on the image. X and Y are the top-left of
// the line's drawing origin, with Y at the ascender line.
type Placement struct {
	Text string
	X, Y int
	Metrics
}

// BlockHeight returns the height of a block of lines: each line's height plus
// the gap after it.
func BlockHeight(face font.Face, lines []string) int {
	var h int
	for _, line := range lines {
		h += Measure(face, line).Height + LineGap
	}
	return h
}

// Layout positions top and bottom lines on an image of the given size.
func Layout(face font.Face, width, height int, top, bottom []string) []Placement {
	var ps []Placement
	place := func(lines []string, y int) {
		for _, line := range lines {
			m := Measure(face, line)
			ps = append(ps, Placement{
				Text:    line,
				X:       (width - m.Width) / 2,
				Y:       y,
				Metrics: m,
			})
			y += m.Height + LineGap
		}
	}
	place(top, TopMargin)
	place(bottom, height-BlockHeight(face, bottom)-BottomMargin)
	return ps
}

// Render draws the captions on a copy of img. The returned image has the
// same size as img, with bounds starting at the origin.
func Render(img image.Image, face font.Face, top, bottom string) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	for _, p := range Layout(face, b.Dx(), b.Dy(), Lines(top), Lines(bottom)) {
		drawOutlined(dst, face, p)
	}
	return dst
}

// drawOutlined draws the outline copies first so the fill stays on top.
func drawOutlined(dst draw.Image, face font.Face, p Placement) {
	ascent := face.Metrics().Ascent
	d := &font.Drawer{Dst: dst, Face: face}
	drawAt := func(src image.Image, dx, dy int) {
		d.Src = src
		d.Dot = fixed.Point26_6{
			X: fixed.I(p.X + dx),
			Y: fixed.I(p.Y+dy) + ascent,
		}
		d.DrawString(p.Text)
	}
	for _, o := range outline {
		drawAt(outlineColor, o.X, o.Y)
	}
	drawAt(fillColor, 0, 0)
}
