// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"go.astrophena.name/aidemos/internal/api/gemini"
	"go.astrophena.name/aidemos/internal/cli"
	"go.astrophena.name/aidemos/internal/httplogger"
)

var errFailed = errors.New("some images were not captioned")

func main() { cli.Main(new(engine)) }

type engine struct {
	style   string
	model   string
	verbose bool
	rpm     int

	limiter *rate.Limiter

	gemini *gemini.Client // set in tests
}

func (e *engine) Flags(fs *flag.FlagSet) {
	fs.StringVar(&e.style, "style", "descriptive", "Caption `style`: descriptive, fun or quirky.")
	fs.StringVar(&e.model, "model", "", "Gemini `model` to use.")
	fs.BoolVar(&e.verbose, "v", false, "Log HTTP requests.")
	fs.IntVar(&e.rpm, "rpm", 15, "Send at most `n` requests per minute, 0 means no limit.")
}

var stylePrompts = map[string]string{
	"descriptive": "Generate a detailed and descriptive caption for this image:",
	"fun":         "Generate a fun and lighthearted caption for this image:",
	"quirky":      "Generate a quirky, imaginative, and slightly unusual caption for this image:",
}

// normalizeStyle returns a known style name, falling back to descriptive.
func normalizeStyle(style string) string {
	style = strings.ToLower(strings.TrimSpace(style))
	if _, ok := stylePrompts[style]; ok {
		return style
	}
	return "descriptive"
}

func (e *engine) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) == 0 {
		return fmt.Errorf("%w: at least one image is required", cli.ErrInvalidArgs)
	}
	if e.gemini == nil {
		key := env.Getenv("GEMINI_API_KEY")
		if key == "" {
			return errors.New("missing environment variable GEMINI_API_KEY")
		}
		e.gemini = &gemini.Client{APIKey: key}
		if e.verbose {
			e.gemini.HTTPClient = httplogger.Client(env.Logf)
		}
	}
	e.gemini.Model = cmp.Or(e.model, env.Getenv("GEMINI_MODEL"), gemini.DefaultModel)

	if e.rpm < 0 {
		return fmt.Errorf("%w: -rpm must not be negative", cli.ErrInvalidArgs)
	}
	e.limiter = newLimiter(e.rpm)

	style := normalizeStyle(e.style)
	var failed int
	for _, path := range env.Args {
		fmt.Fprintf(env.Stdout, "\n--- Generating %s%s Caption for %s ---\n", strings.ToUpper(style[:1]), style[1:], path)
		caption, err := e.caption(ctx, path, style)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(env.Stdout, "Error: Image file not found at %s\n", path)
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(env.Stdout, "An error occurred: %v\n", err)
		default:
			fmt.Fprintln(env.Stdout, strings.TrimSpace(caption))
			continue
		}
		failed++
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d failed", errFailed, failed, len(env.Args))
	}
	return nil
}

// newLimiter returns a limiter allowing rpm requests per minute. The first
// request is never delayed.
func newLimiter(rpm int) *rate.Limiter {
	if rpm == 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
}

func (e *engine) caption(ctx context.Context, path, style string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	data, mimeType, err := prepareImage(b)
	if err != nil {
		return "", err
	}
	if err := e.limiter.Wait(ctx); err != nil {
		return "", err
	}
	resp, err := e.gemini.GenerateContent(ctx, gemini.GenerateContentParams{
		Contents: []*gemini.Content{{
			Role: "user",
			Parts: []*gemini.Part{
				{Text: stylePrompts[style]},
				gemini.Image(mimeType, data),
			},
		}},
	})
	if err != nil {
		return "", err
	}
	return resp.Text()
}
