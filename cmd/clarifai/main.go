// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"go.astrophena.name/aidemos/internal/api/clarifai"
	"go.astrophena.name/aidemos/internal/cli"
	"go.astrophena.name/aidemos/internal/httplogger"
)

const (
	defaultModel  = "https://clarifai.com/deepseek-ai/deepseek-chat/models/DeepSeek-R1-0528-Qwen3-8B"
	defaultPrompt = "What's the future of AI?"
)

func main() { cli.Main(new(engine)) }

type engine struct {
	model   string
	verbose bool

	clarifai *clarifai.Client // set in tests
}

func (e *engine) Flags(fs *flag.FlagSet) {
	fs.StringVar(&e.model, "model", defaultModel, "Clarifai model page `URL`.")
	fs.BoolVar(&e.verbose, "v", false, "Log HTTP requests.")
}

func (e *engine) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	model, err := clarifai.ParseModelURL(e.model)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
	}
	prompt := strings.TrimSpace(strings.Join(env.Args, " "))
	if prompt == "" {
		prompt = defaultPrompt
	}

	if e.clarifai == nil {
		pat := env.Getenv("CLARIFAI_PAT")
		if pat == "" {
			return errors.New("missing environment variable CLARIFAI_PAT")
		}
		e.clarifai = &clarifai.Client{PAT: pat}
		if e.verbose {
			e.clarifai.HTTPClient = httplogger.Client(env.Logf)
		}
	}

	answer, err := e.clarifai.PredictText(ctx, model, prompt)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, answer)
	return nil
}
