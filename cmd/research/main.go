// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"go.astrophena.name/aidemos/internal/api/clarifai"
	"go.astrophena.name/aidemos/internal/api/openai"
	"go.astrophena.name/aidemos/internal/atomicio"
	"go.astrophena.name/aidemos/internal/cli"
	"go.astrophena.name/aidemos/internal/httplogger"
)

const defaultModel = "openai/deepseek-ai/deepseek-chat/models/DeepSeek-R1-Distill-Qwen-7B"

func main() { cli.Main(new(engine)) }

type engine struct {
	model   string
	verbose bool

	// set in tests
	openai *openai.Client
	now    func() time.Time
}

func (e *engine) Flags(fs *flag.FlagSet) {
	fs.StringVar(&e.model, "model", defaultModel, "Model `name` to research with.")
	fs.BoolVar(&e.verbose, "v", false, "Log HTTP requests.")
}

func (e *engine) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) > 0 {
		return fmt.Errorf("%w: research takes no arguments", cli.ErrInvalidArgs)
	}
	if e.openai == nil {
		pat := env.Getenv("CLARIFAI_PAT")
		if pat == "" {
			return errors.New("missing environment variable CLARIFAI_PAT")
		}
		e.openai = &openai.Client{BaseURL: clarifai.OpenAIBaseURL, APIKey: pat}
		if e.verbose {
			e.openai.HTTPClient = httplogger.Client(env.Logf)
		}
	}
	if e.now == nil {
		e.now = time.Now
	}

	fmt.Fprint(env.Stdout, "=== Welcome to the Research Assistant ===\n\n")
	in := bufio.NewScanner(env.Stdin)
	for {
		fmt.Fprint(env.Stdout, "Enter a research topic (or 'exit' to quit): ")
		if !in.Scan() {
			fmt.Fprintln(env.Stdout)
			break
		}
		topic := strings.TrimSpace(in.Text())
		switch strings.ToLower(topic) {
		case "exit", "quit", "q":
			fmt.Fprintln(env.Stdout, "Goodbye! Thanks for using the Research Assistant.")
			return nil
		case "":
			fmt.Fprintln(env.Stdout, "Please enter a valid topic.")
			continue
		}

		fmt.Fprintf(env.Stdout, "\nResearching '%s'...\nThis may take a moment, please wait...\n\n", topic)
		file, err := e.research(ctx, env, topic)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(env.Stdout, "Oops! Something went wrong during the research: %v\n\n", err)
			continue
		}
		fmt.Fprintf(env.Stdout, "\nReport saved to: %s\n\n", file)
	}
	return in.Err()
}

func (e *engine) research(ctx context.Context, env *cli.Env, topic string) (file string, err error) {
	resp, err := e.openai.ChatCompletion(ctx, openai.ChatRequest{
		Model:    e.model,
		Messages: researchMessages(topic),
	})
	if err != nil {
		return "", err
	}
	text, err := resp.Text()
	if err != nil {
		return "", err
	}
	report := cleanReport(text)
	if report == "" {
		return "", errors.New("the model returned an empty report")
	}

	fmt.Fprintf(env.Stdout, "Research Completed!\n\n%s\n", report)

	now := e.now()
	file = reportFileName(topic, now)
	if err := atomicio.WriteFile(file, []byte(formatReport(topic, report, now)), 0o644); err != nil {
		return "", err
	}
	return file, nil
}
