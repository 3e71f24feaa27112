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
	"strings"

	"go.astrophena.name/aidemos/internal/api/gemini"
	"go.astrophena.name/aidemos/internal/atomicio"
	"go.astrophena.name/aidemos/internal/cli"
	"go.astrophena.name/aidemos/internal/httplogger"
)

func main() { cli.Main(new(engine)) }

type engine struct {
	lesson  lesson
	model   string
	output  string
	verbose bool

	gemini *gemini.Client // set in tests
}

func (e *engine) Flags(fs *flag.FlagSet) {
	fs.StringVar(&e.lesson.Topic, "topic", "The Solar System", "Lesson `topic`.")
	fs.StringVar(&e.lesson.Grade, "grade", "Kindergarten", "Target grade `level`.")
	fs.StringVar(&e.lesson.Duration, "duration", "50 minutes", "Lesson `duration`.")
	fs.StringVar(&e.lesson.Style, "style", "Standard", "Learning `style` to emphasize.")
	fs.StringVar(&e.lesson.Notes, "notes", "", "Additional `notes` or requirements.")
	fs.StringVar(&e.model, "model", "", "Gemini `model` to use.")
	fs.BoolVar(&e.verbose, "v", false, "Log HTTP requests.")
	fs.StringVar(&e.output, "o", "", "Write the plan to `file` instead of <topic>_lesson_plan.md.")
}

func (e *engine) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) > 0 {
		return fmt.Errorf("%w: lessonplan takes no arguments", cli.ErrInvalidArgs)
	}
	l := e.lesson
	l.Topic, l.Grade, l.Duration = strings.TrimSpace(l.Topic), strings.TrimSpace(l.Grade), strings.TrimSpace(l.Duration)
	if l.Topic == "" || l.Grade == "" || l.Duration == "" {
		return fmt.Errorf("%w: please fill in the topic, grade level, and duration", cli.ErrInvalidArgs)
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

	prompt, err := l.prompt()
	if err != nil {
		return err
	}
	env.Logf("Generating a lesson plan on %q...", l.Topic)
	plan, err := e.gemini.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("generating the lesson plan: %w", err)
	}

	fmt.Fprintln(env.Stdout, plan)
	out := cmp.Or(e.output, fileName(l.Topic))
	if err := atomicio.WriteFile(out, []byte(plan), 0o644); err != nil {
		return err
	}
	env.Logf("Lesson plan saved to %s.", out)
	return nil
}
