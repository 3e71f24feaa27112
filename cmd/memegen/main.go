// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.astrophena.name/aidemos/internal/api/gemini"
	"go.astrophena.name/aidemos/internal/api/imgflip"
	"go.astrophena.name/aidemos/internal/cli"
	"go.astrophena.name/aidemos/internal/httplogger"
	"go.astrophena.name/aidemos/internal/meme"
	"go.astrophena.name/aidemos/internal/request"
)

// maxChoices is how many templates are offered.
const maxChoices = 10

var (
	errNoCaption   = errors.New("could not generate a meme caption")
	errNoTemplates = errors.New("could not fetch meme templates")
	errCreate      = errors.New("could not create meme")
)

func main() { cli.Main(new(engine)) }

type engine struct {
	// configuration
	model    string
	fontPath string
	fontSize int
	verbose  bool

	// clients, set in tests
	gemini  *gemini.Client
	imgflip *imgflip.Client
	httpc   *http.Client
}

func (e *engine) Flags(fs *flag.FlagSet) {
	fs.StringVar(&e.model, "model", "", "Gemini `model` used to generate the caption.")
	fs.StringVar(&e.fontPath, "font", "", "Path to the caption `font`.")
	fs.IntVar(&e.fontSize, "font-size", meme.DefaultFontSize, "Caption font `size` in points.")
	fs.BoolVar(&e.verbose, "v", false, "Log HTTP requests.")
}

func (e *engine) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) > 0 {
		return fmt.Errorf("%w: memegen takes no arguments", cli.ErrInvalidArgs)
	}
	if e.fontSize <= 0 {
		return fmt.Errorf("%w: font size must be positive", cli.ErrInvalidArgs)
	}

	if e.verbose && e.httpc == nil {
		e.httpc = httplogger.Client(env.Logf)
	}
	if e.gemini == nil {
		key := env.Getenv("GEMINI_API_KEY")
		if key == "" {
			return errors.New("missing environment variable GEMINI_API_KEY")
		}
		e.gemini = &gemini.Client{APIKey: key, HTTPClient: e.httpc}
	}
	e.gemini.Model = cmp.Or(e.model, env.Getenv("GEMINI_MODEL"), gemini.DefaultModel)
	e.fontPath = cmp.Or(e.fontPath, env.Getenv("MEME_FONT"), meme.DefaultFontPath)
	if e.imgflip == nil {
		e.imgflip = &imgflip.Client{HTTPClient: e.httpc}
	}

	in := bufio.NewScanner(env.Stdin)

	topic := ask(in, env.Stdout, "Enter a topic for your meme: ")
	if topic == "" {
		return fmt.Errorf("%w: topic is required", cli.ErrInvalidArgs)
	}

	fmt.Fprintln(env.Stdout, "Generating a witty caption for your meme...")
	caption, err := e.gemini.Generate(ctx, captionPrompt(topic))
	if err != nil {
		return fmt.Errorf("%w: %w", errNoCaption, err)
	}
	top, bottom := meme.SplitCaption(caption)
	if top == "" && bottom == "" {
		return errNoCaption
	}
	fmt.Fprintf(env.Stdout, "\nGenerated Caption:\nTop: %s\nBottom: %s\n\n", top, bottom)

	fmt.Fprintln(env.Stdout, "Fetching popular meme templates...")
	templates, err := e.imgflip.Templates(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errNoTemplates, err)
	}
	if len(templates) == 0 {
		return errNoTemplates
	}
	templates = templates[:min(len(templates), maxChoices)]

	fmt.Fprintln(env.Stdout, "Please choose a meme template by entering its number:")
	for i, t := range templates {
		fmt.Fprintf(env.Stdout, "%d. %s\n", i+1, t.Name)
	}
	choice, err := strconv.Atoi(ask(in, env.Stdout, fmt.Sprintf("Enter your choice (1-%d): ", len(templates))))
	if err != nil {
		fmt.Fprintln(env.Stdout, "Invalid input. Please enter a number.")
		return nil
	}
	if choice < 1 || choice > len(templates) {
		fmt.Fprintln(env.Stdout, "Invalid choice.")
		return nil
	}
	t := templates[choice-1]

	fmt.Fprintf(env.Stdout, "Creating your meme with the '%s' template...\n", t.Name)
	if err := e.create(ctx, env.Logf, t.URL, top, bottom); err != nil {
		return fmt.Errorf("%w: %w", errCreate, err)
	}
	fmt.Fprintf(env.Stdout, "\nMeme created successfully as %s!\n", meme.OutputFile)
	return nil
}

func (e *engine) create(ctx context.Context, logf func(string, ...any), imageURL, top, bottom string) error {
	img, err := request.Get(ctx, request.Params{URL: imageURL, HTTPClient: e.httpc})
	if err != nil {
		return err
	}
	out, err := meme.Compose(img, meme.Options{
		TopText:    top,
		BottomText: bottom,
		FontPath:   e.fontPath,
		FontSize:   e.fontSize,
		Logf:       logf,
	})
	if err != nil {
		return err
	}
	return meme.Save(out)
}

func captionPrompt(topic string) string {
	return "Generate a short, witty, and humorous meme caption about '" + topic + "' in two parts. " +
		"Just return the top text and bottom text as two lines, without labels like 'Top text' or 'Bottom text'."
}

// ask prints the prompt and returns the next trimmed line of input, or an
// empty string at the end of input.
func ask(in *bufio.Scanner, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	if !in.Scan() {
		fmt.Fprintln(out)
		return ""
	}
	return strings.TrimSpace(in.Text())
}
