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
	"strings"

	"go.astrophena.name/aidemos/internal/api/gemini"
	"go.astrophena.name/aidemos/internal/cli"
)

func main() { cli.Main(new(engine)) }

type engine struct {
	list  bool
	model string

	// start is set in tests.
	start startFunc
}

func (e *engine) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&e.list, "list", false, "List available characters and exit.")
	fs.StringVar(&e.model, "model", "", "Gemini `model` to chat with.")
}

func (e *engine) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if e.list {
		for _, name := range characterNames() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	if len(env.Args) != 1 {
		return fmt.Errorf("%w: expected one argument: 'character' (one of %s)", cli.ErrInvalidArgs, strings.Join(characterNames(), ", "))
	}
	name, char, ok := lookupCharacter(env.Args[0])
	if !ok {
		return fmt.Errorf("%w: unknown character %q, see -list", cli.ErrInvalidArgs, env.Args[0])
	}

	if e.start == nil {
		key := env.Getenv("GEMINI_API_KEY")
		if key == "" {
			return errors.New("missing environment variable GEMINI_API_KEY")
		}
		chat, err := newGeminiChat(ctx, key, cmp.Or(e.model, env.Getenv("GEMINI_MODEL"), gemini.DefaultModel))
		if err != nil {
			return err
		}
		defer chat.Close()
		e.start = chat.start
	}

	sess, err := e.start(ctx, char.persona)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Conversation with %s\n\n%s: %s\n", name, name, char.greeting)

	in := bufio.NewScanner(env.Stdin)
	for {
		fmt.Fprint(env.Stdout, "> ")
		if !in.Scan() {
			fmt.Fprintln(env.Stdout)
			break
		}
		msg := strings.TrimSpace(in.Text())
		switch msg {
		case "":
			continue
		case "/quit":
			return nil
		case "/new":
			if sess, err = e.start(ctx, char.persona); err != nil {
				return err
			}
			fmt.Fprintf(env.Stdout, "New chat started with %s!\n\n%s: %s\n", name, name, char.greeting)
			continue
		}

		reply, err := sess.Send(ctx, msg)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(env.Stdout, "An error occurred: %v\n", err)
			continue
		}
		fmt.Fprintf(env.Stdout, "%s: %s\n", name, strings.TrimSpace(reply))
	}
	return in.Err()
}
