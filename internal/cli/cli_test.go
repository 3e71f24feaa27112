// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"testing"

	"go.astrophena.name/aidemos/internal/testutil"
)

type testApp struct {
	name string
	args []string
}

func (a *testApp) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.name, "name", "world", "Who to greet.")
}

func (a *testApp) Run(ctx context.Context) error {
	env := GetEnv(ctx)
	a.args = env.Args
	if len(env.Args) > 1 {
		return fmt.Errorf("%w: too many arguments", ErrInvalidArgs)
	}
	fmt.Fprintf(env.Stdout, "hello, %s\n", a.name)
	return nil
}

func run(t *testing.T, app App, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outb, errb strings.Builder
	err = Run(WithEnv(context.Background(), &Env{
		Args:   args,
		Getenv: func(string) string { return "" },
		Stdin:  strings.NewReader(""),
		Stdout: &outb,
		Stderr: &errb,
	}), app)
	return outb.String(), errb.String(), err
}

func TestRun(t *testing.T) {
	app := new(testApp)
	stdout, _, err := run(t, app, "-name", "gopher", "extra")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, stdout, "hello, gopher\n")
	testutil.AssertEqual(t, app.args, []string{"extra"})
}

func TestRunInvalidArgs(t *testing.T) {
	_, _, err := run(t, new(testApp), "a", "b")
	if !errors.Is(err, ErrInvalidArgs) {
		t.Fatalf("want ErrInvalidArgs, got %v", err)
	}
	if !isPrintableError(err) {
		t.Error("invalid arguments error must be printed")
	}
}

func TestRunUnknownFlag(t *testing.T) {
	_, stderr, err := run(t, new(testApp), "-bogus")
	if err == nil {
		t.Fatal("want error")
	}
	if isPrintableError(err) {
		t.Error("flag errors are already printed by the flag package")
	}
	if !strings.Contains(stderr, "Available flags:") || !strings.Contains(stderr, "-name") {
		t.Errorf("usage must be printed, got %q", stderr)
	}
}

func TestRunHelp(t *testing.T) {
	_, _, err := run(t, new(testApp), "-help")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
	if isPrintableError(err) {
		t.Error("help must not be printed as an error")
	}
}

func TestRunVersion(t *testing.T) {
	app := AppFunc(func(context.Context) error {
		t.Fatal("app must not run")
		return nil
	})
	_, stderr, err := run(t, app, "-version")
	if !errors.Is(err, ErrExitVersion) {
		t.Fatalf("want ErrExitVersion, got %v", err)
	}
	if isPrintableError(err) {
		t.Error("version exit must not be printed as an error")
	}
	if stderr == "" {
		t.Error("version must be printed")
	}
}

func TestEnvLogf(t *testing.T) {
	var stderr strings.Builder
	env := &Env{Stderr: &stderr}
	env.Logf("fetching %d templates", 10)
	env.Logf("done")
	testutil.AssertEqual(t, stderr.String(), "fetching 10 templates\ndone\n")
}

func TestGetEnvDefault(t *testing.T) {
	env := GetEnv(context.Background())
	if env.Getenv == nil || env.Stdout == nil {
		t.Fatal("default environment must be the operating system one")
	}
}

func TestParseDocComment(t *testing.T) {
	old := docSrc
	t.Cleanup(func() { docSrc = old })

	SetDocComment([]byte(`// Header.

/*
Memegen makes memes.

# Usage

	$ memegen
*/
package main

/*
Ignored.
*/
`))
	testutil.AssertEqual(t, parseDocComment(), "Memegen makes memes.\n\n# Usage\n\n\t$ memegen\n")
}
