// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package textwrap

import (
	"strings"
	"testing"
	"unicode/utf8"

	"go.astrophena.name/aidemos/internal/testutil"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in    string
		width int
		want  []string
	}{
		"empty": {
			in:    "",
			width: 25,
			want:  nil,
		},
		"blank": {
			in:    " \t\n ",
			width: 25,
			want:  nil,
		},
		"fits": {
			in:    "ONE DOES NOT SIMPLY",
			width: 25,
			want:  []string{"ONE DOES NOT SIMPLY"},
		},
		"exactly width": {
			in:    "ABCDE FGHIJ",
			width: 11,
			want:  []string{"ABCDE FGHIJ"},
		},
		"wraps at word boundary": {
			in:    "HELLO WORLD THIS IS A TEST",
			width: 25,
			want:  []string{"HELLO WORLD THIS IS A", "TEST"},
		},
		"collapses whitespace": {
			in:    "  WALK   INTO\tMORDOR\n",
			width: 25,
			want:  []string{"WALK INTO MORDOR"},
		},
		"long word alone": {
			in:    "SUPERCALIFRAGILISTICEXPIALIDOCIOUS",
			width: 10,
			want:  []string{"SUPERCALIF", "RAGILISTIC", "EXPIALIDOC", "IOUS"},
		},
		"long word fills current line": {
			in:    "HI ABCDEFGHIJKL",
			width: 10,
			want:  []string{"HI ABCDEFG", "HIJKL"},
		},
		"long word after full line": {
			in:    "ABCDEFGHI ABCDEFGHIJKL",
			width: 10,
			want:  []string{"ABCDEFGHI", "ABCDEFGHIJ", "KL"},
		},
		"counts runes": {
			in:    "ÜBER ÄRGER ÖL",
			width: 10,
			want:  []string{"ÜBER ÄRGER", "ÖL"},
		},
		"zero width": {
			in:    "AB C",
			width: 0,
			want:  []string{"A", "B", "C"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEqual(t, Wrap(tc.in, tc.width), tc.want)
		})
	}
}

func TestWrapDeterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"hello world this is a test",
		"when the code compiles on the first try and you don't trust it",
		"a b c d e f g h i j k l m n o p q r s t u v w x y z",
		strings.Repeat("meme ", 40),
	}
	const width = 25

	for _, in := range inputs {
		first, second := Wrap(in, width), Wrap(in, width)
		testutil.AssertEqual(t, first, second)
		for _, line := range first {
			if n := utf8.RuneCountInString(line); n > width {
				t.Errorf("line %q has %d characters, want at most %d", line, n, width)
			}
		}
		// Wrapping loses no words.
		testutil.AssertEqual(t, strings.Fields(strings.Join(first, " ")), strings.Fields(in))
	}
}
