// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package textwrap implements greedy word wrapping by character count.
package textwrap

import "strings"

// Wrap splits s into lines of at most width characters (runes), breaking at
// whitespace. Runs of whitespace collapse into a single space and leading or
// trailing whitespace is dropped.
//
// A word longer than width is broken: its head fills the space left on the
// current line and the rest continues on the following lines.
//
// Wrap of an empty or blank string returns no lines. A width below 1 is
// treated as 1.
func Wrap(s string, width int) []string {
	width = max(width, 1)

	var (
		lines []string
		cur   []rune
	)
	flush := func() {
		lines = append(lines, string(cur))
		cur = nil
	}

	for _, w := range strings.Fields(s) {
		word := []rune(w)
		for len(word) > 0 {
			sep := 0
			if len(cur) > 0 {
				sep = 1
			}

			if len(cur)+sep+len(word) <= width {
				if sep > 0 {
					cur = append(cur, ' ')
				}
				cur = append(cur, word...)
				break
			}

			if len(word) > width {
				if space := width - len(cur) - sep; space > 0 {
					if sep > 0 {
						cur = append(cur, ' ')
					}
					cur = append(cur, word[:space]...)
					word = word[space:]
				}
			}
			flush()
		}
	}
	if len(cur) > 0 {
		flush()
	}

	return lines
}
