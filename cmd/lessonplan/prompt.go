// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	_ "embed"
	"strings"
	"text/template"
)

// lesson describes the lesson to plan.
type lesson struct {
	Topic    string `json:"topic"`
	Grade    string `json:"grade"`
	Duration string `json:"duration"`
	Style    string `json:"style"`
	Notes    string `json:"notes"`
}

var styleEmphasis = map[string]string{
	"Standard":         "Provide a balanced lesson plan suitable for a general classroom setting.",
	"Active Learning":  "Emphasize active student participation, group work, and hands-on activities.",
	"Project-Based":    "Design the lesson around a central project or investigation, with students building or creating something.",
	"Inquiry-Based":    "Focus on student-led questions, exploration, and discovery.",
	"Discussion-Heavy": "Structure the lesson around facilitated discussions and debates.",
}

// emphasis returns the prompt fragment for a learning style. Unknown styles
// get the standard one.
func emphasis(style string) string {
	for name, e := range styleEmphasis {
		if strings.EqualFold(name, style) {
			return e
		}
	}
	return styleEmphasis["Standard"]
}

var (
	//go:embed prompt.tmpl
	promptTmpl string

	promptTemplate = template.Must(template.New("prompt").Funcs(template.FuncMap{
		"emphasis": emphasis,
	}).Parse(promptTmpl))
)

func (l lesson) prompt() (string, error) {
	var sb strings.Builder
	if err := promptTemplate.Execute(&sb, l); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// fileName returns the default output file name for a topic.
func fileName(topic string) string {
	return strings.ToLower(strings.ReplaceAll(topic, " ", "_")) + "_lesson_plan.md"
}
