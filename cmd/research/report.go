// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"go.astrophena.name/aidemos/internal/api/openai"
)

const analystPersona = `You are a Senior Research Analyst.
Your goal: uncover cutting-edge developments and facts on a given topic.
You are a meticulous and insightful research analyst at a tech think tank.
You specialize in identifying trends, gathering verified information,
and presenting concise insights.`

func researchMessages(topic string) []openai.Message {
	task := fmt.Sprintf(`Conduct a comprehensive analysis of '%s'.
Identify key trends, breakthrough technologies, important figures, and potential industry impacts.
Focus on factual and verifiable information.

Expected output: A detailed analysis report in bullet points, including sources if possible.`, topic)
	return []openai.Message{
		{Role: openai.RoleSystem, Content: analystPersona},
		{Role: openai.RoleUser, Content: task},
	}
}

// reasoning matches the thinking block reasoning models put before the
// answer.
var reasoning = regexp.MustCompile(`(?s)^\s*<think>.*?</think>`)

func cleanReport(s string) string {
	return strings.TrimSpace(reasoning.ReplaceAllString(s, ""))
}

// safeTopic replaces everything but letters and digits with underscores.
func safeTopic(topic string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, topic))
}

func reportFileName(topic string, t time.Time) string {
	return "research_report_" + safeTopic(topic) + "_" + t.Format("20060102_150405") + ".txt"
}

func formatReport(topic, report string, t time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Research Report on: %s\n", topic)
	fmt.Fprintf(&sb, "Generated on: %s\n", t.Format(time.DateTime))
	sb.WriteString(strings.Repeat("=", 40) + "\n\n")
	sb.WriteString(report)
	return sb.String()
}
