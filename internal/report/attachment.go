// Package report turns a command result into the Slack attachment block.
package report

import (
	"fmt"
	"strconv"

	"github.com/CodexForgeBR/slack-notify/internal/command"
	"github.com/CodexForgeBR/slack-notify/internal/markup"
)

// Attachment colors Slack renders as a sidebar next to the report.
const (
	ColorGood   = "good"
	ColorDanger = "danger"
)

// Field is one titled entry in an attachment.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short,omitempty"`
}

// Attachment is the structured report block for one executed command.
// Built once, never mutated after construction.
type Attachment struct {
	Color    string   `json:"color"`
	Fallback string   `json:"fallback"`
	MrkdwnIn []string `json:"mrkdwn_in"`
	Fields   []Field  `json:"fields"`
}

// Build renders the result of running plainCommand.
//
// Success and failure share the command and execution time fields. A
// non-zero exit adds the exit code and the captured stderr; stdout is
// dropped on failure to stay wire-compatible with existing consumers.
// The "Succeded" spelling in the fallback is preserved for the same
// reason.
func Build(result *command.Result, plainCommand string) *Attachment {
	att := &Attachment{
		Color:    ColorGood,
		MrkdwnIn: []string{"pretext", "text", "fields"},
		Fields: []Field{
			{Title: "command", Value: markup.Escape(markup.InlineCode(plainCommand)), Short: true},
			{Title: "execution time", Value: command.FormatDelta(result.Duration), Short: true},
		},
	}

	if result.ExitCode != 0 {
		att.Color = ColorDanger
		att.Fallback = markup.Escape(fmt.Sprintf("[exit code: %d] Failed to execute: %s", result.ExitCode, plainCommand))
		att.Fields = append(att.Fields,
			Field{Title: "exit code", Value: strconv.Itoa(result.ExitCode), Short: true},
			Field{Title: "stderr", Value: outputField(result.Stderr)},
		)
		return att
	}

	att.Fallback = markup.Escape("Succeded to execute: " + plainCommand)
	att.Fields = append(att.Fields, Field{Title: "stdout", Value: outputField(result.Stdout)})
	return att
}

// outputField wraps stream content in a code block, or marks the absence
// of output.
func outputField(s string) string {
	if s == "" {
		return markup.Escape("_no output_")
	}
	return markup.Escape(markup.CodeBlock(s))
}
