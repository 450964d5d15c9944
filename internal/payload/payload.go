// Package payload assembles the Slack webhook message envelope.
package payload

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CodexForgeBR/slack-notify/internal/command"
	"github.com/CodexForgeBR/slack-notify/internal/markup"
	"github.com/CodexForgeBR/slack-notify/internal/quote"
	"github.com/CodexForgeBR/slack-notify/internal/report"
)

// StdinMarker requests reading the message body from standard input.
const StdinMarker = "-"

// Payload is the top-level webhook message. Created fresh per invocation
// and immutable after Build.
type Payload struct {
	Channel     string               `json:"channel"`
	Username    string               `json:"username"`
	Text        string               `json:"text"`
	IconEmoji   string               `json:"icon_emoji"`
	Attachments []*report.Attachment `json:"attachments,omitempty"`
}

// Options name the inputs for one message.
type Options struct {
	Text      string
	File      string // path to read, or StdinMarker for stdin
	Channel   string
	Command   []string
	Username  string
	IconEmoji string
}

// Builder assembles payloads. Runner executes the optional command,
// Quotes supplies the filler phrase, Stdin backs the "-" file marker.
type Builder struct {
	Runner *command.Runner
	Quotes quote.Provider
	Stdin  io.Reader
}

// Build assembles one payload. The only I/O it performs is the optional
// file/stdin read and the command execution.
//
// Text assembly: the literal text first, then the file or stdin dump as a
// code block; empty entries are dropped and survivors joined with a
// newline. When nothing remains and no command was requested, a filler
// phrase takes the text's place so the message is never empty.
func (b *Builder) Build(ctx context.Context, opts Options) (*Payload, error) {
	parts := make([]string, 0, 2)
	if opts.Text != "" {
		parts = append(parts, opts.Text)
	}

	if opts.File != "" {
		content, err := b.readSource(opts.File)
		if err != nil {
			return nil, err
		}
		parts = append(parts, markup.CodeBlock(content))
	}

	if len(parts) == 0 && len(opts.Command) == 0 {
		parts = append(parts, b.Quotes.Quote(ctx))
	}

	p := &Payload{
		Channel:   NormalizeChannel(opts.Channel),
		Username:  opts.Username,
		Text:      markup.Escape(strings.Join(parts, "\n")),
		IconEmoji: opts.IconEmoji,
	}

	if len(opts.Command) > 0 {
		result, err := b.Runner.Run(ctx, opts.Command)
		if err != nil {
			return nil, err
		}
		p.Attachments = []*report.Attachment{
			report.Build(result, strings.Join(opts.Command, " ")),
		}
	}

	return p, nil
}

// readSource reads the whole file, or stdin for the "-" marker.
func (b *Builder) readSource(file string) (string, error) {
	if file == StdinMarker {
		data, err := io.ReadAll(b.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return string(data), nil
}

// ForChannel returns a copy of the payload addressed to another channel.
// Attachments are shared between copies; they are immutable after Build.
func (p *Payload) ForChannel(channel string) *Payload {
	clone := *p
	clone.Channel = NormalizeChannel(channel)
	return &clone
}

// NormalizeChannel ensures the channel addresses a #channel or a @user by
// prepending # when neither prefix is present.
func NormalizeChannel(channel string) string {
	if channel == "" || (channel[0] != '#' && channel[0] != '@') {
		return "#" + channel
	}
	return channel
}
