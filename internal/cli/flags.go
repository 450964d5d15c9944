// Package cli provides flag binding and help text for the slack-notify CLI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/slack-notify/internal/config"
)

// BindFlags registers all CLI flags on the given cobra command. The flags
// directly modify fields in the provided config pointer, whose current
// values become the flag defaults. Bind after config.LoadEnv so the
// precedence chain defaults < env < flags holds without extra plumbing.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Message addressing.
	flags.StringSliceVarP(&cfg.Channels, "channel", "c", cfg.Channels, "Target #channel or @user; repeatable or comma-separated")
	flags.StringVarP(&cfg.Username, "username", "u", cfg.Username, "The name of your bot")
	flags.StringVarP(&cfg.IconEmoji, "icon-emoji", "i", cfg.IconEmoji, "The icon of your bot")

	// Message content.
	flags.StringVarP(&cfg.Text, "text", "t", cfg.Text, "The message to send")
	flags.StringVarP(&cfg.File, "file", "f", "", "Post the content of a text file; use - for stdin")

	// Delivery.
	flags.StringVarP(&cfg.WebhookURL, "webhook-url", "w", cfg.WebhookURL, "The Slack incoming-webhook URL to post to")

	// Command execution.
	flags.Int64VarP(&cfg.OutputSize, "size", "s", cfg.OutputSize, "Truncate command output past this size (in bytes)")
	flags.BoolVarP(&cfg.NoTruncate, "no-size", "S", cfg.NoTruncate, "Don't truncate command output (overrides --size)")
	flags.StringVarP(&cfg.Encoding, "encoding", "e", cfg.Encoding, "Text encoding of the command output")
	flags.BoolVar(&cfg.NoShell, "no-shell", false, "Run the command directly instead of through /bin/sh -c")

	// Runtime flags.
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Print debug output")
}
