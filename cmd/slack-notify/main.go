package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/slack-notify/internal/capture"
	"github.com/CodexForgeBR/slack-notify/internal/cli"
	"github.com/CodexForgeBR/slack-notify/internal/command"
	"github.com/CodexForgeBR/slack-notify/internal/config"
	"github.com/CodexForgeBR/slack-notify/internal/exitcode"
	"github.com/CodexForgeBR/slack-notify/internal/logging"
	"github.com/CodexForgeBR/slack-notify/internal/payload"
	"github.com/CodexForgeBR/slack-notify/internal/quote"
	"github.com/CodexForgeBR/slack-notify/internal/webhook"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cfg := config.NewDefaultConfig()
	config.LoadEnv(cfg)

	rootCmd := &cobra.Command{
		Use:     "slack-notify [flags] [command...]",
		Short:   "Post a message or a command execution report to Slack",
		Long:    "slack-notify posts a message to a Slack incoming webhook, optionally running a command and attaching its exit status, captured output and execution time.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.BindFlags(rootCmd, cfg)
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logging.Error(err.Error())
		if errors.Is(err, config.ErrNoWebhookURL) {
			fmt.Fprint(os.Stderr, rootCmd.UsageString())
		}
		os.Exit(exitcode.FromError(err))
	}
}

// run builds the payload and posts it to every configured channel.
// Trailing args form the command to execute; the command runs once and
// the resulting report is fanned out.
func run(cfg *config.Config, args []string) error {
	logging.SetVerbose(cfg.Verbose)

	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	limit := cfg.OutputSize
	if cfg.NoTruncate {
		limit = capture.NoLimit
	}

	builder := &payload.Builder{
		Runner: &command.Runner{
			Shell:       !cfg.NoShell,
			OutputLimit: limit,
			Encoding:    cfg.Encoding,
		},
		Quotes: quote.Default(),
		Stdin:  os.Stdin,
	}

	if len(args) > 0 {
		logging.Debug("running command: " + strings.Join(args, " "))
	}

	p, err := builder.Build(ctx, payload.Options{
		Text:      cfg.Text,
		File:      cfg.File,
		Channel:   cfg.Channels[0],
		Command:   args,
		Username:  cfg.Username,
		IconEmoji: cfg.IconEmoji,
	})
	if err != nil {
		return err
	}

	client := webhook.New()
	for _, ch := range cfg.Channels {
		if err := client.Post(ctx, cfg.WebhookURL, p.ForChannel(ch)); err != nil {
			return err
		}
		logging.Debug("posted to " + payload.NormalizeChannel(ch))
	}

	logging.Success(fmt.Sprintf("notification sent to %d channel(s)", len(cfg.Channels)))
	return nil
}
