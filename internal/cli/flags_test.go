package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/slack-notify/internal/config"
)

func TestBindFlags_DefaultValues(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)

	err := cmd.ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, []string{"#general"}, cfg.Channels)
	assert.Equal(t, ":robot_face:", cfg.IconEmoji)
	assert.Equal(t, int64(1024), cfg.OutputSize)
	assert.Equal(t, "utf-8", cfg.Encoding)
	assert.False(t, cfg.NoTruncate)
	assert.False(t, cfg.NoShell)
	assert.False(t, cfg.Verbose)
}

func TestBindFlags_EnvValuesSurviveUnsetFlags(t *testing.T) {
	// Values already resolved from the environment become flag defaults
	// and must survive a parse that doesn't mention them.
	cfg := config.NewDefaultConfig()
	cfg.WebhookURL = "https://hooks.slack.com/services/env"
	cfg.Username = "env-bot"

	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)

	err := cmd.ParseFlags([]string{"--text", "hi"})
	require.NoError(t, err)

	assert.Equal(t, "https://hooks.slack.com/services/env", cfg.WebhookURL)
	assert.Equal(t, "env-bot", cfg.Username)
	assert.Equal(t, "hi", cfg.Text)
}

func TestBindFlags_ParseAll(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)

	err := cmd.ParseFlags([]string{
		"-c", "dev,@simon",
		"-u", "deploy-bot",
		"-i", ":rocket:",
		"-t", "done",
		"-f", "-",
		"-w", "https://hooks.slack.com/services/y",
		"-s", "99",
		"-S",
		"-e", "ISO-8859-1",
		"--no-shell",
		"-v",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"dev", "@simon"}, cfg.Channels)
	assert.Equal(t, "deploy-bot", cfg.Username)
	assert.Equal(t, ":rocket:", cfg.IconEmoji)
	assert.Equal(t, "done", cfg.Text)
	assert.Equal(t, "-", cfg.File)
	assert.Equal(t, "https://hooks.slack.com/services/y", cfg.WebhookURL)
	assert.Equal(t, int64(99), cfg.OutputSize)
	assert.True(t, cfg.NoTruncate)
	assert.Equal(t, "ISO-8859-1", cfg.Encoding)
	assert.True(t, cfg.NoShell)
	assert.True(t, cfg.Verbose)
}

func TestBindFlags_RepeatableChannel(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)

	err := cmd.ParseFlags([]string{"-c", "dev", "-c", "@simon"})
	require.NoError(t, err)

	assert.Equal(t, []string{"dev", "@simon"}, cfg.Channels)
}
