// Package config defines the slack-notify configuration model and
// default values.
//
// Configuration is assembled with a strict precedence chain: built-in
// defaults < .env file < process environment < explicit CLI flags. The
// core packages never read ambient environment state; everything is
// resolved here, once, at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvVars lists every environment variable consulted during resolution.
var EnvVars = [8]string{
	"SLACK_CHANNEL",
	"SLACK_USERNAME",
	"SLACK_ICON",
	"SLACK_TEXT",
	"SLACK_WEBHOOK_URL",
	"SLACK_OUTPUT_SIZE",
	"SLACK_OUTPUT_NO_SIZE",
	"SLACK_ENCODING",
}

// ErrNoWebhookURL is the pre-flight configuration error for a run with no
// webhook URL resolved from any source.
var ErrNoWebhookURL = errors.New("no webhook URL: set $SLACK_WEBHOOK_URL or pass --webhook-url")

// Config holds every configuration field for the slack-notify CLI.
type Config struct {
	// Message addressing.
	Channels  []string
	Username  string
	IconEmoji string

	// Message content.
	Text string
	File string

	// Delivery.
	WebhookURL string

	// Command execution.
	OutputSize int64
	NoTruncate bool
	Encoding   string
	NoShell    bool

	// Runtime flags.
	Verbose bool
}

// NewDefaultConfig returns a Config populated with all built-in default
// values. The username defaults to user@host of the invoking machine.
func NewDefaultConfig() *Config {
	return &Config{
		Channels:   []string{"#general"},
		Username:   defaultUsername(),
		IconEmoji:  ":robot_face:",
		OutputSize: 1024,
		Encoding:   "utf-8",
	}
}

// LoadEnv layers .env and process environment values onto cfg. A missing
// .env file is not an error. Unparseable numeric values are ignored and
// the previous value preserved.
func LoadEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SLACK_CHANNEL"); v != "" {
		cfg.Channels = SplitChannels(v)
	}
	if v := os.Getenv("SLACK_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("SLACK_ICON"); v != "" {
		cfg.IconEmoji = v
	}
	if v := os.Getenv("SLACK_TEXT"); v != "" {
		cfg.Text = v
	}
	if v := os.Getenv("SLACK_WEBHOOK_URL"); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv("SLACK_OUTPUT_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.OutputSize = n
		}
	}
	if v := os.Getenv("SLACK_OUTPUT_NO_SIZE"); v != "" {
		cfg.NoTruncate = parseBool(v)
	}
	if v := os.Getenv("SLACK_ENCODING"); v != "" {
		cfg.Encoding = v
	}
}

// Validate checks the resolved configuration before any work happens.
// A missing webhook URL is fatal pre-flight; nothing touches the network
// after a validation failure.
func (c *Config) Validate() error {
	if c.WebhookURL == "" {
		return ErrNoWebhookURL
	}
	if len(c.Channels) == 0 {
		return fmt.Errorf("no channel: pass --channel or set $SLACK_CHANNEL")
	}
	if !c.NoTruncate && c.OutputSize < 0 {
		return fmt.Errorf("output size must be >= 0, got %d", c.OutputSize)
	}
	return nil
}

// SplitChannels parses a comma-separated channel list, trimming
// whitespace and dropping empty entries.
func SplitChannels(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// defaultUsername mirrors the user@host convention for the bot name.
func defaultUsername() string {
	name := "unknown"
	if u, err := user.Current(); err == nil && u.Username != "" {
		name = u.Username
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	return name + "@" + host
}

// parseBool interprets common boolean representations.
// "true", "1", "yes" (case-insensitive) return true; everything else returns false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
