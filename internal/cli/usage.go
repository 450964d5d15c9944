package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `slack-notify - Post a message or a command execution report to Slack

Useful when you run commands automatically, e.g. from cron, and you need
feedback about the execution. Uses Slack "Incoming Webhooks":
https://api.slack.com/incoming-webhooks

USAGE
  slack-notify [flags] [command...]

  When a trailing command is given it is executed through /bin/sh -c
  (shell metacharacters apply) and the message carries an attachment with
  its exit status, captured output and execution time.

FLAGS
  Message:
    -c, --channel <name>      Target #channel or @user; repeatable or
                              comma-separated (default: $SLACK_CHANNEL or #general)
    -u, --username <name>     The name of your bot (default: $SLACK_USERNAME or user@host)
    -i, --icon-emoji <emoji>  The icon of your bot (default: $SLACK_ICON or :robot_face:)
    -t, --text <text>         The message to send (default: $SLACK_TEXT)
    -f, --file <path>         Post the content of a text file; use - for stdin

  Delivery:
    -w, --webhook-url <url>   The webhook URL to post to (default: $SLACK_WEBHOOK_URL)

  Command execution:
    -s, --size <bytes>        Truncate command output past this size
                              (default: $SLACK_OUTPUT_SIZE or 1024)
    -S, --no-size             Don't truncate command output, overrides --size
                              (default: $SLACK_OUTPUT_NO_SIZE)
    -e, --encoding <name>     Text encoding of the command output
                              (default: $SLACK_ENCODING or utf-8)
        --no-shell            Run the command directly instead of through /bin/sh -c

  Help & Debug:
    -v, --verbose             Print debug output
    -h, --help                Show this help text
        --version             Show version, commit, build date

EXIT CODES
  0   Success       Notification delivered
  1   Error         Invalid arguments or missing webhook URL
  2   Spawn         Command could not be started
  3   Decode        Command output not valid under the selected encoding
  4   Delivery      Webhook POST failed

EXAMPLES
  # Post a plain message
  slack-notify -c '#dev' -t 'deploy finished'

  # Run a backup and report its outcome, truncating output at 2 KiB
  slack-notify -c '#ops' -s 2048 -- tar czf /backups/home.tgz /home

  # Pipe a log excerpt to a direct message
  tail -n 50 /var/log/app.log | slack-notify -c @simon -f -

  # Fan the same report out to several channels
  slack-notify -c '#dev,@simon' -- ./run-tests.sh
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
