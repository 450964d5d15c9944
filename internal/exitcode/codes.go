// Package exitcode defines named exit codes for the slack-notify CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and cron wrappers.
package exitcode

import (
	"errors"

	"github.com/CodexForgeBR/slack-notify/internal/capture"
	"github.com/CodexForgeBR/slack-notify/internal/command"
	"github.com/CodexForgeBR/slack-notify/internal/config"
	"github.com/CodexForgeBR/slack-notify/internal/webhook"
)

// Exit code constants. A non-zero exit status of the notified command is
// not a failure of slack-notify; the run still exits with Success once
// the report is delivered.
const (
	Success  = 0 // Notification delivered
	Error    = 1 // Invalid arguments or missing webhook URL
	Spawn    = 2 // Command could not be started
	Decode   = 3 // Command output not valid under the selected encoding
	Delivery = 4 // Webhook POST failed
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case Spawn:
		return "Spawn"
	case Decode:
		return "Decode"
	case Delivery:
		return "Delivery"
	default:
		return "unknown"
	}
}

// FromError maps an error from the run to its exit code.
func FromError(err error) int {
	var (
		spawnErr    *command.SpawnError
		decodeErr   *capture.DecodeError
		deliveryErr *webhook.DeliveryError
	)

	switch {
	case err == nil:
		return Success
	case errors.As(err, &spawnErr):
		return Spawn
	case errors.As(err, &decodeErr):
		return Decode
	case errors.As(err, &deliveryErr):
		return Delivery
	case errors.Is(err, config.ErrNoWebhookURL):
		return Error
	default:
		return Error
	}
}
