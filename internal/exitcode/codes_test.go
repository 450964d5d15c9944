package exitcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/slack-notify/internal/capture"
	"github.com/CodexForgeBR/slack-notify/internal/command"
	"github.com/CodexForgeBR/slack-notify/internal/config"
	"github.com/CodexForgeBR/slack-notify/internal/exitcode"
	"github.com/CodexForgeBR/slack-notify/internal/webhook"
)

func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", exitcode.Success, 0},
		{"Error", exitcode.Error, 1},
		{"Spawn", exitcode.Spawn, 2},
		{"Decode", exitcode.Decode, 3},
		{"Delivery", exitcode.Delivery, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code)
		})
	}
}

func TestExitCodeNames(t *testing.T) {
	tests := []struct {
		code         int
		expectedName string
	}{
		{exitcode.Success, "Success"},
		{exitcode.Error, "Error"},
		{exitcode.Spawn, "Spawn"},
		{exitcode.Decode, "Decode"},
		{exitcode.Delivery, "Delivery"},
		{99, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedName, func(t *testing.T) {
			assert.Equal(t, tt.expectedName, exitcode.Name(tt.code))
		})
	}
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, exitcode.Success},
		{"spawn", &command.SpawnError{Command: "x", Err: errors.New("not found")}, exitcode.Spawn},
		{"decode", &capture.DecodeError{Encoding: "utf-8"}, exitcode.Decode},
		{"delivery", &webhook.DeliveryError{URL: "http://x", StatusCode: 500}, exitcode.Delivery},
		{"config", config.ErrNoWebhookURL, exitcode.Error},
		{"wrapped config", fmt.Errorf("pre-flight: %w", config.ErrNoWebhookURL), exitcode.Error},
		{"wrapped spawn", fmt.Errorf("build payload: %w", &command.SpawnError{Command: "x"}), exitcode.Spawn},
		{"generic", errors.New("boom"), exitcode.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitcode.FromError(tt.err))
		})
	}
}
