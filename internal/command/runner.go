// Package command spawns the notified command and captures its outcome.
package command

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/CodexForgeBR/slack-notify/internal/capture"
)

// SpawnError reports a command that could not be started at all. A spawn
// failure aborts the whole run; it is never reported as a failed-command
// attachment.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Result is the outcome of one command run: exit status, both captured
// streams already decoded and truncated, and wall-clock duration.
// Immutable once produced; consumed once by the report builder.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Runner executes a single command and records both output streams to
// bounded temporary stores.
//
// In shell mode the joined command line is handed to /bin/sh -c, so shell
// metacharacters are significant. The caller fully controls the command
// line; treat it accordingly.
type Runner struct {
	// Shell selects shell interpretation of the command line. When false
	// the argument vector is executed directly.
	Shell bool
	// OutputLimit bounds each captured stream in bytes.
	// capture.NoLimit disables truncation.
	OutputLimit int64
	// Encoding names the text encoding used to decode both streams.
	Encoding string
}

// Run blocks until the command terminates. There is deliberately no
// timeout: a hung child hangs the run, and the process supervisor that
// invoked us is the only recourse.
//
// A non-zero exit status is not an error; it comes back in the Result.
func (r *Runner) Run(ctx context.Context, argv []string) (*Result, error) {
	plain := strings.Join(argv, " ")
	if strings.TrimSpace(plain) == "" {
		return nil, &SpawnError{Command: plain, Err: errors.New("empty command")}
	}

	stdout, err := capture.NewStream("stdout")
	if err != nil {
		return nil, err
	}
	defer stdout.Close()

	stderr, err := capture.NewStream("stderr")
	if err != nil {
		return nil, err
	}
	defer stderr.Close()

	var cmd *exec.Cmd
	if r.Shell {
		cmd = exec.CommandContext(ctx, "/bin/sh", "-c", plain)
	} else {
		cmd = exec.CommandContext(ctx, argv[0], argv[1:]...)
	}
	cmd.Stdout = stdout.File()
	cmd.Stderr = stderr.File()

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Command: plain, Err: err}
	}

	exitCode := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &SpawnError{Command: plain, Err: err}
		}
		exitCode = exitErr.ExitCode()
	}
	elapsed := time.Since(start)

	outData, err := stdout.ReadTruncated(r.OutputLimit, capture.DefaultRelaxPercent, r.Encoding)
	if err != nil {
		return nil, err
	}
	errData, err := stderr.ReadTruncated(r.OutputLimit, capture.DefaultRelaxPercent, r.Encoding)
	if err != nil {
		return nil, err
	}

	return &Result{
		ExitCode: exitCode,
		Stdout:   outData,
		Stderr:   errData,
		Duration: elapsed,
	}, nil
}
