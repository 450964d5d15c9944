// Package quote supplies the filler phrase used when a notification has
// neither text nor a command.
package quote

import (
	"context"
	"os/exec"
)

// Fallback is the phrase used when no external quote source is available.
const Fallback = "I love cats!"

// Provider yields one filler phrase. Implementations must not fail: when
// the underlying source is unavailable they return Fallback.
type Provider interface {
	Quote(ctx context.Context) string
}

// StaticProvider always returns the same phrase.
type StaticProvider struct {
	Text string
}

func (p StaticProvider) Quote(context.Context) string { return p.Text }

// FortuneProvider shells out to fortune(1) for a phrase.
type FortuneProvider struct{}

func (FortuneProvider) Quote(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, "fortune").Output()
	if err != nil {
		return Fallback
	}
	return string(out)
}

// Default probes PATH for fortune and selects the matching provider.
func Default() Provider {
	if _, err := exec.LookPath("fortune"); err == nil {
		return FortuneProvider{}
	}
	return StaticProvider{Text: Fallback}
}
