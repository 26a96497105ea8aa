package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func notTTY(c *spinnerConfig) { c.tty = func() bool { return false } }

func TestRunWithSpinner_NoTTYRunsAction(t *testing.T) {
	called := false
	err := RunWithSpinner(context.Background(), func() error {
		called = true
		return nil
	}, WithTitle("Initializing git repository..."), notTTY)

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithSpinner_PropagatesError(t *testing.T) {
	want := errors.New("boom")
	err := RunWithSpinner(context.Background(), func() error { return want }, notTTY)
	assert.ErrorIs(t, err, want)
}

func TestRunWithSpinner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := RunWithSpinner(ctx, func() error {
		called = true
		return nil
	}, notTTY)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
