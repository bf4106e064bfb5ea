package main

import (
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/nightreign-notebook/internal/config"
	"github.com/tatianab/nightreign-notebook/internal/tui"
)

type recordingCloser struct{ closed int }

func (r *recordingCloser) Close() error {
	r.closed++
	return nil
}

// stub swaps the package hooks for the duration of the test.
func stub(t *testing.T, ui func(tui.Options) error) (*recordingCloser, *int) {
	t.Helper()
	t.Setenv("NOTEBOOK_SETTINGS_DIR", t.TempDir())

	closer := &recordingCloser{}
	opened := 0
	oldOpen, oldRun, oldDark := openLog, runUI, darkBackground
	openLog = func(*config.Config) (zerolog.Logger, io.Closer, error) {
		opened++
		return zerolog.Nop(), closer, nil
	}
	runUI = ui
	darkBackground = func() bool { return true }
	t.Cleanup(func() { openLog, runUI, darkBackground = oldOpen, oldRun, oldDark })
	return closer, &opened
}

func TestRunClosesLogOnUIError(t *testing.T) {
	closer, _ := stub(t, func(tui.Options) error { return errors.New("no tty") })

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running TUI: no tty")
	assert.Equal(t, 1, closer.closed)
}

func TestRunPassesOptions(t *testing.T) {
	var got tui.Options
	closer, _ := stub(t, func(opts tui.Options) error {
		got = opts
		return nil
	})
	t.Setenv("NOTEBOOK_LOCALE", "en")

	require.NoError(t, run())
	assert.Equal(t, "en", got.Locale)
	assert.NotNil(t, got.Store)
	assert.Equal(t, 1, closer.closed)
}

func TestRunBadConfigSkipsLog(t *testing.T) {
	closer, opened := stub(t, func(tui.Options) error {
		t.Fatal("UI started with bad config")
		return nil
	})
	t.Setenv("NOTEBOOK_LOCALE", "fr")

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
	assert.Zero(t, *opened)
	assert.Zero(t, closer.closed)
}
