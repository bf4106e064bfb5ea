package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/nightreign-notebook/internal/config"
	"github.com/tatianab/nightreign-notebook/internal/dataset"
	"github.com/tatianab/nightreign-notebook/internal/logging"
	"github.com/tatianab/nightreign-notebook/internal/models"
	"github.com/tatianab/nightreign-notebook/internal/tui"
)

// Replaced in tests.
var (
	openLog        = logging.Open
	runUI          = tui.Run
	darkBackground = lipgloss.HasDarkBackground
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so the log file is closed on every path.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, closer, err := openLog(cfg)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer closer.Close()

	var fixtures fs.FS = dataset.Embedded()
	if cfg.DataDir != "" {
		fixtures = os.DirFS(cfg.DataDir)
	}
	store := dataset.NewStore(fixtures, log)
	store.Preload()

	prefs, err := models.LoadPreferences(cfg.SettingsDir)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring unreadable preferences")
	}

	err = runUI(tui.Options{
		Store:       store,
		Locale:      cfg.Locale,
		Theme:       prefs.ResolveTheme(darkBackground()),
		SettingsDir: cfg.SettingsDir,
		Log:         log,
	})
	if err != nil {
		log.Error().Err(err).Msg("terminal UI exited with error")
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
