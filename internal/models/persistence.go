package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const preferencesFile = "preferences.yaml"

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Preferences is the only state the notebook persists between runs.
type Preferences struct {
	Theme Theme `yaml:"theme,omitempty"`
}

// ResolveTheme returns the saved theme, or the terminal's background
// preference when nothing valid has been saved.
func (p Preferences) ResolveTheme(osDark bool) Theme {
	switch p.Theme {
	case ThemeLight, ThemeDark:
		return p.Theme
	}
	if osDark {
		return ThemeDark
	}
	return ThemeLight
}

func (p Preferences) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, preferencesFile), data, 0644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}

// LoadPreferences reads the preferences in dir. A missing file is not an
// error and yields empty preferences.
func LoadPreferences(dir string) (Preferences, error) {
	var prefs Preferences

	data, err := os.ReadFile(filepath.Join(dir, preferencesFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}
	return prefs, nil
}
