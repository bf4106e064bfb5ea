package models

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestModifierEffectYAML(t *testing.T) {
	src := `
- id: 2
  name: 使用聖盃瓶時，連同恢復周圍我方人物
  name_en: Flask also heals nearby allies
  category: 局外詞條(不可疊加)
  applies_to: ally
  kind: ally_heal_spread
- id: 6
  name: 使用聖盃瓶時，改為緩慢恢復
  applies_to: self
  kind: slow_recovery_conversion
`
	var effects []ModifierEffect
	if err := yaml.Unmarshal([]byte(src), &effects); err != nil {
		t.Fatalf("Failed to unmarshal effects: %v", err)
	}
	if len(effects) != 2 {
		t.Fatalf("Expected 2 effects, got %d", len(effects))
	}
	if effects[0].Kind != KindAllyHealSpread || effects[0].AppliesTo != TargetAlly {
		t.Errorf("Unexpected first effect: %+v", effects[0])
	}
	if effects[1].Kind != KindSlowRecoveryConversion {
		t.Errorf("Expected slow conversion, got %v", effects[1].Kind)
	}
	if got := effects[0].LocalizedName("en"); got != "Flask also heals nearby allies" {
		t.Errorf("Expected English name, got %s", got)
	}
	if got := effects[1].LocalizedName("en"); got != effects[1].Name {
		t.Errorf("Expected fallback to catalog name, got %s", got)
	}
}

func TestUnknownEffectKind(t *testing.T) {
	var effect ModifierEffect
	err := yaml.Unmarshal([]byte("id: 9\nkind: double_heal\n"), &effect)
	if err == nil {
		t.Fatal("Expected error for unknown kind")
	}
}

func TestSelectionStateSetSemantics(t *testing.T) {
	var s SelectionState
	s.Set(5, 3, 5, 1)
	if want := []int{1, 3, 5}; !slices.Equal(s.EffectIDs, want) {
		t.Errorf("Expected %v, got %v", want, s.EffectIDs)
	}

	s.Toggle(3)
	if s.Has(3) {
		t.Error("Expected 3 to be deselected")
	}
	s.Toggle(2)
	if want := []int{1, 2, 5}; !slices.Equal(s.EffectIDs, want) {
		t.Errorf("Expected %v, got %v", want, s.EffectIDs)
	}
}

func TestAbsorptionClass(t *testing.T) {
	tests := map[float64]string{1.2: "weak", 0.8: "strong", 1: "normal"}
	for v, want := range tests {
		if got := AbsorptionClass(v); got != want {
			t.Errorf("AbsorptionClass(%v) = %s; want %s", v, got, want)
		}
	}
}

func TestResistanceClass(t *testing.T) {
	tests := map[string]string{
		"154": "low",
		"100": "low",
		"252": "medium",
		"400": "high",
		"542": "high",
		"999": "",
		"免疫":  "",
		"-":   "",
		"":    "",
	}
	for v, want := range tests {
		if got := ResistanceClass(v); got != want {
			t.Errorf("ResistanceClass(%q) = %q; want %q", v, got, want)
		}
	}
}

func TestBossResistances(t *testing.T) {
	b := Boss{PoisonResistance: "154", MadnessResistance: "免疫"}
	res := b.Resistances()
	if len(res) != 6 {
		t.Fatalf("Expected 6 resistances, got %d", len(res))
	}
	if res[0] != (Resistance{"poison", "154"}) {
		t.Errorf("Expected poison first, got %+v", res[0])
	}
	if res[5] != (Resistance{"madness", "免疫"}) {
		t.Errorf("Expected madness last, got %+v", res[5])
	}
}

func TestCharacterLevelsAt(t *testing.T) {
	c := CharacterLevels{ID: "wylder", Levels: []LevelStats{{Level: 1, HP: 400}, {Level: 15, HP: 1120}}}
	if got, ok := c.At(15); !ok || got.HP != 1120 {
		t.Errorf("At(15) = %+v, %v; want HP 1120", got, ok)
	}
	if _, ok := c.At(7); ok {
		t.Error("Expected level 7 to be missing")
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "settings")

	prefs, err := LoadPreferences(dir)
	if err != nil {
		t.Fatalf("Missing file should not fail: %v", err)
	}
	if prefs.Theme != "" {
		t.Errorf("Expected empty theme, got %q", prefs.Theme)
	}
	if got := prefs.ResolveTheme(true); got != ThemeDark {
		t.Errorf("Expected OS dark fallback, got %s", got)
	}
	if got := prefs.ResolveTheme(false); got != ThemeLight {
		t.Errorf("Expected OS light fallback, got %s", got)
	}

	prefs.Theme = ThemeLight
	if err := prefs.Save(dir); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "preferences.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "theme: light\n" {
		t.Errorf("Unexpected file content %q", data)
	}

	loaded, err := LoadPreferences(dir)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if got := loaded.ResolveTheme(true); got != ThemeLight {
		t.Errorf("Saved theme should win over OS preference, got %s", got)
	}
	if loaded.Theme.Toggle() != ThemeDark {
		t.Error("Toggle of light should be dark")
	}
}

func TestLoadPreferencesInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "preferences.yaml"), []byte("theme: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPreferences(dir); err == nil {
		t.Error("Expected parse error")
	}
}
