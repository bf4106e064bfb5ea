package tui

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/nightreign-notebook/internal/dataset"
	"github.com/tatianab/nightreign-notebook/internal/i18n"
	"github.com/tatianab/nightreign-notebook/internal/models"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs through Update and returns the resulting model.
func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func shownIDs(entries []models.Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func newTestModel(t *testing.T, store *dataset.Store) model {
	t.Helper()
	return newModel(Options{
		Store:       store,
		Locale:      i18n.EN,
		Theme:       models.ThemeDark,
		SettingsDir: t.TempDir(),
		Log:         zerolog.Nop(),
	})
}

func readyModel(t *testing.T) model {
	t.Helper()
	m := newTestModel(t, dataset.NewStore(dataset.Embedded(), zerolog.Nop()))
	m = send(t, m, m.waitForData()(), tea.WindowSizeMsg{Width: 160, Height: 50})
	require.Equal(t, stateReady, m.state)
	return m
}

func TestLoadingView(t *testing.T) {
	m := newTestModel(t, dataset.NewStore(dataset.Embedded(), zerolog.Nop()))
	assert.Equal(t, stateLoading, m.state)
	assert.Contains(t, m.View(), "Loading data")
}

func TestLoadFailureShowsNotification(t *testing.T) {
	store := dataset.NewStore(fstest.MapFS{}, zerolog.Nop())
	m := newTestModel(t, store)
	m = send(t, m, m.waitForData()())

	assert.Equal(t, stateError, m.state)
	assert.Contains(t, m.View(), "Failed to load data")

	// Keys other than quit do nothing once loading failed.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateError, m.state)
}

func TestTabSwitching(t *testing.T) {
	m := readyModel(t)
	assert.Equal(t, tabMechanics, m.tab)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabCharacters, m.tab)

	m = send(t, m, runes("5"))
	assert.Equal(t, tabWeapons, m.tab)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabMechanics, m.tab)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabWeapons, m.tab)
	assert.Contains(t, m.View(), "Wylder")
}

func TestCalculatorKeys(t *testing.T) {
	m := readyModel(t)
	assert.Equal(t, "wylder", m.calc.character(m.calc.selfIdx).ID)
	assert.Equal(t, "duchess", m.calc.character(m.calc.allyIdx).ID)

	down := tea.KeyMsg{Type: tea.KeyDown}
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m = send(t, m, down, down, space, down, space, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []int{1, 2}, m.calc.sel.EffectIDs)
	require.NotNil(t, m.calc.result)
	assert.Equal(t, 560, m.calc.result.SelfHealth)
	assert.Equal(t, 42, m.calc.result.SelfFocus)
	assert.Equal(t, 258, m.calc.result.AllyHealth)
	assert.Equal(t, 27, m.calc.result.AllyFocus)
	assert.Contains(t, m.View(), "560 (50%)")

	// Deselecting the spread effect drops the ally heal.
	m = send(t, m, space, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int{1}, m.calc.sel.EffectIDs)
	assert.Equal(t, 0, m.calc.result.AllyHealth)
}

func TestCalculatorChangesCharacter(t *testing.T) {
	m := readyModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})

	self := m.calc.character(m.calc.selfIdx)
	assert.Equal(t, "guardian", self.ID)
	assert.Equal(t, 768, m.calc.result.SelfHealth)
}

func TestThemeToggleSavesPreference(t *testing.T) {
	m := readyModel(t)

	next, cmd := m.Update(runes("t"))
	m = next.(model)
	assert.Equal(t, models.ThemeLight, m.theme)
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(themeSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)

	data, err := os.ReadFile(filepath.Join(m.settingsDir, "preferences.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "theme: light\n", string(data))

	prefs, err := models.LoadPreferences(m.settingsDir)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, prefs.ResolveTheme(true))
}

func TestEntriesFilterAndSearch(t *testing.T) {
	m := readyModel(t)
	m = send(t, m, runes("3"))
	require.Equal(t, tabEntries, m.tab)
	assert.Len(t, m.entries.shown, 8)

	// First type of the relic table is 能力值, which has two entries.
	m = send(t, m, runes("f"))
	assert.Len(t, m.entries.shown, 2)

	m = send(t, m, runes("/"), runes("力氣"))
	assert.True(t, m.entries.searching)
	require.Len(t, m.entries.shown, 1)
	assert.Equal(t, "7000000", m.entries.shown[0].ID)

	// While searching, q is typed instead of quitting.
	m = send(t, m, runes("q"))
	assert.True(t, m.entries.searching)
	assert.Equal(t, "力氣q", m.entries.search.Value())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.entries.searching)
	assert.Empty(t, m.entries.shown)
}

func TestEntriesSwitchTable(t *testing.T) {
	m := readyModel(t)
	m = send(t, m, runes("3"), runes("]"))
	assert.Equal(t, models.EntriesInGame, m.entries.currentKind())

	m = send(t, m, runes("["), runes("["))
	assert.Equal(t, models.EntriesDeepNight, m.entries.currentKind())
	assert.Len(t, m.entries.shown, 4)
}

func TestBossSelection(t *testing.T) {
	m := readyModel(t)
	m = send(t, m, runes("4"), tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.boss)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.boss)
	assert.Contains(t, m.View(), "Damage absorption")
	assert.Contains(t, m.View(), "1.25")
}

func TestShift(t *testing.T) {
	assert.Equal(t, tabCharacters, shift(tabMechanics, 1))
	assert.Equal(t, tabWeapons, shift(tabMechanics, -1))
	assert.Equal(t, tabMechanics, shift(tabWeapons, 1))

	tab, ok := tabForKey("4")
	assert.True(t, ok)
	assert.Equal(t, tabBosses, tab)
	_, ok = tabForKey("6")
	assert.False(t, ok)
	_, ok = tabForKey("t")
	assert.False(t, ok)
}

func TestEntriesStackingFilter(t *testing.T) {
	m := readyModel(t)
	m = send(t, m, runes("3"), runes("s"))
	assert.Equal(t, []string{"7000000", "7000100", "7010000"}, shownIDs(m.entries.shown))
	assert.Contains(t, m.View(), "[可疊加]")

	// Cycling past the last value clears the filter.
	m = send(t, m, runes("s"), runes("s"))
	assert.Len(t, m.entries.shown, 8)
}

func TestEntriesCharacterFilter(t *testing.T) {
	m := readyModel(t)
	m = send(t, m, runes("3"))
	assert.Contains(t, m.View(), "[all characters]")

	m = send(t, m, runes("c"))
	assert.Equal(t, []string{"7040000"}, shownIDs(m.entries.shown))
	assert.Contains(t, m.View(), "[追蹤者]")

	// The character filter survives a table switch.
	m = send(t, m, runes("]"), runes("["))
	assert.Equal(t, []string{"7040000"}, shownIDs(m.entries.shown))
}

func TestItemsSearchAndFilter(t *testing.T) {
	m := readyModel(t)
	require.Equal(t, tabMechanics, m.tab)
	total := len(m.items.shown)
	require.NotZero(t, total)

	m = send(t, m, runes("f"))
	assert.Len(t, m.items.shown, 2)
	assert.Contains(t, m.View(), "[聖盃瓶]")

	m = send(t, m, runes("f"), runes("f"), runes("f"), runes("f"), runes("f"), runes("f"))
	assert.Len(t, m.items.shown, total)

	m = send(t, m, runes("/"), runes("緩慢"))
	assert.True(t, m.items.searching)
	require.Len(t, m.items.shown, 1)
	assert.Equal(t, "淨化露滴", m.items.shown[0].Name)

	// While searching, q is typed and the calculator sees nothing.
	sel := m.calc.cursor
	m = send(t, m, runes("q"), tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "緩慢q", m.items.search.Value())
	assert.Equal(t, sel, m.calc.cursor)
	assert.Empty(t, m.items.shown)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.items.searching)
}

func TestCharacterLevelTable(t *testing.T) {
	m := readyModel(t)
	m = send(t, m, runes("2"))
	require.Equal(t, tabCharacters, m.tab)
	assert.Equal(t, statHP, m.stat)

	view := m.View()
	assert.Contains(t, view, "Health, focus and stamina by level")
	assert.Contains(t, view, "Lv15")
	assert.Contains(t, m.levelsView(), "806")

	// Wylder's level 8 focus.
	m = send(t, m, runes("]"))
	assert.Equal(t, statFP, m.stat)
	assert.Contains(t, m.levelsView(), "104")
	assert.NotContains(t, m.levelsView(), "806")

	m = send(t, m, runes("["), runes("["))
	assert.Equal(t, statST, m.stat)
}

func TestBossResistances(t *testing.T) {
	m := readyModel(t)
	m = send(t, m, runes("4"))

	view := m.View()
	assert.Contains(t, view, "Base HP")
	assert.Contains(t, view, "9700")
	assert.Contains(t, view, "Status resistance")
	assert.Contains(t, view, "Madness")
	assert.Contains(t, view, "154")
}

func TestLevelStatShift(t *testing.T) {
	assert.Equal(t, statFP, statHP.shift(1))
	assert.Equal(t, statST, statHP.shift(-1))
	assert.Equal(t, statHP, statST.shift(1))
}
