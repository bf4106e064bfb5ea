package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"github.com/tatianab/nightreign-notebook/internal/i18n"
)

type tabID int

const (
	tabMechanics tabID = iota
	tabCharacters
	tabEntries
	tabBosses
	tabWeapons
)

// tabs lists the pages in display order. The first one is shown on start.
var tabs = []struct {
	id    tabID
	title string
}{
	{tabMechanics, i18n.UITabMechanics},
	{tabCharacters, i18n.UITabCharacters},
	{tabEntries, i18n.UITabEntries},
	{tabBosses, i18n.UITabBosses},
	{tabWeapons, i18n.UITabWeapons},
}

// shift moves the active tab by delta, wrapping around.
func shift(current tabID, delta int) tabID {
	return tabID(cycle(int(current), delta, len(tabs)))
}

// tabForKey maps "1".."5" to a tab.
func tabForKey(k string) (tabID, bool) {
	if len(k) != 1 || k[0] < '1' || int(k[0]-'1') >= len(tabs) {
		return 0, false
	}
	return tabs[k[0]-'1'].id, true
}

func (s styles) tabBar(p *message.Printer, active tabID) string {
	rendered := make([]string, 0, len(tabs))
	for i, t := range tabs {
		label := p.Sprintf(t.title)
		label = string(rune('1'+i)) + " " + label
		if t.id == active {
			rendered = append(rendered, s.activeTab.Render(label))
		} else {
			rendered = append(rendered, s.tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
}

type keyMap struct {
	Quit      key.Binding
	Theme     key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Calculate key.Binding
	Search    key.Binding
	Cancel    key.Binding
	PrevTable key.Binding
	NextTable key.Binding
	Filter    key.Binding
	Stacking  key.Binding
	Character key.Binding
	Scroll    key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	Theme:     key.NewBinding(key.WithKeys("t")),
	NextTab:   key.NewBinding(key.WithKeys("tab")),
	PrevTab:   key.NewBinding(key.WithKeys("shift+tab")),
	Up:        key.NewBinding(key.WithKeys("up", "k")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	Left:      key.NewBinding(key.WithKeys("left", "h")),
	Right:     key.NewBinding(key.WithKeys("right", "l")),
	Toggle:    key.NewBinding(key.WithKeys(" ", "space")),
	Calculate: key.NewBinding(key.WithKeys("enter")),
	Search:    key.NewBinding(key.WithKeys("/")),
	Cancel:    key.NewBinding(key.WithKeys("esc")),
	PrevTable: key.NewBinding(key.WithKeys("[")),
	NextTable: key.NewBinding(key.WithKeys("]")),
	Filter:    key.NewBinding(key.WithKeys("f")),
	Stacking:  key.NewBinding(key.WithKeys("s")),
	Character: key.NewBinding(key.WithKeys("c")),
	Scroll:    key.NewBinding(key.WithKeys("pgup", "pgdown")),
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
