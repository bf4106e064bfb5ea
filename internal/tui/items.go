package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"

	"github.com/tatianab/nightreign-notebook/internal/dataset"
	"github.com/tatianab/nightreign-notebook/internal/i18n"
	"github.com/tatianab/nightreign-notebook/internal/models"
)

// itemsPanel is the searchable item effect table under the calculator.
type itemsPanel struct {
	items     []models.ItemEffect
	types     []string
	typeIdx   int
	search    textinput.Model
	searching bool
	shown     []models.ItemEffect
}

func newItemsPanel(p *message.Printer, items []models.ItemEffect) itemsPanel {
	ti := textinput.New()
	ti.Placeholder = p.Sprintf(i18n.UIItemsSearch)
	ti.CharLimit = 64
	ti.Width = 30

	ip := itemsPanel{items: items, types: dataset.ItemEffectTypes(items), search: ti}
	ip.refresh()
	return ip
}

func (ip *itemsPanel) refresh() {
	var types []string
	if t := chosen(ip.types, ip.typeIdx); t != "" {
		types = []string{t}
	}
	ip.shown = dataset.FilterItemEffects(ip.items, ip.search.Value(), types)
}

// handles reports whether the panel owns msg when it is not searching.
func (ip itemsPanel) handles(msg tea.KeyMsg) bool {
	return key.Matches(msg, keys.Search) || key.Matches(msg, keys.Filter)
}

func (ip itemsPanel) update(msg tea.KeyMsg) (itemsPanel, tea.Cmd) {
	if ip.searching {
		if key.Matches(msg, keys.Cancel) || key.Matches(msg, keys.Calculate) {
			ip.searching = false
			ip.search.Blur()
			return ip, nil
		}
		var cmd tea.Cmd
		ip.search, cmd = ip.search.Update(msg)
		ip.refresh()
		return ip, cmd
	}

	switch {
	case key.Matches(msg, keys.Search):
		ip.searching = true
		return ip, ip.search.Focus()
	case key.Matches(msg, keys.Filter):
		ip.typeIdx = cycle(ip.typeIdx, 1, len(ip.types)+1)
		ip.refresh()
	}
	return ip, nil
}

func (ip itemsPanel) view(p *message.Printer, s styles) string {
	typeLabel := chosen(ip.types, ip.typeIdx)
	if typeLabel == "" {
		typeLabel = p.Sprintf(i18n.UIEntriesAllTypes)
	}

	var rows [][]string
	for _, item := range ip.shown {
		rows = append(rows, []string{item.Name, item.Type, item.Effect, item.SingleGridQty})
	}
	return s.heading.Render(p.Sprintf(i18n.UIItemEffects)) + s.help.Render("  ["+typeLabel+"]  "+p.Sprintf(i18n.UIItemsHelp)) + "\n" +
		ip.search.View() + "\n" +
		s.staticTable(
			[]string{p.Sprintf(i18n.UIColName), p.Sprintf(i18n.UIColType), p.Sprintf(i18n.UIColEffect), p.Sprintf(i18n.UIColQty)},
			rows, -1)
}
