package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"

	"github.com/tatianab/nightreign-notebook/internal/dataset"
	"github.com/tatianab/nightreign-notebook/internal/i18n"
	"github.com/tatianab/nightreign-notebook/internal/models"
)

// entriesView is the searchable entry browser. For every filter, index 0
// means no filter and i selects the (i-1)th value.
type entriesView struct {
	data       *dataset.Datasets
	kind       int
	types      []string
	typeIdx    int
	stacking   []string
	stackIdx   int
	characters []string
	charIdx    int
	search     textinput.Model
	searching  bool
	table      table.Model
	shown      []models.Entry
}

func newEntriesView(p *message.Printer, s styles, data *dataset.Datasets) entriesView {
	ti := textinput.New()
	ti.Placeholder = p.Sprintf(i18n.UIEntriesSearch)
	ti.CharLimit = 64
	ti.Width = 40

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 8},
			{Title: p.Sprintf(i18n.UIColName), Width: 30},
			{Title: p.Sprintf(i18n.UIColType), Width: 16},
			{Title: p.Sprintf(i18n.UIColExplanation), Width: 40},
			{Title: p.Sprintf(i18n.UIColStacking), Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
		table.WithStyles(s.tableStyles()),
	)

	var names []string
	for _, c := range data.Characters() {
		names = append(names, c.Name)
	}

	v := entriesView{data: data, characters: names, search: ti, table: t}
	v.selectKind(0)
	return v
}

func (v entriesView) currentKind() models.EntryKind {
	return models.EntryKinds[v.kind]
}

// selectKind switches the entry table and resets the type and stacking
// filters. The character filter is kept.
func (v *entriesView) selectKind(i int) {
	v.kind = cycle(i, 0, len(models.EntryKinds))
	entries := v.data.Entries(v.currentKind())
	v.types = dataset.EntryTypes(entries)
	v.typeIdx = 0
	v.stacking = dataset.EntrySuperposabilities(entries)
	v.stackIdx = 0
	v.refresh()
}

// chosen returns the selected filter value, or "" for no filter.
func chosen(values []string, idx int) string {
	if idx <= 0 || idx > len(values) {
		return ""
	}
	return values[idx-1]
}

func (v *entriesView) filter() dataset.EntryFilter {
	f := dataset.EntryFilter{
		Query:     v.search.Value(),
		Character: chosen(v.characters, v.charIdx),
	}
	if t := chosen(v.types, v.typeIdx); t != "" {
		f.Types = []string{t}
	}
	if st := chosen(v.stacking, v.stackIdx); st != "" {
		f.Superposability = []string{st}
	}
	return f
}

func (v *entriesView) refresh() {
	f := v.filter()
	v.shown = dataset.FilterEntries(v.data.Entries(v.currentKind()), f)

	rows := make([]table.Row, 0, len(v.shown))
	for _, e := range v.shown {
		name := e.Name
		if e.Talisman != "" {
			name += " (" + e.Talisman + ")"
		}
		rows = append(rows, table.Row{e.ID, name, e.Type, e.Explanation, e.Superposability})
	}
	v.table.SetRows(rows)
	if len(rows) > 0 {
		v.table.SetCursor(0)
	}
}

func (v entriesView) update(msg tea.KeyMsg) (entriesView, tea.Cmd) {
	if v.searching {
		if key.Matches(msg, keys.Cancel) || key.Matches(msg, keys.Calculate) {
			v.searching = false
			v.search.Blur()
			v.table.Focus()
			return v, nil
		}
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		v.refresh()
		return v, cmd
	}

	switch {
	case key.Matches(msg, keys.Search):
		v.searching = true
		v.table.Blur()
		return v, v.search.Focus()
	case key.Matches(msg, keys.NextTable):
		v.selectKind(v.kind + 1)
	case key.Matches(msg, keys.PrevTable):
		v.selectKind(v.kind - 1)
	case key.Matches(msg, keys.Filter):
		v.typeIdx = cycle(v.typeIdx, 1, len(v.types)+1)
		v.refresh()
	case key.Matches(msg, keys.Stacking):
		v.stackIdx = cycle(v.stackIdx, 1, len(v.stacking)+1)
		v.refresh()
	case key.Matches(msg, keys.Character):
		v.charIdx = cycle(v.charIdx, 1, len(v.characters)+1)
		v.refresh()
	default:
		var cmd tea.Cmd
		v.table, cmd = v.table.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *entriesView) resize(width, height int) {
	v.table.SetHeight(max(height-12, 5))
	v.table.SetWidth(max(width-4, 40))
}

func (v entriesView) view(p *message.Printer, s styles) string {
	label := func(value, none string) string {
		if value == "" {
			return "[" + p.Sprintf(none) + "]"
		}
		return "[" + value + "]"
	}
	filters := label(chosen(v.types, v.typeIdx), i18n.UIEntriesAllTypes) + " " +
		label(chosen(v.stacking, v.stackIdx), i18n.UIEntriesAnyStack) + " " +
		label(chosen(v.characters, v.charIdx), i18n.UIEntriesAnyChar)
	header := s.heading.Render(p.Sprintf(i18n.EntryKindKey(string(v.currentKind())))) +
		s.help.Render("  "+filters+"  "+p.Sprintf(i18n.UIEntriesCount, strconv.Itoa(len(v.shown))))

	return joinNonEmpty(
		s.help.Render(p.Sprintf(i18n.UIEntriesHelp)),
		header+"\n"+v.search.View(),
		v.table.View(),
	)
}
