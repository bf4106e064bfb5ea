// Package tui is the notebook's terminal interface.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/text/message"

	"github.com/tatianab/nightreign-notebook/internal/dataset"
	"github.com/tatianab/nightreign-notebook/internal/engine"
	"github.com/tatianab/nightreign-notebook/internal/i18n"
	"github.com/tatianab/nightreign-notebook/internal/models"
)

type sessionState int

const (
	stateLoading sessionState = iota
	stateReady
	stateError
)

// Options configures the UI.
type Options struct {
	Store       *dataset.Store
	Locale      string
	Theme       models.Theme
	SettingsDir string
	Log         zerolog.Logger
}

type model struct {
	state       sessionState
	store       *dataset.Store
	log         zerolog.Logger
	locale      string
	printer     *message.Printer
	settingsDir string
	theme       models.Theme
	styles      styles
	spinner     spinner.Model
	err         error
	width       int
	height      int

	tab     tabID
	data    *dataset.Datasets
	calc    calculator
	items   itemsPanel
	entries entriesView
	boss    int
	stat    levelStat
}

func newModel(opts Options) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := model{
		state:       stateLoading,
		store:       opts.Store,
		log:         opts.Log.With().Str("component", "tui").Logger(),
		locale:      opts.Locale,
		printer:     i18n.Printer(opts.Locale),
		settingsDir: opts.SettingsDir,
		theme:       opts.Theme,
		styles:      newStyles(opts.Theme),
		spinner:     sp,
	}
	m.spinner.Style = lipgloss.NewStyle().Foreground(m.styles.palette.accent)
	return m
}

type dataLoadedMsg struct {
	data *dataset.Datasets
	err  error
}

type themeSavedMsg struct {
	theme models.Theme
	err   error
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForData())
}

func (m model) waitForData() tea.Cmd {
	return func() tea.Msg {
		data, err := m.store.Wait(context.Background())
		return dataLoadedMsg{data, err}
	}
}

func (m model) saveTheme() tea.Cmd {
	dir, theme := m.settingsDir, m.theme
	return func() tea.Msg {
		err := models.Preferences{Theme: theme}.Save(dir)
		return themeSavedMsg{theme, err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == stateReady {
			m.calc.resize(msg.Width, msg.Height)
			m.entries.resize(msg.Width, msg.Height)
		}

	case dataLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.data = msg.data
		eng := engine.NewEngine(msg.data.Modifiers(), m.locale)
		m.calc = newCalculator(eng, m.locale, msg.data.Characters(), msg.data.Modifiers())
		m.items = newItemsPanel(m.printer, msg.data.ItemEffects())
		m.entries = newEntriesView(m.printer, m.styles, msg.data)
		m.state = stateReady
		if m.width > 0 {
			m.calc.resize(m.width, m.height)
			m.entries.resize(m.width, m.height)
		}
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("theme", string(msg.theme)).Msg("saving theme preference failed")
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// A focused search box takes every key.
	if m.state == stateReady {
		var cmd tea.Cmd
		switch {
		case m.tab == tabEntries && m.entries.searching:
			m.entries, cmd = m.entries.update(msg)
			return m, cmd
		case m.tab == tabMechanics && m.items.searching:
			m.items, cmd = m.items.update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Theme):
		m.theme = m.theme.Toggle()
		m.styles = newStyles(m.theme)
		if m.state == stateReady {
			m.entries.table.SetStyles(m.styles.tableStyles())
		}
		return m, m.saveTheme()
	case key.Matches(msg, keys.NextTab):
		m.tab = shift(m.tab, 1)
		return m, nil
	case key.Matches(msg, keys.PrevTab):
		m.tab = shift(m.tab, -1)
		return m, nil
	}
	if tab, ok := tabForKey(msg.String()); ok {
		m.tab = tab
		return m, nil
	}

	if m.state != stateReady {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.tab {
	case tabMechanics:
		if m.items.handles(msg) {
			m.items, cmd = m.items.update(msg)
		} else {
			m.calc, cmd = m.calc.update(msg)
		}
	case tabCharacters:
		switch {
		case key.Matches(msg, keys.NextTable):
			m.stat = m.stat.shift(1)
		case key.Matches(msg, keys.PrevTable):
			m.stat = m.stat.shift(-1)
		}
	case tabEntries:
		m.entries, cmd = m.entries.update(msg)
	case tabBosses:
		switch {
		case key.Matches(msg, keys.Up):
			m.boss = max(m.boss-1, 0)
		case key.Matches(msg, keys.Down):
			m.boss = min(m.boss+1, max(len(m.data.Bosses())-1, 0))
		}
	}
	return m, cmd
}

func (m model) View() string {
	p, s := m.printer, m.styles

	theme := p.Sprintf(i18n.UIThemeDark)
	if m.theme == models.ThemeLight {
		theme = p.Sprintf(i18n.UIThemeLight)
	}
	header := s.title.Render(p.Sprintf(i18n.UITitle)) + "  " + s.help.Render("("+theme+")")

	var body string
	switch m.state {
	case stateLoading:
		body = "\n  " + m.spinner.View() + " " + s.text.Render(p.Sprintf(i18n.UILoading)) + "\n"
	case stateError:
		body = "\n  " + s.err.Render(p.Sprintf(i18n.UILoadFailed, m.err.Error())) + "\n"
	case stateReady:
		body = m.tabView()
	}

	return strings.Join([]string{
		header,
		s.tabBar(p, m.tab),
		body,
		s.help.Render(p.Sprintf(i18n.UIHelp)),
	}, "\n") + "\n"
}

func (m model) tabView() string {
	switch m.tab {
	case tabMechanics:
		return joinNonEmpty(m.calc.view(m.printer, m.styles), m.items.view(m.printer, m.styles))
	case tabCharacters:
		return m.charactersView()
	case tabEntries:
		return m.entries.view(m.printer, m.styles)
	case tabBosses:
		return m.bossesView()
	case tabWeapons:
		return m.weaponsView()
	}
	return ""
}

// Run starts the interface and blocks until the user quits.
func Run(opts Options) error {
	opts.Store.Preload()
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
