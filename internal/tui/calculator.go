package tui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/message"

	"github.com/tatianab/nightreign-notebook/internal/engine"
	"github.com/tatianab/nightreign-notebook/internal/i18n"
	"github.com/tatianab/nightreign-notebook/internal/models"
)

// Default pair for the calculator, matching the most common duo.
const (
	defaultSelf = "wylder"
	defaultAlly = "duchess"
)

// calculator is the recovery calculator panel. Rows are, top to bottom: the
// self character, the ally character, one row per effect and the button.
type calculator struct {
	engine     *engine.Engine
	locale     string
	characters []models.Character
	effects    []models.ModifierEffect

	selfIdx int
	allyIdx int
	sel     models.SelectionState
	cursor  int

	result *models.RecoveryResult
	trace  viewport.Model
}

func newCalculator(eng *engine.Engine, locale string, characters []models.Character, effects []models.ModifierEffect) calculator {
	c := calculator{
		engine:     eng,
		locale:     locale,
		characters: characters,
		effects:    effects,
		trace:      viewport.New(60, 12),
	}
	c.selfIdx = characterIndex(characters, defaultSelf, 0)
	c.allyIdx = characterIndex(characters, defaultAlly, min(1, max(len(characters)-1, 0)))
	return c
}

func characterIndex(characters []models.Character, id string, fallback int) int {
	if i := slices.IndexFunc(characters, func(c models.Character) bool { return c.ID == id }); i >= 0 {
		return i
	}
	return fallback
}

func (c calculator) rows() int { return len(c.effects) + 3 }

func (c calculator) buttonRow() int { return c.rows() - 1 }

// effectAt returns the effect under row, if the row is an effect row.
func (c calculator) effectAt(row int) (models.ModifierEffect, bool) {
	i := row - 2
	if i < 0 || i >= len(c.effects) {
		return models.ModifierEffect{}, false
	}
	return c.effects[i], true
}

func (c calculator) character(i int) models.Character {
	if i < 0 || i >= len(c.characters) {
		return models.Character{}
	}
	return c.characters[i]
}

func (c calculator) update(msg tea.KeyMsg) (calculator, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		c.cursor = max(c.cursor-1, 0)
	case key.Matches(msg, keys.Down):
		c.cursor = min(c.cursor+1, c.buttonRow())
	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
		delta := 1
		if key.Matches(msg, keys.Left) {
			delta = -1
		}
		switch c.cursor {
		case 0:
			c.selfIdx = cycle(c.selfIdx, delta, len(c.characters))
		case 1:
			c.allyIdx = cycle(c.allyIdx, delta, len(c.characters))
		}
	case key.Matches(msg, keys.Toggle):
		if effect, ok := c.effectAt(c.cursor); ok {
			c.sel.Toggle(effect.ID)
		} else if c.cursor == c.buttonRow() {
			c.calculate()
		}
	case key.Matches(msg, keys.Calculate):
		c.calculate()
	case key.Matches(msg, keys.Scroll):
		var cmd tea.Cmd
		c.trace, cmd = c.trace.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *calculator) calculate() {
	c.sel.Self = c.character(c.selfIdx)
	c.sel.Ally = c.character(c.allyIdx)
	res := c.engine.Calculate(c.sel)
	c.result = &res
	c.trace.SetContent(strings.Join(res.Steps, "\n"))
	c.trace.GotoTop()
}

func (c *calculator) resize(width, height int) {
	c.trace.Width = max(width/2, 30)
	c.trace.Height = max(height-12, 6)
}

func (c calculator) view(p *message.Printer, s styles) string {
	var b strings.Builder
	b.WriteString(s.help.Render(p.Sprintf(i18n.UICalcHelp)) + "\n\n")

	b.WriteString(c.rowLine(s, 0, p.Sprintf(i18n.UICalcSelf)+": ‹ "+c.character(c.selfIdx).LocalizedName(c.locale)+" ›") + "\n")
	b.WriteString(c.rowLine(s, 1, p.Sprintf(i18n.UICalcAlly)+": ‹ "+c.character(c.allyIdx).LocalizedName(c.locale)+" ›") + "\n\n")

	for i, effect := range c.effects {
		box := "[ ]"
		if c.sel.Has(effect.ID) {
			box = s.checked.Render("[x]")
		}
		target := p.Sprintf(i18n.UISelf)
		if effect.AppliesTo == models.TargetAlly {
			target = p.Sprintf(i18n.UIAlly)
		}
		b.WriteString(c.rowLine(s, i+2, box+" "+effect.LocalizedName(c.locale)+" ("+target+")") + "\n")
	}
	b.WriteString("\n" + c.rowLine(s, c.buttonRow(), s.button.Render("[ "+p.Sprintf(i18n.UICalcButton)+" ]")))

	left := b.String()
	right := c.resultView(p, s)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", s.panel.Render(right))
}

func (c calculator) rowLine(s styles, row int, text string) string {
	if row == c.cursor {
		return s.cursor.Render("> " + text)
	}
	return "  " + s.text.Render(text)
}

func (c calculator) resultView(p *message.Printer, s styles) string {
	if c.result == nil {
		return s.help.Render(p.Sprintf(i18n.UICalcEmpty))
	}
	r := c.result

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(p.Sprintf(i18n.UIColTarget), p.Sprintf(i18n.UIColHealth), p.Sprintf(i18n.UIColFocus)).
		Row(p.Sprintf(i18n.UISelf), amountCell(r.SelfHealth, r.SelfHealthPercent), amountCell(r.SelfFocus, r.SelfFocusPercent)).
		Row(p.Sprintf(i18n.UIAlly), amountCell(r.AllyHealth, r.AllyHealthPercent), amountCell(r.AllyFocus, r.AllyFocusPercent)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return s.header
			}
			return s.cell()
		})

	return joinNonEmpty(
		s.heading.Render(p.Sprintf(i18n.UICalcResult))+"\n"+t.Render(),
		s.heading.Render(p.Sprintf(i18n.UICalcSteps))+"\n"+c.trace.View(),
	)
}

func amountCell(amount int, percent string) string {
	return strconv.Itoa(amount) + " (" + percent + "%)"
}

func cycle(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}
