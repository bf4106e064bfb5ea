package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/message"

	"github.com/tatianab/nightreign-notebook/internal/i18n"
	"github.com/tatianab/nightreign-notebook/internal/models"
)

// staticTable renders a bordered, non-interactive table. Rows equal to
// highlight are drawn with the cursor style; pass -1 for none.
func (s styles) staticTable(headers []string, rows [][]string, highlight int) string {
	return ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return s.header
			case row == highlight:
				return s.cursor.Padding(0, 1)
			default:
				return s.cell()
			}
		}).
		Render()
}

// levelStat selects which per-level table the characters page shows.
type levelStat int

const (
	statHP levelStat = iota
	statFP
	statST
)

var levelStats = []struct {
	stat  levelStat
	title string
	value func(models.LevelStats) int
}{
	{statHP, i18n.UIStatHP, func(l models.LevelStats) int { return l.HP }},
	{statFP, i18n.UIStatFP, func(l models.LevelStats) int { return l.FP }},
	{statST, i18n.UIStatST, func(l models.LevelStats) int { return l.ST }},
}

func (st levelStat) shift(delta int) levelStat {
	return levelStat(cycle(int(st), delta, len(levelStats)))
}

const maxLevel = 15

func (m model) charactersView() string {
	p, s := m.printer, m.styles

	var chars [][]string
	for _, c := range m.data.Characters() {
		chars = append(chars, []string{c.LocalizedName(m.locale), strconv.Itoa(c.BaseHealth), strconv.Itoa(c.BaseFocus)})
	}
	var frames [][]string
	for _, f := range m.data.InvincibleFrames() {
		frames = append(frames, []string{f.Name, f.Type, strconv.Itoa(f.Value)})
	}

	return joinNonEmpty(
		s.staticTable([]string{p.Sprintf(i18n.UIColName), p.Sprintf(i18n.UIColHealth), p.Sprintf(i18n.UIColFocus)}, chars, -1),
		m.levelsView(),
		s.heading.Render(p.Sprintf(i18n.UIInvincible))+"\n"+
			s.staticTable([]string{p.Sprintf(i18n.UIColName), p.Sprintf(i18n.UIColType), p.Sprintf(i18n.UIColFrames)}, frames, -1),
	)
}

// levelsView is the Lv1..Lv15 table for the selected stat. Missing levels
// are left blank.
func (m model) levelsView() string {
	p, s := m.printer, m.styles
	current := levelStats[m.stat]

	var switcher []string
	for _, ls := range levelStats {
		if ls.stat == m.stat {
			switcher = append(switcher, s.activeTab.Render(p.Sprintf(ls.title)))
		} else {
			switcher = append(switcher, s.tab.Render(p.Sprintf(ls.title)))
		}
	}

	headers := []string{p.Sprintf(i18n.UIColName)}
	for lv := 1; lv <= maxLevel; lv++ {
		headers = append(headers, "Lv"+strconv.Itoa(lv))
	}

	var rows [][]string
	for _, cl := range m.data.CharacterLevels() {
		name := cl.ID
		if c, ok := m.data.Character(cl.ID); ok {
			name = c.LocalizedName(m.locale)
		}
		row := []string{name}
		for lv := 1; lv <= maxLevel; lv++ {
			cell := ""
			if l, ok := cl.At(lv); ok {
				cell = strconv.Itoa(current.value(l))
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	return s.heading.Render(p.Sprintf(i18n.UILevelStats)) + s.help.Render("  "+p.Sprintf(i18n.UICharactersHelp)) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Bottom, switcher...) + "\n" +
		s.staticTable(headers, rows, -1)
}

func (m model) bossesView() string {
	p, s := m.printer, m.styles
	bosses := m.data.Bosses()

	var rows [][]string
	for _, b := range bosses {
		rows = append(rows, []string{b.Name, b.BaseHealth, b.NightreignHealth, b.HealthMultiplier, strconv.Itoa(b.BasePoise)})
	}
	list := s.staticTable([]string{
		p.Sprintf(i18n.UIColName),
		p.Sprintf(i18n.UIColBaseHealth),
		p.Sprintf(i18n.UIColNightHealth),
		p.Sprintf(i18n.UIColMultiplier),
		p.Sprintf(i18n.UIColBasePoise),
	}, rows, m.boss)

	var chart, resistances string
	if m.boss >= 0 && m.boss < len(bosses) {
		chart = s.absorptionChart(p, bosses[m.boss])
		resistances = s.resistanceTable(p, bosses[m.boss])
	}
	return joinNonEmpty(s.help.Render(p.Sprintf(i18n.UIBossesHelp)), list, chart, resistances)
}

// resistanceTable is a one-row table of status resistances, each value
// colored by its class.
func (s styles) resistanceTable(p *message.Printer, b models.Boss) string {
	res := b.Resistances()
	headers := make([]string, len(res))
	values := make([]string, len(res))
	for i, r := range res {
		headers[i] = p.Sprintf(i18n.StatusKey(r.Status))
		values[i] = r.Value
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		Row(values...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return s.header
			}
			return s.resistance(res[col].Value).Padding(0, 1)
		})
	return s.heading.Render(p.Sprintf(i18n.UIResistances)) + "\n" + t.Render()
}

const chartWidth = 30

// absorptionChart draws one bar per damage type. A multiplier of 1 fills
// two thirds of the bar.
func (s styles) absorptionChart(p *message.Printer, b models.Boss) string {
	absorptions := b.Absorptions()
	labels := make([]string, len(absorptions))
	labelWidth := 0
	for i, a := range absorptions {
		labels[i] = p.Sprintf(i18n.DamageTypeKey(a.DamageType))
		labelWidth = max(labelWidth, lipgloss.Width(labels[i]))
	}

	var lines []string
	lines = append(lines, s.heading.Render(p.Sprintf(i18n.UIAbsorptionChart)+": "+b.Name))
	for i, a := range absorptions {
		filled := min(int(a.Value*chartWidth*2/3+0.5), chartWidth)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", chartWidth-filled)
		label := labels[i] + strings.Repeat(" ", labelWidth-lipgloss.Width(labels[i]))
		style := s.absorption(a.Value)
		lines = append(lines, s.text.Render(label)+" "+style.Render(bar)+" "+style.Render(fmt.Sprintf("%.2f", a.Value)))
	}
	return strings.Join(lines, "\n")
}

func (m model) weaponsView() string {
	p, s := m.printer, m.styles
	characters := m.data.Characters()

	headers := []string{p.Sprintf(i18n.UIColName), p.Sprintf(i18n.UIColType), p.Sprintf(i18n.UIColEffect), p.Sprintf(i18n.UIColPoise)}
	for _, c := range characters {
		headers = append(headers, c.LocalizedName(m.locale))
	}

	var rows [][]string
	for _, w := range m.data.Weapons() {
		row := []string{w.Name, w.Type, w.Effect, w.PoiseDamage}
		for _, c := range characters {
			rating, ok := w.Ratings[c.ID]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, strconv.Itoa(rating))
		}
		rows = append(rows, row)
	}
	return s.staticTable(headers, rows, -1)
}
