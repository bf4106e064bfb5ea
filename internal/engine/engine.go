package engine

import (
	"math"
	"slices"
	"strconv"

	"golang.org/x/text/message"

	"github.com/tatianab/nightreign-notebook/internal/i18n"
	"github.com/tatianab/nightreign-notebook/internal/models"
)

const (
	// basicHeal is the flask's flat self heal without slow recovery.
	basicHeal = 0.6

	focusBuff       = 0.3
	spreadSelfHeal  = 0.5
	spreadAllyHeal  = 0.3
	spreadAllyFocus = 0.15
	boostMultiplier = 1.2

	slowImmediate     = 0.10
	slowSustained     = 0.01 * 81
	slowAllyImmediate = 0.05
	slowAllySustained = 0.01 * 41
)

// PriorityOrder is the fixed evaluation order of effect ids. Ids not listed
// here are ignored.
var PriorityOrder = []int{1, 2, 3, 4, 5, 6}

// rule applies one modifier to the calculation in progress.
type rule func(c *calculation, effect models.ModifierEffect)

var rules = map[models.EffectKind]rule{
	models.KindFocusRecoveryBuff:      applyFocusBuff,
	models.KindAllyHealSpread:         applySpread,
	models.KindRecoveryBoostPercent:   applyBoost,
	models.KindSlowRecoveryConversion: applySlowConversion,
}

// Engine computes flask recovery for a selection. It holds only read-only
// catalog data and is safe for concurrent use.
type Engine struct {
	effects map[int]models.ModifierEffect
	locale  string
}

func NewEngine(effects []models.ModifierEffect, locale string) *Engine {
	byID := make(map[int]models.ModifierEffect, len(effects))
	for _, e := range effects {
		byID[e.ID] = e
	}
	if !i18n.Supported(locale) {
		locale = i18n.Locales[0]
	}
	return &Engine{effects: byID, locale: locale}
}

// calculation is the mutable state of a single Calculate call.
type calculation struct {
	p      *message.Printer
	locale string

	selfHealth float64
	selfFocus  float64
	allyHealth float64
	allyFocus  float64

	slow            bool
	immediateBoosts int

	steps []string
}

func (c *calculation) step(key string, args ...interface{}) {
	c.steps = append(c.steps, c.p.Sprintf(key, args...))
}

// Calculate never fails: unknown characters count as zero stats and unknown
// effect ids are skipped.
func (e *Engine) Calculate(sel models.SelectionState) models.RecoveryResult {
	c := &calculation{
		p:          i18n.Printer(e.locale),
		locale:     e.locale,
		selfHealth: basicHeal,
	}

	ordered := e.ordered(sel.EffectIDs)
	for _, effect := range ordered {
		if effect.Kind == models.KindSlowRecoveryConversion {
			c.slow = true
		}
	}

	selfName := c.characterName(sel.Self)
	allyName := c.characterName(sel.Ally)

	c.step(i18n.TraceBaseHeader)
	c.step(i18n.TraceSelfBase, selfName, itoa(sel.Self.BaseHealth), itoa(sel.Self.BaseFocus))
	c.step(i18n.TraceAllyBase, allyName, itoa(sel.Ally.BaseHealth), itoa(sel.Ally.BaseFocus))
	if c.slow {
		c.step(i18n.TraceBasicSlow)
	} else {
		c.step(i18n.TraceBasicFlat, percent(c.selfHealth))
	}
	c.step(i18n.TraceApplyHeader)

	for _, effect := range ordered {
		if apply, ok := rules[effect.Kind]; ok {
			apply(c, effect)
		}
	}

	c.selfHealth = clamp(c.selfHealth)
	c.selfFocus = clamp(c.selfFocus)

	res := models.RecoveryResult{
		SelfHealth:        amount(sel.Self.BaseHealth, c.selfHealth),
		SelfFocus:         amount(sel.Self.BaseFocus, c.selfFocus),
		AllyHealth:        amount(sel.Ally.BaseHealth, c.allyHealth),
		AllyFocus:         amount(sel.Ally.BaseFocus, c.allyFocus),
		SelfHealthPct:     c.selfHealth,
		SelfFocusPct:      c.selfFocus,
		AllyHealthPct:     c.allyHealth,
		AllyFocusPct:      c.allyFocus,
		SelfHealthPercent: percent(c.selfHealth),
		SelfFocusPercent:  percent(c.selfFocus),
		AllyHealthPercent: percent(c.allyHealth),
		AllyFocusPercent:  percent(c.allyFocus),
	}

	c.step(i18n.TraceTotalHeader)
	c.step(i18n.TraceSelfHealth, selfName, itoa(sel.Self.BaseHealth), res.SelfHealthPercent, itoa(res.SelfHealth))
	if c.selfFocus > 0 {
		c.step(i18n.TraceSelfFocus, selfName, itoa(sel.Self.BaseFocus), res.SelfFocusPercent, itoa(res.SelfFocus))
	}
	if c.allyHealth > 0 {
		c.step(i18n.TraceAllyHealth, allyName, itoa(sel.Ally.BaseHealth), res.AllyHealthPercent, itoa(res.AllyHealth))
	}
	if c.allyFocus > 0 {
		c.step(i18n.TraceAllyFocus, allyName, itoa(sel.Ally.BaseFocus), res.AllyFocusPercent, itoa(res.AllyFocus))
	}

	res.Steps = c.steps
	return res
}

// ordered resolves the selected ids to catalog effects in priority order,
// dropping duplicates, unknown ids and ids outside PriorityOrder.
func (e *Engine) ordered(ids []int) []models.ModifierEffect {
	var out []models.ModifierEffect
	for _, id := range PriorityOrder {
		if !slices.Contains(ids, id) {
			continue
		}
		if effect, ok := e.effects[id]; ok {
			out = append(out, effect)
		}
	}
	return out
}

func applyFocusBuff(c *calculation, effect models.ModifierEffect) {
	c.selfFocus = focusBuff
	c.step(i18n.TraceFocusBuff, effect.LocalizedName(c.locale), percent(c.selfFocus))
}

// applySpread sets the self heal as an absolute value. It runs before any
// boost, so boosts multiply the spread value.
func applySpread(c *calculation, effect models.ModifierEffect) {
	c.allyHealth = spreadAllyHeal
	if c.selfFocus != 0 {
		c.allyFocus = spreadAllyFocus
	}
	if c.slow {
		c.step(i18n.TraceSpreadSlow, effect.LocalizedName(c.locale))
		return
	}
	before := c.selfHealth
	c.selfHealth = spreadSelfHeal
	c.step(i18n.TraceSpread, effect.LocalizedName(c.locale), percent(before), percent(c.selfHealth), percent(c.allyHealth))
}

// applyBoost multiplies the flat heal by 1.2. Under slow recovery it only
// counts toward the immediate part of the slow heal, and every boost id
// logs the same mark line.
func applyBoost(c *calculation, effect models.ModifierEffect) {
	name := effect.LocalizedName(c.locale)
	if c.slow {
		c.immediateBoosts++
		c.step(i18n.TraceBoostMarked, name)
		return
	}
	before := c.selfHealth
	boosted := before * boostMultiplier
	line := c.p.Sprintf(i18n.TraceBoost, name, percent(before), percent(boosted))
	if boosted > 1 {
		line += c.p.Sprintf(i18n.TraceCapped)
		boosted = 1
	}
	c.selfHealth = boosted
	c.steps = append(c.steps, line)
}

// applySlowConversion replaces the flat heal with immediate + sustained
// healing, and the spread ally heal with its slow variant.
func applySlowConversion(c *calculation, _ models.ModifierEffect) {
	immediate := slowImmediate * math.Pow(boostMultiplier, float64(c.immediateBoosts))
	line := c.p.Sprintf(i18n.TraceSlowImmediate, itoa(c.immediateBoosts), percent(min(immediate, 1)))
	if immediate > 1 {
		line += c.p.Sprintf(i18n.TraceCapped)
		immediate = 1
	}
	c.steps = append(c.steps, line)
	c.step(i18n.TraceSlowSustained, percent(slowSustained))

	total := immediate + slowSustained
	c.selfHealth = min(total, 1)
	line = c.p.Sprintf(i18n.TraceSlowTotal, percent(c.selfHealth))
	if total > 1 {
		line += c.p.Sprintf(i18n.TraceCapped)
	}
	c.steps = append(c.steps, line)

	if c.allyHealth != 0 {
		c.allyHealth = slowAllyImmediate + slowAllySustained
		c.step(i18n.TraceSlowAlly, percent(c.allyHealth))
	}
}

func (c *calculation) characterName(ch models.Character) string {
	if name := ch.LocalizedName(c.locale); name != "" {
		return name
	}
	return c.p.Sprintf(i18n.TraceUnknownCharacter)
}

func clamp(v float64) float64 {
	return max(0, min(v, 1))
}

// amount floors base*pct.
func amount(base int, pct float64) int {
	return int(math.Floor(float64(base) * pct))
}

func percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 0, 64)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
