// Package i18n holds the notebook's static string tables. Each locale file
// registers its strings with x/text/message in init; callers format through a
// Printer for the configured locale.
package i18n

import (
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	ZhTW = "zh-TW"
	EN   = "en"
)

// Locales lists the supported locales; the first is the default.
var Locales = []string{ZhTW, EN}

// Supported reports whether locale has a string table.
func Supported(locale string) bool {
	return slices.Contains(Locales, locale)
}

// Printer returns a printer for locale, falling back to the default locale.
func Printer(locale string) *message.Printer {
	if !Supported(locale) {
		locale = Locales[0]
	}
	return message.NewPrinter(language.MustParse(locale))
}

// Trace keys. Numeric arguments are passed preformatted as strings so the
// printer does not apply locale digit grouping.
const (
	TraceBaseHeader       = "trace.base.header"
	TraceSelfBase         = "trace.base.self"
	TraceAllyBase         = "trace.base.ally"
	TraceBasicFlat        = "trace.basic.flat"
	TraceBasicSlow        = "trace.basic.slow"
	TraceApplyHeader      = "trace.apply.header"
	TraceFocusBuff        = "trace.apply.focus_buff"
	TraceSpread           = "trace.apply.spread"
	TraceSpreadSlow       = "trace.apply.spread_slow"
	TraceBoost            = "trace.apply.boost"
	TraceBoostMarked      = "trace.apply.boost_marked"
	TraceSlowImmediate    = "trace.apply.slow_immediate"
	TraceSlowSustained    = "trace.apply.slow_sustained"
	TraceSlowTotal        = "trace.apply.slow_total"
	TraceSlowAlly         = "trace.apply.slow_ally"
	TraceCapped           = "trace.capped"
	TraceTotalHeader      = "trace.total.header"
	TraceSelfHealth       = "trace.total.self_health"
	TraceSelfFocus        = "trace.total.self_focus"
	TraceAllyHealth       = "trace.total.ally_health"
	TraceAllyFocus        = "trace.total.ally_focus"
	TraceUnknownCharacter = "trace.unknown_character"
)

// UI keys.
const (
	UITitle           = "ui.title"
	UITabMechanics    = "ui.tab.mechanics"
	UITabCharacters   = "ui.tab.characters"
	UITabEntries      = "ui.tab.entries"
	UITabBosses       = "ui.tab.bosses"
	UITabWeapons      = "ui.tab.weapons"
	UILoading         = "ui.loading"
	UILoadFailed      = "ui.load_failed"
	UIHelp            = "ui.help"
	UICalcHelp        = "ui.calc.help"
	UICalcSelf        = "ui.calc.self"
	UICalcAlly        = "ui.calc.ally"
	UICalcButton      = "ui.calc.button"
	UICalcEmpty       = "ui.calc.empty"
	UICalcResult      = "ui.calc.result"
	UICalcSteps       = "ui.calc.steps"
	UIColTarget       = "ui.col.target"
	UIColHealth       = "ui.col.health"
	UIColFocus        = "ui.col.focus"
	UIColName         = "ui.col.name"
	UIColType         = "ui.col.type"
	UIColEffect       = "ui.col.effect"
	UIColQty          = "ui.col.qty"
	UIColExplanation  = "ui.col.explanation"
	UIColStacking     = "ui.col.stacking"
	UIColPoise        = "ui.col.poise"
	UIColMultiplier   = "ui.col.multiplier"
	UIColFrames       = "ui.col.frames"
	UIColNightHealth  = "ui.col.night_health"
	UIColBasePoise    = "ui.col.base_poise"
	UIItemEffects     = "ui.item_effects"
	UIInvincible      = "ui.invincible"
	UIEntriesHelp     = "ui.entries.help"
	UIEntriesSearch   = "ui.entries.search"
	UIEntriesCount    = "ui.entries.count"
	UIEntriesAllTypes = "ui.entries.all_types"
	UIAbsorptionChart = "ui.bosses.chart"
	UIBossesHelp      = "ui.bosses.help"
	UIResistances     = "ui.bosses.resistances"
	UIColBaseHealth   = "ui.col.base_health"
	UILevelStats      = "ui.characters.levels"
	UICharactersHelp  = "ui.characters.help"
	UIStatHP          = "ui.stat.hp"
	UIStatFP          = "ui.stat.fp"
	UIStatST          = "ui.stat.st"
	UIEntriesAnyStack = "ui.entries.any_stacking"
	UIEntriesAnyChar  = "ui.entries.any_character"
	UIItemsHelp       = "ui.items.help"
	UIItemsSearch     = "ui.items.search"
	UIThemeLight      = "ui.theme.light"
	UIThemeDark       = "ui.theme.dark"
	UISelf            = "ui.self"
	UIAlly            = "ui.ally"
)

// EntryKindKey is the UI key for an entry table name.
func EntryKindKey(kind string) string {
	return "ui.entries.kind." + kind
}

// DamageTypeKey is the UI key for a damage type label.
func DamageTypeKey(damageType string) string {
	return "ui.damage." + damageType
}

// StatusKey is the UI key for a status effect label.
func StatusKey(status string) string {
	return "ui.status." + status
}
