package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, TraceBaseHeader, "------------- Base stats -------------")
	message.SetString(lang, TraceSelfBase, "[%s - self] base health: %s | base focus: %s")
	message.SetString(lang, TraceAllyBase, "[%s - ally] base health: %s | base focus: %s")
	message.SetString(lang, TraceBasicFlat, "[Basic heal] flask: %s%%")
	message.SetString(lang, TraceBasicSlow, "[Basic heal] slow recovery selected: the flat 60%% is replaced by immediate 10%% + sustained (1%% x 81)")
	message.SetString(lang, TraceApplyHeader, "------------ Applying effects ------------")
	message.SetString(lang, TraceFocusBuff, "[Apply] %s: focus recovery %s%%")
	message.SetString(lang, TraceSpread, "[Apply] %s: basic heal %s%% -> %s%%, allies recover %s%%")
	message.SetString(lang, TraceSpreadSlow, "[Apply] %s")
	message.SetString(lang, TraceBoost, "[Apply] %s: basic heal %s%% x 1.2 = %s%%")
	message.SetString(lang, TraceBoostMarked, "[Mark] %s: applies to the immediate 10%% only")
	message.SetString(lang, TraceSlowImmediate, "[Apply] slow recovery: immediate 10%% x 1.2^%s = %s%%")
	message.SetString(lang, TraceSlowSustained, "[Apply] slow recovery: sustained 1%% x 81 = %s%%")
	message.SetString(lang, TraceSlowTotal, "[Total] self recovery = immediate + sustained = %s%%")
	message.SetString(lang, TraceSlowAlly, "[Apply] slow recovery (ally): 5%% + (1%% x 41) = %s%%")
	message.SetString(lang, TraceCapped, " (capped at 100%%)")
	message.SetString(lang, TraceTotalHeader, "-------- One flask sip --------")
	message.SetString(lang, TraceSelfHealth, "[%s - self] health: %s x %s%% = %s")
	message.SetString(lang, TraceSelfFocus, "[%s - self] focus: %s x %s%% = %s")
	message.SetString(lang, TraceAllyHealth, "[%s - ally] health: %s x %s%% = %s")
	message.SetString(lang, TraceAllyFocus, "[%s - ally] focus: %s x %s%% = %s")
	message.SetString(lang, TraceUnknownCharacter, "unknown")

	message.SetString(lang, UITitle, "Nightreign Reference Notebook")
	message.SetString(lang, UITabMechanics, "Game mechanics")
	message.SetString(lang, UITabCharacters, "Characters")
	message.SetString(lang, UITabEntries, "Entries")
	message.SetString(lang, UITabBosses, "Night lords")
	message.SetString(lang, UITabWeapons, "Legendary weapons")
	message.SetString(lang, UILoading, "Loading data, please wait...")
	message.SetString(lang, UILoadFailed, "Failed to load data, restart to try again: %s")
	message.SetString(lang, UIHelp, "tab/1-5 switch page · t toggle theme · q quit")
	message.SetString(lang, UICalcHelp, "↑/↓ move · ←/→ change character · space toggle effect · enter calculate")
	message.SetString(lang, UICalcSelf, "My character")
	message.SetString(lang, UICalcAlly, "Ally character")
	message.SetString(lang, UICalcButton, "Calculate recovery")
	message.SetString(lang, UICalcEmpty, "Pick effects and press enter to calculate")
	message.SetString(lang, UICalcResult, "Result")
	message.SetString(lang, UICalcSteps, "Steps")
	message.SetString(lang, UIColTarget, "Target")
	message.SetString(lang, UIColHealth, "Health")
	message.SetString(lang, UIColFocus, "Focus")
	message.SetString(lang, UIColName, "Name")
	message.SetString(lang, UIColType, "Type")
	message.SetString(lang, UIColEffect, "Effect")
	message.SetString(lang, UIColQty, "Per slot")
	message.SetString(lang, UIColExplanation, "Explanation")
	message.SetString(lang, UIColStacking, "Stacking")
	message.SetString(lang, UIColPoise, "Poise damage")
	message.SetString(lang, UIColMultiplier, "HP multiplier")
	message.SetString(lang, UIColFrames, "i-frames")
	message.SetString(lang, UIItemEffects, "Item effects")
	message.SetString(lang, UIInvincible, "Dodge invincibility frames")
	message.SetString(lang, UIEntriesHelp, "/ search · esc stop searching · [ ] switch table · f type · s stacking · c character")
	message.SetString(lang, UIEntriesSearch, "Type to search...")
	message.SetString(lang, UIEntriesCount, "%s entries")
	message.SetString(lang, UIEntriesAllTypes, "all types")
	message.SetString(lang, UIAbsorptionChart, "Damage absorption")
	message.SetString(lang, UIThemeLight, "light")
	message.SetString(lang, UIThemeDark, "dark")
	message.SetString(lang, UISelf, "self")
	message.SetString(lang, UIAlly, "ally")
	message.SetString(lang, EntryKindKey("outsider"), "Relic entries")
	message.SetString(lang, EntryKindKey("in_game"), "In-run entries")
	message.SetString(lang, EntryKindKey("talisman"), "Talisman entries")
	message.SetString(lang, EntryKindKey("deep_night"), "Deep night relic entries")
	message.SetString(lang, UIColNightHealth, "Nightreign HP")
	message.SetString(lang, UIColBasePoise, "Base poise")
	message.SetString(lang, UIBossesHelp, "↑/↓ choose a night lord")
	message.SetString(lang, DamageTypeKey("normal"), "Standard")
	message.SetString(lang, DamageTypeKey("slash"), "Slash")
	message.SetString(lang, DamageTypeKey("strike"), "Strike")
	message.SetString(lang, DamageTypeKey("pierce"), "Pierce")
	message.SetString(lang, DamageTypeKey("magic"), "Magic")
	message.SetString(lang, DamageTypeKey("fire"), "Fire")
	message.SetString(lang, DamageTypeKey("lightning"), "Lightning")
	message.SetString(lang, DamageTypeKey("holy"), "Holy")
	message.SetString(lang, UIResistances, "Status resistance")
	message.SetString(lang, UIColBaseHealth, "Base HP")
	message.SetString(lang, UILevelStats, "Health, focus and stamina by level")
	message.SetString(lang, UICharactersHelp, "[ ] switch stat")
	message.SetString(lang, UIStatHP, "HP")
	message.SetString(lang, UIStatFP, "FP")
	message.SetString(lang, UIStatST, "Stamina")
	message.SetString(lang, UIEntriesAnyStack, "any stacking")
	message.SetString(lang, UIEntriesAnyChar, "all characters")
	message.SetString(lang, UIItemsHelp, "/ search items · f filter type")
	message.SetString(lang, UIItemsSearch, "Search items...")
	message.SetString(lang, StatusKey("poison"), "Poison")
	message.SetString(lang, StatusKey("scarlet_rot"), "Scarlet rot")
	message.SetString(lang, StatusKey("bleed"), "Bleed")
	message.SetString(lang, StatusKey("frost"), "Frostbite")
	message.SetString(lang, StatusKey("sleep"), "Sleep")
	message.SetString(lang, StatusKey("madness"), "Madness")
}
