package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Character is a playable character with its level 15 base stats.
type Character struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	NameEN     string `yaml:"name_en"`
	BaseHealth int    `yaml:"base_health"`
	BaseFocus  int    `yaml:"base_focus"`
}

// LocalizedName returns the English name for English locales and the
// catalog name otherwise.
func (c Character) LocalizedName(locale string) string {
	return localized(c.Name, c.NameEN, locale)
}

// EffectKind selects the recovery rule a modifier applies.
type EffectKind int

const (
	KindUnknown EffectKind = iota
	KindFocusRecoveryBuff
	KindAllyHealSpread
	KindRecoveryBoostPercent
	KindSlowRecoveryConversion
)

var effectKindNames = map[EffectKind]string{
	KindFocusRecoveryBuff:      "focus_recovery_buff",
	KindAllyHealSpread:         "ally_heal_spread",
	KindRecoveryBoostPercent:   "recovery_boost_percent",
	KindSlowRecoveryConversion: "slow_recovery_conversion",
}

func (k EffectKind) String() string {
	if name, ok := effectKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseEffectKind maps a catalog name to its kind.
func ParseEffectKind(s string) (EffectKind, error) {
	for kind, name := range effectKindNames {
		if name == s {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown effect kind %q", s)
}

func (k EffectKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *EffectKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	kind, err := ParseEffectKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Target is who a modifier mainly benefits.
type Target string

const (
	TargetSelf Target = "self"
	TargetAlly Target = "ally"
)

// ModifierEffect is one selectable recovery modifier.
type ModifierEffect struct {
	ID          int        `yaml:"id"`
	Name        string     `yaml:"name"`
	NameEN      string     `yaml:"name_en"`
	Description string     `yaml:"description"`
	Category    string     `yaml:"category"`
	AppliesTo   Target     `yaml:"applies_to"`
	Kind        EffectKind `yaml:"kind"`
}

func (e ModifierEffect) LocalizedName(locale string) string {
	return localized(e.Name, e.NameEN, locale)
}

// SelectionState is the user's current calculator input.
type SelectionState struct {
	Self      Character
	Ally      Character
	EffectIDs []int
}

// Has reports whether id is selected.
func (s SelectionState) Has(id int) bool {
	return slices.Contains(s.EffectIDs, id)
}

// Toggle selects id if absent and deselects it otherwise.
func (s *SelectionState) Toggle(id int) {
	if i := slices.Index(s.EffectIDs, id); i >= 0 {
		s.EffectIDs = slices.Delete(s.EffectIDs, i, i+1)
		return
	}
	s.Set(append(s.EffectIDs, id)...)
}

// Set replaces the selection. Duplicates are dropped and the ids kept sorted.
func (s *SelectionState) Set(ids ...int) {
	out := slices.Clone(ids)
	slices.Sort(out)
	s.EffectIDs = slices.Compact(out)
}

// RecoveryResult is the outcome of one flask use. Percent strings are whole
// numbers without the "%" sign, e.g. "60".
type RecoveryResult struct {
	SelfHealth int
	SelfFocus  int
	AllyHealth int
	AllyFocus  int

	SelfHealthPct float64
	SelfFocusPct  float64
	AllyHealthPct float64
	AllyFocusPct  float64

	SelfHealthPercent string
	SelfFocusPercent  string
	AllyHealthPercent string
	AllyFocusPercent  string

	Steps []string
}

// Boss is a night lord stat block. Health and resistance values are strings
// because some are listed as "immune" or a range.
type Boss struct {
	ID                   int     `yaml:"id"`
	Name                 string  `yaml:"name"`
	BaseHealth           string  `yaml:"base_health"`
	NightreignHealth     string  `yaml:"nightreign_health"`
	HealthMultiplier     string  `yaml:"health_multiplier"`
	NormalAbsorption     float64 `yaml:"normal_absorption"`
	SlashAbsorption      float64 `yaml:"slash_absorption"`
	StrikeAbsorption     float64 `yaml:"strike_absorption"`
	PierceAbsorption     float64 `yaml:"pierce_absorption"`
	MagicAbsorption      float64 `yaml:"magic_absorption"`
	FireAbsorption       float64 `yaml:"fire_absorption"`
	LightningAbsorption  float64 `yaml:"lightning_absorption"`
	HolyAbsorption       float64 `yaml:"holy_absorption"`
	PoisonResistance     string  `yaml:"poison_resistance"`
	ScarletRotResistance string  `yaml:"scarlet_rot_resistance"`
	BleedResistance      string  `yaml:"bleed_resistance"`
	FrostResistance      string  `yaml:"frost_resistance"`
	SleepResistance      string  `yaml:"sleep_resistance"`
	MadnessResistance    string  `yaml:"madness_resistance"`
	BasePoise            int     `yaml:"base_poise"`
}

// Absorptions returns the eight damage absorption values in display order.
func (b Boss) Absorptions() []Absorption {
	return []Absorption{
		{"normal", b.NormalAbsorption},
		{"slash", b.SlashAbsorption},
		{"strike", b.StrikeAbsorption},
		{"pierce", b.PierceAbsorption},
		{"magic", b.MagicAbsorption},
		{"fire", b.FireAbsorption},
		{"lightning", b.LightningAbsorption},
		{"holy", b.HolyAbsorption},
	}
}

// Absorption is a damage multiplier taken by a boss for one damage type.
type Absorption struct {
	DamageType string
	Value      float64
}

// AbsorptionClass buckets an absorption multiplier: above 1 the boss takes
// extra damage, below 1 it resists.
func AbsorptionClass(v float64) string {
	switch {
	case v > 1:
		return "weak"
	case v < 1:
		return "strong"
	default:
		return "normal"
	}
}

// Resistances returns the six status resistances in display order.
func (b Boss) Resistances() []Resistance {
	return []Resistance{
		{"poison", b.PoisonResistance},
		{"scarlet_rot", b.ScarletRotResistance},
		{"bleed", b.BleedResistance},
		{"frost", b.FrostResistance},
		{"sleep", b.SleepResistance},
		{"madness", b.MadnessResistance},
	}
}

// Resistance is the buildup a boss needs for one status effect. Value is
// a number, or a word such as "immune" when the status never procs.
type Resistance struct {
	Status string
	Value  string
}

// ResistanceClass buckets a status resistance into low (<= 154), medium
// (<= 252) or high (<= 542). Non-numeric and larger values have no class.
func ResistanceClass(value string) string {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	switch {
	case err != nil:
		return ""
	case n <= 154:
		return "low"
	case n <= 252:
		return "medium"
	case n <= 542:
		return "high"
	default:
		return ""
	}
}

// Entry is a relic, talisman or in-run passive entry.
type Entry struct {
	ID              string `yaml:"entry_id"`
	Name            string `yaml:"entry_name"`
	Type            string `yaml:"entry_type,omitempty"`
	Explanation     string `yaml:"explanation,omitempty"`
	Superposability string `yaml:"superposability,omitempty"`
	Talisman        string `yaml:"talisman,omitempty"`
	Notes           string `yaml:"notes,omitempty"`
}

// EntryKind names one entry table.
type EntryKind string

const (
	EntriesOutsider  EntryKind = "outsider"
	EntriesInGame    EntryKind = "in_game"
	EntriesTalisman  EntryKind = "talisman"
	EntriesDeepNight EntryKind = "deep_night"
)

// EntryKinds lists the entry tables in display order.
var EntryKinds = []EntryKind{EntriesOutsider, EntriesInGame, EntriesTalisman, EntriesDeepNight}

// ItemEffect is a consumable's description.
type ItemEffect struct {
	Name          string `yaml:"name"`
	Effect        string `yaml:"effect"`
	SingleGridQty string `yaml:"single_grid_qty"`
	Type          string `yaml:"type"`
}

// InvincibleFrame is the invulnerability window of an action, in frames.
type InvincibleFrame struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value int    `yaml:"value"`
}

// Weapon is a legendary weapon: its effect and the attack rating each
// character gets from it.
type Weapon struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Type        string         `yaml:"type"`
	Effect      string         `yaml:"effect"`
	Description string         `yaml:"description"`
	PoiseDamage string         `yaml:"poise_damage"`
	Ratings     map[string]int `yaml:"ratings"`
}

func localized(name, nameEN, locale string) string {
	if nameEN != "" && strings.HasPrefix(strings.ToLower(locale), "en") {
		return nameEN
	}
	return name
}

// LevelStats is a character's health, focus and stamina at one run level.
type LevelStats struct {
	Level int `yaml:"level"`
	HP    int `yaml:"hp"`
	FP    int `yaml:"fp"`
	ST    int `yaml:"st"`
}

// CharacterLevels is the level progression of one character.
type CharacterLevels struct {
	ID     string       `yaml:"id"`
	Levels []LevelStats `yaml:"levels"`
}

// At returns the stats for level, if listed.
func (c CharacterLevels) At(level int) (LevelStats, bool) {
	i := slices.IndexFunc(c.Levels, func(l LevelStats) bool { return l.Level == level })
	if i < 0 {
		return LevelStats{}, false
	}
	return c.Levels[i], true
}
