// Package dataset loads the notebook's static game tables. The tables are
// read-only fixtures parsed once per process and shared by every view.
package dataset

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/tatianab/nightreign-notebook/internal/models"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

// Embedded returns the fixture set compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(fixtures, "fixtures")
	if err != nil {
		panic(err)
	}
	return sub
}

// Datasets is the parsed fixture set. Getters return copies.
type Datasets struct {
	characters  []models.Character
	levels      []models.CharacterLevels
	modifiers   []models.ModifierEffect
	bosses      []models.Boss
	entries     map[models.EntryKind][]models.Entry
	itemEffects []models.ItemEffect
	frames      []models.InvincibleFrame
	weapons     []models.Weapon
}

func (d *Datasets) Characters() []models.Character { return slices.Clone(d.characters) }

// Character looks up a character by id.
func (d *Datasets) Character(id string) (models.Character, bool) {
	i := slices.IndexFunc(d.characters, func(c models.Character) bool { return c.ID == id })
	if i < 0 {
		return models.Character{}, false
	}
	return d.characters[i], true
}

// CharacterLevels returns the per-level stat tables in catalog order.
func (d *Datasets) CharacterLevels() []models.CharacterLevels {
	out := slices.Clone(d.levels)
	for i := range out {
		out[i].Levels = slices.Clone(out[i].Levels)
	}
	return out
}

func (d *Datasets) Modifiers() []models.ModifierEffect { return slices.Clone(d.modifiers) }

func (d *Datasets) Bosses() []models.Boss { return slices.Clone(d.bosses) }

func (d *Datasets) Entries(kind models.EntryKind) []models.Entry {
	return slices.Clone(d.entries[kind])
}

func (d *Datasets) ItemEffects() []models.ItemEffect { return slices.Clone(d.itemEffects) }

func (d *Datasets) InvincibleFrames() []models.InvincibleFrame { return slices.Clone(d.frames) }

func (d *Datasets) Weapons() []models.Weapon {
	out := slices.Clone(d.weapons)
	for i := range out {
		out[i].Ratings = maps.Clone(out[i].Ratings)
	}
	return out
}

// Counts returns the number of records per dataset, keyed by fixture name.
func (d *Datasets) Counts() map[string]int {
	counts := map[string]int{
		"characters":        len(d.characters),
		"character_levels":  len(d.levels),
		"recover_effects":   len(d.modifiers),
		"bosses":            len(d.bosses),
		"item_effects":      len(d.itemEffects),
		"invincible_frames": len(d.frames),
		"weapons":           len(d.weapons),
	}
	for kind, entries := range d.entries {
		counts[string(kind)+"_entries"] = len(entries)
	}
	return counts
}

// rawEntry accepts the deep-night tables' alternate id key.
type rawEntry struct {
	models.Entry `yaml:",inline"`
	AltID        string `yaml:"entry_entry_id"`
}

// Load parses every fixture in fsys. Files are parsed in parallel and any
// failure fails the whole load.
func Load(fsys fs.FS) (*Datasets, error) {
	var (
		d                           Datasets
		outsider, inGame, talismans []models.Entry
		deepNight                   []yaml.Node
	)

	g := new(errgroup.Group)
	decode := func(name string, into any) {
		g.Go(func() error { return decodeFile(fsys, name, into) })
	}
	decode("characters.yaml", &d.characters)
	decode("character_levels.yaml", &d.levels)
	decode("recover_effects.yaml", &d.modifiers)
	decode("bosses.yaml", &d.bosses)
	decode("outsider_entries.yaml", &outsider)
	decode("in_game_entries.yaml", &inGame)
	decode("talisman_entries.yaml", &talismans)
	decode("deep_night_entries.yaml", &deepNight)
	decode("item_effects.yaml", &d.itemEffects)
	decode("invincible_frames.yaml", &d.frames)
	decode("weapons.yaml", &d.weapons)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	flat, err := flattenGroups(deepNight)
	if err != nil {
		return nil, fmt.Errorf("deep_night_entries.yaml: %w", err)
	}
	d.entries = map[models.EntryKind][]models.Entry{
		models.EntriesOutsider:  outsider,
		models.EntriesInGame:    inGame,
		models.EntriesTalisman:  talismans,
		models.EntriesDeepNight: flat,
	}

	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeFile(fsys fs.FS, name string, into any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, into); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// flattenGroups turns a list of {key: entry} maps into one entry list, in
// file order. Values that are not mappings are skipped.
func flattenGroups(groups []yaml.Node) ([]models.Entry, error) {
	var out []models.Entry
	for _, group := range groups {
		if group.Kind != yaml.MappingNode {
			continue
		}
		for i := 1; i < len(group.Content); i += 2 {
			value := group.Content[i]
			if value.Kind != yaml.MappingNode {
				continue
			}
			var raw rawEntry
			if err := value.Decode(&raw); err != nil {
				return nil, err
			}
			if raw.ID == "" {
				raw.ID = raw.AltID
			}
			out = append(out, raw.Entry)
		}
	}
	return out, nil
}

func (d *Datasets) validate() error {
	seenChars := make(map[string]bool, len(d.characters))
	for _, c := range d.characters {
		if seenChars[c.ID] {
			return fmt.Errorf("characters.yaml: duplicate id %q", c.ID)
		}
		seenChars[c.ID] = true
	}
	seenLevels := make(map[string]bool, len(d.levels))
	for _, l := range d.levels {
		if !seenChars[l.ID] {
			return fmt.Errorf("character_levels.yaml: unknown character %q", l.ID)
		}
		if seenLevels[l.ID] {
			return fmt.Errorf("character_levels.yaml: duplicate id %q", l.ID)
		}
		seenLevels[l.ID] = true
	}
	seenMods := make(map[int]bool, len(d.modifiers))
	for _, m := range d.modifiers {
		if seenMods[m.ID] {
			return fmt.Errorf("recover_effects.yaml: duplicate id %d", m.ID)
		}
		seenMods[m.ID] = true
	}
	return nil
}

// Store loads the datasets exactly once. Concurrent callers share the same
// load; a failed load is not retried.
type Store struct {
	fsys fs.FS
	log  zerolog.Logger

	once sync.Once
	done chan struct{}
	data *Datasets
	err  error
}

func NewStore(fsys fs.FS, log zerolog.Logger) *Store {
	return &Store{
		fsys: fsys,
		log:  log.With().Str("component", "dataset").Logger(),
		done: make(chan struct{}),
	}
}

// Preload starts loading in the background. Calling it again has no effect.
func (s *Store) Preload() {
	s.once.Do(func() { go s.load() })
}

func (s *Store) load() {
	defer close(s.done)

	start := time.Now()
	s.log.Debug().Msg("preloading datasets")
	data, err := Load(s.fsys)
	if err != nil {
		s.err = fmt.Errorf("preload datasets: %w", err)
		s.log.Error().Err(err).Msg("dataset preload failed")
		return
	}
	s.data = data
	s.log.Info().
		Dur("took", time.Since(start)).
		Interface("counts", data.Counts()).
		Msg("datasets loaded")
}

// Wait starts the load if needed and blocks until it finishes or ctx is done.
// Every caller gets the same result.
func (s *Store) Wait(ctx context.Context) (*Datasets, error) {
	s.Preload()
	select {
	case <-s.done:
		return s.data, s.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Loaded reports whether a load has completed successfully.
func (s *Store) Loaded() bool {
	select {
	case <-s.done:
		return s.err == nil
	default:
		return false
	}
}
