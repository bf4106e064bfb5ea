package dataset

import (
	"context"
	"io/fs"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/nightreign-notebook/internal/models"
)

// fixtureFS copies the embedded fixtures into a MapFS and applies overrides.
// An empty override removes the file.
func fixtureFS(t *testing.T, overrides map[string]string) fstest.MapFS {
	t.Helper()

	src := Embedded()
	files, err := fs.ReadDir(src, ".")
	require.NoError(t, err)

	out := fstest.MapFS{}
	for _, f := range files {
		data, err := fs.ReadFile(src, f.Name())
		require.NoError(t, err)
		out[f.Name()] = &fstest.MapFile{Data: data}
	}
	for name, body := range overrides {
		if body == "" {
			delete(out, name)
			continue
		}
		out[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return out
}

// countingFS counts opens of one file and can hold them until released.
type countingFS struct {
	fs.FS
	name  string
	opens atomic.Int32
	gate  chan struct{}
}

func (c *countingFS) Open(name string) (fs.File, error) {
	if name == c.name {
		c.opens.Add(1)
		if c.gate != nil {
			<-c.gate
		}
	}
	return c.FS.Open(name)
}

func TestLoadEmbedded(t *testing.T) {
	t.Parallel()

	d, err := Load(Embedded())
	require.NoError(t, err)

	assert.Len(t, d.Characters(), 8)
	assert.Len(t, d.Bosses(), 8)
	assert.Len(t, d.Weapons(), 3)
	assert.NotEmpty(t, d.ItemEffects())
	assert.NotEmpty(t, d.InvincibleFrames())

	mods := d.Modifiers()
	require.Len(t, mods, 6)
	wantKinds := []models.EffectKind{
		models.KindFocusRecoveryBuff,
		models.KindAllyHealSpread,
		models.KindRecoveryBoostPercent,
		models.KindRecoveryBoostPercent,
		models.KindRecoveryBoostPercent,
		models.KindSlowRecoveryConversion,
	}
	for i, m := range mods {
		assert.Equal(t, i+1, m.ID)
		assert.Equal(t, wantKinds[i], m.Kind, "modifier %d", m.ID)
	}

	counts := d.Counts()
	assert.Equal(t, 8, counts["characters"])
	assert.Equal(t, 8, counts["character_levels"])
	assert.Equal(t, 4, counts["deep_night_entries"])
}

func TestDeepNightFlattening(t *testing.T) {
	t.Parallel()

	d, err := Load(Embedded())
	require.NoError(t, err)

	entries := d.Entries(models.EntriesDeepNight)
	require.Len(t, entries, 4)
	ids := []string{entries[0].ID, entries[1].ID, entries[2].ID, entries[3].ID}
	assert.Equal(t, []string{"6000000", "6000100", "6010000", "6020000"}, ids)
	assert.Equal(t, "每局限一次", entries[3].Notes)
}

func TestCharacterLookup(t *testing.T) {
	t.Parallel()

	d, err := Load(Embedded())
	require.NoError(t, err)

	wylder, ok := d.Character("wylder")
	require.True(t, ok)
	assert.Equal(t, 1120, wylder.BaseHealth)
	assert.Equal(t, 140, wylder.BaseFocus)

	_, ok = d.Character("nameless")
	assert.False(t, ok)
}

func TestCharacterLevels(t *testing.T) {
	t.Parallel()

	d, err := Load(Embedded())
	require.NoError(t, err)

	levels := d.CharacterLevels()
	require.Len(t, levels, 8)
	for _, l := range levels {
		c, ok := d.Character(l.ID)
		require.True(t, ok, "levels for unknown character %s", l.ID)
		assert.Len(t, l.Levels, 15, l.ID)

		top, ok := l.At(15)
		require.True(t, ok, l.ID)
		assert.Equal(t, c.BaseHealth, top.HP, l.ID)
		assert.Equal(t, c.BaseFocus, top.FP, l.ID)

		first, ok := l.At(1)
		require.True(t, ok, l.ID)
		assert.Less(t, first.HP, top.HP, l.ID)
	}

	levels[0].Levels[0].HP = 1
	assert.NotEqual(t, 1, d.CharacterLevels()[0].Levels[0].HP)
}

func TestGettersReturnCopies(t *testing.T) {
	t.Parallel()

	d, err := Load(Embedded())
	require.NoError(t, err)

	chars := d.Characters()
	chars[0].BaseHealth = 1
	weapons := d.Weapons()
	weapons[0].Ratings["wylder"] = 0

	assert.NotEqual(t, 1, d.Characters()[0].BaseHealth)
	assert.NotZero(t, d.Weapons()[0].Ratings["wylder"])
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		overrides map[string]string
		wantErr   string
	}{
		{
			name:      "missing file",
			overrides: map[string]string{"bosses.yaml": ""},
			wantErr:   "reading bosses.yaml",
		},
		{
			name:      "bad yaml",
			overrides: map[string]string{"weapons.yaml": "- id: [\n"},
			wantErr:   "parsing weapons.yaml",
		},
		{
			name:      "unknown kind",
			overrides: map[string]string{"recover_effects.yaml": "- id: 1\n  kind: heal_everything\n"},
			wantErr:   "unknown effect kind",
		},
		{
			name:      "levels for unknown character",
			overrides: map[string]string{"character_levels.yaml": "- id: nameless\n  levels:\n    - {level: 1, hp: 1, fp: 1, st: 1}\n"},
			wantErr:   `unknown character "nameless"`,
		},
		{
			name:      "duplicate modifier",
			overrides: map[string]string{"recover_effects.yaml": "- id: 3\n  kind: recovery_boost_percent\n- id: 3\n  kind: recovery_boost_percent\n"},
			wantErr:   "duplicate id 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(fixtureFS(t, tt.overrides))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStoreSharesOneLoad(t *testing.T) {
	t.Parallel()

	fsys := &countingFS{FS: fixtureFS(t, nil), name: "characters.yaml"}
	store := NewStore(fsys, zerolog.Nop())

	const callers = 16
	results := make([]*Datasets, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := store.Wait(context.Background())
			assert.NoError(t, err)
			results[i] = d
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), fsys.opens.Load())
	for _, d := range results {
		assert.Same(t, results[0], d)
	}
	assert.True(t, store.Loaded())
}

func TestStoreFailureIsSticky(t *testing.T) {
	t.Parallel()

	fsys := &countingFS{FS: fixtureFS(t, map[string]string{"characters.yaml": "{{"}), name: "characters.yaml"}
	store := NewStore(fsys, zerolog.Nop())

	_, err := store.Wait(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preload datasets")

	_, again := store.Wait(context.Background())
	assert.Equal(t, err, again)
	assert.Equal(t, int32(1), fsys.opens.Load())
	assert.False(t, store.Loaded())
}

func TestStoreWaitHonorsContext(t *testing.T) {
	t.Parallel()

	gate := make(chan struct{})
	fsys := &countingFS{FS: fixtureFS(t, nil), name: "characters.yaml", gate: gate}
	store := NewStore(fsys, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := store.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, store.Loaded())

	close(gate)
	d, err := store.Wait(context.Background())
	require.NoError(t, err)
	assert.Len(t, d.Characters(), 8)
}
