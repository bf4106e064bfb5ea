package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tatianab/nightreign-notebook/internal/config"
	"github.com/tatianab/nightreign-notebook/internal/dataset"
	"github.com/tatianab/nightreign-notebook/internal/engine"
	"github.com/tatianab/nightreign-notebook/internal/logging"
	"github.com/tatianab/nightreign-notebook/internal/models"
)

// Characters to simulate, overridable as the first two arguments.
const (
	selfID = "wylder"
	allyID = "duchess"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logging.Console(cfg.Level())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store := dataset.NewStore(dataset.Embedded(), log)
	data, err := store.Wait(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("loading datasets")
	}

	self, ally := selfID, allyID
	if len(os.Args) > 2 {
		self, ally = os.Args[1], os.Args[2]
	}
	selfChar, ok := data.Character(self)
	if !ok {
		log.Warn().Str("character", self).Msg("unknown character, using zero stats")
	}
	allyChar, ok := data.Character(ally)
	if !ok {
		log.Warn().Str("character", ally).Msg("unknown character, using zero stats")
	}

	effects := data.Modifiers()
	eng := engine.NewEngine(effects, cfg.Locale)

	// Every subset of the catalog, in bitmask order.
	total := 1 << len(effects)
	for mask := 0; mask < total; mask++ {
		sel := models.SelectionState{Self: selfChar, Ally: allyChar}
		var names []string
		for i, e := range effects {
			if mask&(1<<i) != 0 {
				sel.Toggle(e.ID)
				names = append(names, e.LocalizedName(cfg.Locale))
			}
		}

		res := eng.Calculate(sel)
		fmt.Printf("--- Combination %d/%d: %v ---\n", mask+1, total, sel.EffectIDs)
		if len(names) > 0 {
			fmt.Printf("Effects: %s\n", strings.Join(names, ", "))
		}
		fmt.Printf("Self: health %d (%s%%), focus %d (%s%%)\n", res.SelfHealth, res.SelfHealthPercent, res.SelfFocus, res.SelfFocusPercent)
		fmt.Printf("Ally: health %d (%s%%), focus %d (%s%%)\n", res.AllyHealth, res.AllyHealthPercent, res.AllyFocus, res.AllyFocusPercent)
		for _, step := range res.Steps {
			fmt.Println("  " + step)
		}
		fmt.Println()

		log.Debug().Ints("effects", sel.EffectIDs).Int("self_health", res.SelfHealth).Msg("combination evaluated")
	}
	log.Info().Int("combinations", total).Msg("simulation finished")
}
