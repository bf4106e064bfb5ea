package dataset

import (
	"slices"
	"strings"

	"github.com/tatianab/nightreign-notebook/internal/models"
)

// EntryFilter narrows an entry table. Empty fields do not filter.
type EntryFilter struct {
	// Query is split on whitespace; every term must appear in some field.
	Query           string
	Types           []string
	Superposability []string
	// Character keeps entries whose name or explanation mention it.
	Character string
}

func FilterEntries(entries []models.Entry, f EntryFilter) []models.Entry {
	terms := searchTerms(f.Query)
	character := strings.TrimSpace(f.Character)

	var out []models.Entry
	for _, e := range entries {
		if len(f.Types) > 0 && !slices.Contains(f.Types, e.Type) {
			continue
		}
		if character != "" && !strings.Contains(e.Name, character) && !strings.Contains(e.Explanation, character) {
			continue
		}
		if len(f.Superposability) > 0 && !slices.Contains(f.Superposability, e.Superposability) {
			continue
		}
		if !matchAll(terms, e.Name, e.Explanation, e.Type, e.Superposability, e.Talisman, e.ID) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func FilterItemEffects(items []models.ItemEffect, query string, types []string) []models.ItemEffect {
	terms := searchTerms(query)

	var out []models.ItemEffect
	for _, item := range items {
		if len(types) > 0 && !slices.Contains(types, item.Type) {
			continue
		}
		if !matchAll(terms, item.Name, item.Effect, item.Type, item.SingleGridQty) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// EntryTypes returns the distinct entry types in first-seen order.
func EntryTypes(entries []models.Entry) []string {
	return distinct(entries, func(e models.Entry) string { return e.Type })
}

// EntrySuperposabilities returns the distinct stacking rules in first-seen
// order.
func EntrySuperposabilities(entries []models.Entry) []string {
	return distinct(entries, func(e models.Entry) string { return e.Superposability })
}

// ItemEffectTypes returns the distinct item types in first-seen order.
func ItemEffectTypes(items []models.ItemEffect) []string {
	return distinct(items, func(i models.ItemEffect) string { return i.Type })
}

func distinct[T any](items []T, field func(T) string) []string {
	var out []string
	for _, item := range items {
		if v := field(item); v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func searchTerms(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

func matchAll(terms []string, fields ...string) bool {
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	for _, term := range terms {
		if !slices.ContainsFunc(fields, func(f string) bool { return strings.Contains(f, term) }) {
			return false
		}
	}
	return true
}
