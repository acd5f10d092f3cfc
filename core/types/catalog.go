// Package types - Catalog, selection and template containers
package types

import (
	"sort"
	"strconv"
	"strings"
)

// Catalog maps each category to its records keyed by id
type Catalog map[Category]map[string]ComponentRecord

// Lookup returns the record for an id
func (c Catalog) Lookup(category Category, id string) (ComponentRecord, bool) {
	if c == nil || id == "" {
		return ComponentRecord{}, false
	}
	rec, ok := c[category][id]
	return rec, ok
}

// Records returns a category's records ordered by price, then id
func (c Catalog) Records(category Category) []ComponentRecord {
	entries := c[category]
	out := make([]ComponentRecord, 0, len(entries))
	for _, rec := range entries {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of records across all categories
func (c Catalog) Len() int {
	n := 0
	for _, entries := range c {
		n += len(entries)
	}
	return n
}

// Clone returns a deep copy
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for category, entries := range c {
		copied := make(map[string]ComponentRecord, len(entries))
		for id, rec := range entries {
			copied[id] = rec.Clone()
		}
		out[category] = copied
	}
	return out
}

// Put stores a record under its category, replacing any previous entry
func (c Catalog) Put(category Category, rec ComponentRecord) {
	if c[category] == nil {
		c[category] = make(map[string]ComponentRecord)
	}
	c[category][rec.ID] = rec.Clone()
}

// Overrides is a patch-set keyed by category and id
type Overrides map[Category]map[string]RecordPatch

// Put stores a patch, replacing any previous patch for the id
func (o Overrides) Put(category Category, id string, patch RecordPatch) {
	if o[category] == nil {
		o[category] = make(map[string]RecordPatch)
	}
	o[category][id] = patch
}

// Selection maps categories to chosen component ids
type Selection map[Category]string

// Get returns the chosen id for a category
func (s Selection) Get(category Category) (string, bool) {
	id, ok := s[category]
	return id, ok && id != ""
}

// Clone returns a copy of the selection
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for category, id := range s {
		if id != "" {
			out[category] = id
		}
	}
	return out
}

// With returns a copy with category set to id; an empty id clears it
func (s Selection) With(category Category, id string) Selection {
	out := s.Clone()
	if id == "" {
		delete(out, category)
	} else {
		out[category] = id
	}
	return out
}

// Without returns a copy with the given categories cleared
func (s Selection) Without(categories ...Category) Selection {
	out := s.Clone()
	for _, category := range categories {
		delete(out, category)
	}
	return out
}

// Equal reports whether both selections choose the same ids
func (s Selection) Equal(other Selection) bool {
	a, b := s.Clone(), other.Clone()
	if len(a) != len(b) {
		return false
	}
	for category, id := range a {
		if b[category] != id {
			return false
		}
	}
	return true
}

// ConfigTemplate holds curated selections keyed by brand, game and budget key
type ConfigTemplate map[Brand]map[string]map[string]Selection

// GameKey is the stored form of a game id: trimmed and lower-cased
func GameKey(game string) string {
	return strings.ToLower(strings.TrimSpace(game))
}

// Budgets returns the budget-keyed selections for a brand and game
func (t ConfigTemplate) Budgets(brand Brand, game string) (map[string]Selection, bool) {
	games, ok := t[brand]
	if !ok {
		return nil, false
	}
	budgets, ok := games[GameKey(game)]
	return budgets, ok && len(budgets) > 0
}

// Put stores a selection under brand, game and budget key
func (t ConfigTemplate) Put(brand Brand, game, budgetKey string, sel Selection) {
	game = GameKey(game)
	if t[brand] == nil {
		t[brand] = make(map[string]map[string]Selection)
	}
	if t[brand][game] == nil {
		t[brand][game] = make(map[string]Selection)
	}
	t[brand][game][budgetKey] = sel.Clone()
}

// Delete removes one triple, pruning empty parents. It reports whether
// anything was removed.
func (t ConfigTemplate) Delete(brand Brand, game, budgetKey string) bool {
	game = GameKey(game)
	budgets, ok := t[brand][game]
	if !ok {
		return false
	}
	if _, ok := budgets[budgetKey]; !ok {
		return false
	}
	delete(budgets, budgetKey)
	if len(budgets) == 0 {
		delete(t[brand], game)
	}
	if len(t[brand]) == 0 {
		delete(t, brand)
	}
	return true
}

// BudgetKey formats a budget tier as a template key ("15M")
func BudgetKey(tier int) string {
	return strconv.Itoa(tier) + "M"
}

// ParseBudgetKey parses a template key like "15M" into its tier
func ParseBudgetKey(key string) (int, bool) {
	s := strings.TrimSpace(key)
	s = strings.TrimSuffix(strings.TrimSuffix(s, "M"), "m")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Clone returns a deep copy of the template tree
func (t ConfigTemplate) Clone() ConfigTemplate {
	out := make(ConfigTemplate, len(t))
	for brand, games := range t {
		for game, budgets := range games {
			for key, sel := range budgets {
				out.Put(brand, game, key, sel)
			}
		}
	}
	return out
}
