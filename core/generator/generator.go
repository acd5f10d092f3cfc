// Package generator synthesizes a complete parts selection from a budget,
// a CPU brand and a game.
//
// Curated templates are preferred: the template whose budget key is nearest
// the requested tier is returned verbatim. Without a template the selection
// is synthesized from heuristics over the catalog. A literal per-bracket
// list is used only when there is no catalog to reason about.
package generator

import (
	"sort"

	"go.uber.org/zap"

	"pcbuild/core/compat"
	"pcbuild/core/inference"
	"pcbuild/core/types"
	"pcbuild/internal/errors"
)

// Source names the path that produced a selection
type Source string

const (
	SourceTemplate  Source = "template"
	SourceHeuristic Source = "heuristic"
	SourceOffline   Source = "offline"
)

// Request is one generation input
type Request struct {
	// Budget is the tier in millions
	Budget int         `json:"budget"`
	Brand  types.Brand `json:"brand"`
	Game   string      `json:"game"`
}

// Validate checks request invariants
func (r Request) Validate() error {
	if r.Budget <= 0 {
		return errors.Inputf("budget must be a positive number of millions, got %d", r.Budget)
	}
	if !r.Brand.IsValid() {
		return errors.Inputf("unknown cpu brand %q (want intel or amd)", r.Brand)
	}
	return nil
}

// Result is a generated selection and how it was produced
type Result struct {
	Selection   types.Selection `json:"selection"`
	Source      Source          `json:"source"`
	TemplateKey string          `json:"templateKey,omitempty"`
}

// Generator produces selections from one catalog and template snapshot
type Generator struct {
	catalog    types.Catalog
	templates  types.ConfigTemplate
	heuristics Heuristics
	offline    bool
	logger     *zap.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithHeuristics replaces the default heuristics
func WithHeuristics(h Heuristics) Option {
	return func(g *Generator) {
		g.heuristics = h
	}
}

// WithLogger sets the logger used for path decisions
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithOffline forces the literal bracket fallback
func WithOffline(offline bool) Option {
	return func(g *Generator) {
		g.offline = offline
	}
}

// New creates a generator. The snapshots must not change during its use.
func New(c types.Catalog, t types.ConfigTemplate, opts ...Option) *Generator {
	g := &Generator{
		catalog:    c,
		templates:  t,
		heuristics: DefaultHeuristics(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a full selection for req
func (g *Generator) Generate(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	log := g.logger.With(zap.Int("budget_m", req.Budget), zap.Stringer("brand", req.Brand), zap.String("game", req.Game))

	if budgets, ok := g.templates.Budgets(req.Brand, req.Game); ok {
		keys := make([]string, 0, len(budgets))
		for k := range budgets {
			keys = append(keys, k)
		}
		if key, ok := NearestBudgetKey(keys, req.Budget); ok {
			log.Debug("using template", zap.String("template_key", key))
			return Result{Selection: budgets[key].Clone(), Source: SourceTemplate, TemplateKey: key}, nil
		}
	}

	if g.offline || len(g.catalog[types.CategoryCPU]) == 0 {
		log.Debug("no catalog data, using offline brackets")
		return Result{Selection: Offline(req.Brand, req.Budget), Source: SourceOffline}, nil
	}

	sel, err := g.synthesize(req)
	if err != nil {
		log.Warn("cannot generate configuration", zap.Error(err))
		return Result{}, err
	}
	log.Debug("synthesized configuration", zap.Int("parts", len(sel)))
	return Result{Selection: sel, Source: SourceHeuristic}, nil
}

// NearestBudgetKey picks the key whose tier is closest to tier. Keys are
// scanned in ascending order and a later key must be strictly closer, so
// ties go to the smaller budget. Unparseable keys are ignored.
func NearestBudgetKey(keys []string, tier int) (string, bool) {
	type entry struct {
		key  string
		tier int
	}
	entries := make([]entry, 0, len(keys))
	for _, k := range keys {
		if n, ok := types.ParseBudgetKey(k); ok {
			entries = append(entries, entry{k, n})
		}
	}
	if len(entries) == 0 {
		return "", false
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].tier != entries[j].tier {
			return entries[i].tier < entries[j].tier
		}
		return entries[i].key < entries[j].key
	})

	best := entries[0]
	bestDist := abs(best.tier - tier)
	for _, e := range entries[1:] {
		if d := abs(e.tier - tier); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best.key, true
}

func (g *Generator) synthesize(req Request) (types.Selection, error) {
	h := g.heuristics
	tier := req.Budget
	resolver := compat.NewResolver(g.catalog)

	cpuID := h.cpuFor(req.Brand, tier)
	if _, ok := g.catalog.Lookup(types.CategoryCPU, cpuID); !ok {
		return nil, errors.Newf(errors.TypeGeneration, "cannot generate configuration: cpu %s is not in the catalog", cpuID).
			WithContext("cpu", cpuID)
	}
	sel := types.Selection{types.CategoryCPU: cpuID}

	boards := resolver.Options(types.CategoryMainboard, sel)
	if len(boards.Records) == 0 {
		return nil, errors.Newf(errors.TypeGeneration, "cannot generate configuration: no compatible mainboard for cpu %s", cpuID).
			WithContext("cpu", cpuID)
	}
	sel[types.CategoryMainboard] = boards.Records[0].ID

	gpuID := g.pick(types.CategoryVGA, h.gpuFor(tier))
	if gpuID != "" {
		sel[types.CategoryVGA] = gpuID
	}

	ram, ok := pickRAM(resolver.Options(types.CategoryRAM, sel).Records, h.ramGBFor(tier))
	if !ok {
		return nil, errors.Newf(errors.TypeGeneration, "cannot generate configuration: no compatible ram for mainboard %s", sel[types.CategoryMainboard]).
			WithContext("mainboard", sel[types.CategoryMainboard])
	}
	sel[types.CategoryRAM] = ram.ID

	if id := g.pick(types.CategorySSD, h.ssdFor(tier)); id != "" {
		sel[types.CategorySSD] = id
	}
	if id := g.pick(types.CategoryCase, h.caseFor(tier)); id != "" {
		sel[types.CategoryCase] = id
	}

	coolers := resolver.Options(types.CategoryCPUCooler, sel)
	coolerID := h.coolerFor(cpuID, tier)
	if !coolers.Contains(coolerID) {
		coolerID = ""
		if coolers.Contains(h.CoolerStock) {
			coolerID = h.CoolerStock
		} else if len(coolers.Records) > 0 {
			coolerID = coolers.Records[0].ID
		}
	}
	if coolerID != "" {
		sel[types.CategoryCPUCooler] = coolerID
	}

	gpu, _ := g.catalog.Lookup(types.CategoryVGA, gpuID)
	psu, ok := pickPSU(g.catalog.Records(types.CategoryPSU), h.wattsFor(gpu.Tier))
	if !ok {
		return nil, errors.Generation("cannot generate configuration: no psu with a known wattage")
	}
	sel[types.CategoryPSU] = psu.ID

	return sel, nil
}

// pick returns id when the catalog carries it, else the cheapest record of
// the category, else "".
func (g *Generator) pick(category types.Category, id string) string {
	if _, ok := g.catalog.Lookup(category, id); ok {
		return id
	}
	records := g.catalog.Records(category)
	if len(records) == 0 {
		return ""
	}
	g.logger.Debug("heuristic id missing, using cheapest",
		zap.Stringer("category", category), zap.String("wanted", id), zap.String("used", records[0].ID))
	return records[0].ID
}

// pickRAM returns the cheapest module of at least wantGB, else the smallest
// module. Records arrive in price order.
func pickRAM(records []types.ComponentRecord, wantGB int) (types.ComponentRecord, bool) {
	if len(records) == 0 {
		return types.ComponentRecord{}, false
	}
	for _, rec := range records {
		if inference.CapacityGB(rec) >= wantGB {
			return rec, true
		}
	}
	smallest := records[0]
	for _, rec := range records[1:] {
		if inference.CapacityGB(rec) < inference.CapacityGB(smallest) {
			smallest = rec
		}
	}
	return smallest, true
}

// pickPSU returns the lowest-wattage PSU meeting watts, else the strongest
// available. PSUs of unknown wattage are skipped.
func pickPSU(records []types.ComponentRecord, watts int) (types.ComponentRecord, bool) {
	type candidate struct {
		rec   types.ComponentRecord
		watts int
	}
	var candidates []candidate
	for _, rec := range records {
		if w := inference.PSUWattage(rec); w > 0 {
			candidates = append(candidates, candidate{rec, w})
		}
	}
	if len(candidates) == 0 {
		return types.ComponentRecord{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].watts < candidates[j].watts
	})
	for _, c := range candidates {
		if c.watts >= watts {
			return c.rec, true
		}
	}
	return candidates[len(candidates)-1].rec, true
}

// Games lists the games with templates for a brand, sorted
func Games(t types.ConfigTemplate, brand types.Brand) []string {
	games := make([]string, 0, len(t[brand]))
	for game := range t[brand] {
		games = append(games, game)
	}
	sort.Strings(games)
	return games
}

// NormalizeGame lower-cases and trims a game id
func NormalizeGame(game string) string {
	return types.GameKey(game)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
