// Package session tracks one wizard run: budget, then CPU brand, then game,
// then a configured selection.
//
// Steps advance strictly forward, each gated by its own completeness check.
// Going back keeps later data until an earlier value changes and the user
// advances again, at which point everything after that step is cleared.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pcbuild/core/generator"
	"pcbuild/core/types"
	"pcbuild/internal/errors"
)

// Step is a wizard step
type Step int

const (
	StepBudget Step = iota
	StepCPUBrand
	StepGame
	StepConfigured
)

// String returns string representation
func (s Step) String() string {
	switch s {
	case StepBudget:
		return "budget"
	case StepCPUBrand:
		return "cpu_brand"
	case StepGame:
		return "game"
	case StepConfigured:
		return "configured"
	default:
		return "unknown"
	}
}

// Generator produces the initial selection when the game step completes
type Generator interface {
	Generate(req generator.Request) (generator.Result, error)
}

// Session is the mutable state of one wizard run. It is not safe for
// concurrent use.
type Session struct {
	id        string
	createdAt time.Time

	step     Step
	unlocked Step
	// dirty is the earliest step whose value changed after later steps
	// were unlocked; -1 when clean
	dirty Step

	budget    int
	brand     types.Brand
	game      string
	selection types.Selection
	source    generator.Source
}

// New starts a session at the budget step
func New() *Session {
	return &Session{
		id:        uuid.NewString(),
		createdAt: time.Now().UTC(),
		dirty:     -1,
		selection: types.Selection{},
	}
}

// ID returns the session id
func (s *Session) ID() string { return s.id }

// Step returns the current step
func (s *Session) Step() Step { return s.step }

// Unlocked returns the furthest step reached
func (s *Session) Unlocked() Step { return s.unlocked }

// Selection returns a copy of the current selection
func (s *Session) Selection() types.Selection { return s.selection.Clone() }

// SetBudget records the budget tier in millions
func (s *Session) SetBudget(tier int) error {
	if tier <= 0 {
		return errors.Inputf("budget must be positive, got %d", tier)
	}
	if tier != s.budget {
		s.budget = tier
		s.touch(StepBudget)
	}
	return nil
}

// SetBrand records the CPU brand
func (s *Session) SetBrand(brand types.Brand) error {
	if !brand.IsValid() {
		return errors.Inputf("unknown cpu brand %q", brand)
	}
	if brand != s.brand {
		s.brand = brand
		s.touch(StepCPUBrand)
	}
	return nil
}

// SetGame records the game id
func (s *Session) SetGame(game string) error {
	game = generator.NormalizeGame(game)
	if game == "" {
		return errors.Input("game must not be empty")
	}
	if game != s.game {
		s.game = game
		s.touch(StepGame)
	}
	return nil
}

// touch marks a changed value; later data is cleared on the next advance
func (s *Session) touch(step Step) {
	if s.unlocked > step && (s.dirty < 0 || step < s.dirty) {
		s.dirty = step
	}
}

// Complete reports whether a step's own data is filled in
func (s *Session) Complete(step Step) bool {
	switch step {
	case StepBudget:
		return s.budget > 0
	case StepCPUBrand:
		return s.Complete(StepBudget) && s.brand.IsValid()
	case StepGame:
		return s.Complete(StepCPUBrand) && s.game != ""
	case StepConfigured:
		return s.Complete(StepGame) && len(s.selection) > 0
	}
	return false
}

// CanAdvance reports whether the current step may move forward
func (s *Session) CanAdvance() bool {
	return s.step < StepConfigured && s.Complete(s.step)
}

// Advance moves to the next step. Leaving the game step generates the
// selection with gen; if generation fails the session stays put.
func (s *Session) Advance(gen Generator) error {
	if s.step == StepConfigured {
		return errors.Input("session is already configured")
	}
	if !s.Complete(s.step) {
		return errors.Inputf("step %s is incomplete", s.step)
	}

	if s.dirty >= 0 && s.dirty <= s.step {
		s.clearAfter(s.step)
	}

	if s.step == StepGame {
		if len(s.selection) == 0 || s.unlocked < StepConfigured {
			if gen == nil {
				return errors.Input("no generator to build the configuration")
			}
			res, err := gen.Generate(s.Request())
			if err != nil {
				return err
			}
			s.selection = res.Selection.Clone()
			s.source = res.Source
		}
	}

	s.step++
	if s.step > s.unlocked {
		s.unlocked = s.step
	}
	return nil
}

// clearAfter drops every value belonging to steps after step and relocks them
func (s *Session) clearAfter(step Step) {
	if step < StepCPUBrand {
		s.brand = ""
	}
	if step < StepGame {
		s.game = ""
	}
	s.selection = types.Selection{}
	s.source = ""
	s.unlocked = step
	s.dirty = -1
}

// Back returns to a previously unlocked step without clearing anything
func (s *Session) Back(to Step) error {
	if to < StepBudget || to > s.unlocked {
		return errors.Inputf("step %s is not unlocked", to)
	}
	s.step = to
	return nil
}

// Choose swaps one component in the configured selection and applies
// dependency invalidation. It returns the categories that were cleared.
func (s *Session) Choose(c types.Catalog, category types.Category, id string) ([]types.Category, error) {
	if s.step != StepConfigured {
		return nil, errors.Inputf("components can only be chosen once configured (at %s)", s.step)
	}
	if !category.IsValid() {
		return nil, errors.Inputf("unknown category %q", category)
	}
	next, cleared := Apply(c, s.selection, category, id)
	s.selection = next
	return cleared, nil
}

// Request returns the generator request for the current answers
func (s *Session) Request() generator.Request {
	return generator.Request{Budget: s.budget, Brand: s.brand, Game: s.game}
}

// Reset discards everything and returns to the budget step
func (s *Session) Reset() {
	*s = *New()
}

// State is a read-only view of a session
type State struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Step      string           `json:"step"`
	Unlocked  string           `json:"unlocked"`
	Budget    int              `json:"budget,omitempty"`
	Brand     types.Brand      `json:"brand,omitempty"`
	Game      string           `json:"game,omitempty"`
	Selection types.Selection  `json:"selection,omitempty"`
	Source    generator.Source `json:"source,omitempty"`
}

// State returns a snapshot of the session
func (s *Session) State() State {
	return State{
		ID:        s.id,
		CreatedAt: s.createdAt,
		Step:      s.step.String(),
		Unlocked:  s.unlocked.String(),
		Budget:    s.budget,
		Brand:     s.brand,
		Game:      s.game,
		Selection: s.selection.Clone(),
		Source:    s.source,
	}
}

// ParseStep resolves a step name
func ParseStep(name string) (Step, error) {
	for step := StepBudget; step <= StepConfigured; step++ {
		if strings.EqualFold(strings.TrimSpace(name), step.String()) {
			return step, nil
		}
	}
	return 0, fmt.Errorf("unknown step %q", name)
}
