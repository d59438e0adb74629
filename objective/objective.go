// Package objective tracks an ordered list of objective steps. The
// current index advances monotonically while step predicates are
// satisfied and never regresses or wraps past the final step.
package objective

import (
	"fmt"

	"chosenoffset.com/emberfall/gamestate"
)

// Step is one objective: a completion predicate and a display string.
type Step interface {
	Complete() bool
	Text() string
}

// FuncStep builds a step from a predicate and a text generator.
type FuncStep struct {
	Done  func() bool
	Label func() string
}

// Complete evaluates the predicate.
func (s FuncStep) Complete() bool {
	return s.Done()
}

// Text generates the display string.
func (s FuncStep) Text() string {
	return s.Label()
}

// CounterStep completes when a run counter reaches a target, and shows
// progress as "label (n/target)".
type CounterStep struct {
	State  *gamestate.State
	Key    string
	Target int
	Label  string
}

// Complete reports whether the counter reached the target.
func (s CounterStep) Complete() bool {
	return s.State.Counter(s.Key) >= s.Target
}

// Text shows the label with current progress, capped at the target.
func (s CounterStep) Text() string {
	n := s.State.Counter(s.Key)
	if n > s.Target {
		n = s.Target
	}
	return fmt.Sprintf("%s (%d/%d)", s.Label, n, s.Target)
}

// FlagStep completes when a run flag is set.
type FlagStep struct {
	State *gamestate.State
	Key   string
	Label string
}

// Complete reports whether the flag is set.
func (s FlagStep) Complete() bool {
	return s.State.Flag(s.Key)
}

// Text returns the label.
func (s FlagStep) Text() string {
	return s.Label
}

// Tracker walks an ordered step list. The index only moves forward.
type Tracker struct {
	steps []Step
	index int
}

// New creates a tracker over the given steps, starting at the first.
func New(steps ...Step) *Tracker {
	return &Tracker{steps: steps}
}

// Index returns the current step index.
func (t *Tracker) Index() int {
	return t.index
}

// Current returns the current step, or nil when the tracker is empty.
func (t *Tracker) Current() Step {
	if len(t.steps) == 0 {
		return nil
	}
	return t.steps[t.index]
}

// Text returns the current step's display string, or "" when empty.
func (t *Tracker) Text() string {
	s := t.Current()
	if s == nil {
		return ""
	}
	return s.Text()
}

// Complete reports whether the tracker rests on a satisfied final step.
func (t *Tracker) Complete() bool {
	if len(t.steps) == 0 {
		return true
	}
	return t.index == len(t.steps)-1 && t.steps[t.index].Complete()
}

// Advance moves the index forward through every satisfied step, stopping
// at the first unsatisfied one or at the final step. A single call skips
// any number of already-complete steps. It returns the new index.
func (t *Tracker) Advance() int {
	for t.index < len(t.steps)-1 && t.steps[t.index].Complete() {
		t.index++
	}
	return t.index
}
