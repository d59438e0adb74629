// Package game ties the runtime together: the entity scheduler, level
// setup for both world variants, and the ebiten game loop with camera,
// HUD, and pause handling.
package game

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/emberfall/entity"
	"chosenoffset.com/emberfall/sprites"
)

// Entity is anything the scheduler ticks and draws: the player, enemies,
// projectiles, and pickups.
type Entity interface {
	Update(ctx *entity.Context)
	Draw(screen *ebiten.Image, camX, camY float64, store *sprites.Store)
	Layer() int
	Removed() bool
}

// Scheduler runs the single-threaded entity loop. Updates happen in
// registration order; draws are bucketed by render layer, registration
// order within a layer. Entities flagged as removed are filtered out
// between ticks, never mid-iteration.
type Scheduler struct {
	entities []Entity
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Register appends an entity to the update order.
func (s *Scheduler) Register(e Entity) {
	s.entities = append(s.entities, e)
}

// Len returns the number of live entities.
func (s *Scheduler) Len() int {
	return len(s.entities)
}

// Update runs one tick: every entity's update in registration order,
// then projectiles spawned mid-tick join the list, then removed
// entities are swept out.
func (s *Scheduler) Update(ctx *entity.Context) {
	for _, e := range s.entities {
		e.Update(ctx)
	}

	for _, p := range ctx.DrainSpawned() {
		s.Register(p)
	}

	s.sweep()
}

// sweep filters out removed entities in place, keeping order.
func (s *Scheduler) sweep() {
	live := s.entities[:0]
	for _, e := range s.entities {
		if !e.Removed() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = live
}

// Draw renders every entity through the camera offset, lowest layer
// first. The sort is stable so entities on the same layer keep their
// registration order.
func (s *Scheduler) Draw(screen *ebiten.Image, camX, camY float64, store *sprites.Store) {
	ordered := make([]Entity, len(s.entities))
	copy(ordered, s.entities)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Layer() < ordered[j].Layer()
	})
	for _, e := range ordered {
		e.Draw(screen, camX, camY, store)
	}
}
