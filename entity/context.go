package entity

import (
	"chosenoffset.com/emberfall/gamestate"
	"chosenoffset.com/emberfall/input"
	"chosenoffset.com/emberfall/world"
)

// Context carries the per-tick shared state every entity update reads:
// frame delta, the input snapshot, the world grid, and the run's flags
// and counters. The scheduler builds one per tick and passes it by
// reference, so tests can fabricate a fresh context without any global
// state.
type Context struct {
	DT    float64
	Input input.State
	Grid  *world.Grid
	State *gamestate.State

	// Player is a non-owning reference used by AI distance checks,
	// projectiles, and pickups. Nil in tests that do not need it.
	Player *Player

	// Enemies are the live enemies this tick, read by the player's
	// melee hit check.
	Enemies []*Enemy

	// spawned collects projectiles created mid-tick. The scheduler
	// drains them after the update pass so the entity list is never
	// mutated during iteration.
	spawned []*Projectile
}

// SpawnProjectile queues a projectile created during this tick.
func (ctx *Context) SpawnProjectile(p *Projectile) {
	ctx.spawned = append(ctx.spawned, p)
}

// DrainSpawned returns and clears the projectiles queued this tick.
func (ctx *Context) DrainSpawned() []*Projectile {
	out := ctx.spawned
	ctx.spawned = nil
	return out
}
