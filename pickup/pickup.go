// Package pickup implements proximity-triggered one-shot items: keys,
// healing, scrolls. A pickup applies its effect exactly once when the
// player enters its radius, and may wake linked dormant enemies through
// a separate, larger alert radius.
package pickup

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/emberfall/entity"
	"chosenoffset.com/emberfall/geom"
	"chosenoffset.com/emberfall/sprites"
)

// Effect is the side effect a pickup applies on collection.
type Effect interface {
	Apply(ctx *entity.Context)
}

// EffectFunc adapts a function to the Effect interface.
type EffectFunc func(ctx *entity.Context)

// Apply calls the wrapped function.
func (f EffectFunc) Apply(ctx *entity.Context) {
	f(ctx)
}

// CounterEffect increments a run counter, e.g. collected keys.
type CounterEffect struct {
	Key    string
	Amount int
}

// Apply adds to the counter.
func (e CounterEffect) Apply(ctx *entity.Context) {
	ctx.State.AddCounter(e.Key, e.Amount)
}

// HealEffect restores player health, clamped to the maximum.
type HealEffect struct {
	Amount int
}

// Apply heals the player.
func (e HealEffect) Apply(ctx *entity.Context) {
	if ctx.Player != nil {
		ctx.Player.Heal(e.Amount)
	}
}

// FlagEffect sets a run flag, e.g. the scroll having been read.
type FlagEffect struct {
	Key string
}

// Apply sets the flag.
func (e FlagEffect) Apply(ctx *entity.Context) {
	ctx.State.SetFlag(e.Key, true)
}

// Effects combines several effects into one.
func Effects(effects ...Effect) Effect {
	return EffectFunc(func(ctx *entity.Context) {
		for _, e := range effects {
			e.Apply(ctx)
		}
	})
}

// Pickup is a one-shot proximity trigger. Collection is idempotent: once
// the collected flag is set, further ticks are no-ops and the scheduler
// removes the pickup.
type Pickup struct {
	Pos    geom.Vec2
	Sprite string

	radius float64
	effect Effect

	// Dormant-enemy link. The alert radius is independent from and
	// checked before the pickup radius, and fires once.
	alertRadius float64
	linked      []*entity.Enemy
	woken       bool

	collected bool
}

// New creates a pickup. A non-positive radius or missing effect is a
// content bug and aborts creation.
func New(pos geom.Vec2, radius float64, sprite string, effect Effect) (*Pickup, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("pickup radius must be positive, got %v", radius)
	}
	if effect == nil {
		return nil, fmt.Errorf("pickup at (%v, %v) has no effect", pos.X, pos.Y)
	}
	return &Pickup{
		Pos:    pos,
		Sprite: sprite,
		radius: radius,
		effect: effect,
	}, nil
}

// LinkDormant attaches dormant enemies woken when the player first comes
// within alertRadius of this pickup.
func (p *Pickup) LinkDormant(alertRadius float64, enemies ...*entity.Enemy) {
	p.alertRadius = alertRadius
	p.linked = append(p.linked, enemies...)
}

// Collected reports whether the effect has been applied.
func (p *Pickup) Collected() bool {
	return p.collected
}

// Woken reports whether the alert trigger has fired.
func (p *Pickup) Woken() bool {
	return p.woken
}

// Removed reports whether the scheduler should drop this pickup.
func (p *Pickup) Removed() bool {
	return p.collected
}

// Layer returns the pickup render layer, under entities and projectiles.
func (p *Pickup) Layer() int {
	return 0
}

// Update runs the proximity checks for one tick: the alert trigger
// first, then collection. Both are one-shot; a dead player triggers
// neither.
func (p *Pickup) Update(ctx *entity.Context) {
	if p.collected || ctx.Player == nil || ctx.Player.State() == entity.StateDie {
		return
	}

	dist := p.Pos.DistanceTo(ctx.Player.Pos)

	if !p.woken && len(p.linked) > 0 && dist <= p.alertRadius {
		p.woken = true
		for _, e := range p.linked {
			e.Wake()
		}
	}

	if dist <= p.radius {
		p.collected = true
		p.effect.Apply(ctx)
	}
}

// Draw renders the pickup centered on its position.
func (p *Pickup) Draw(screen *ebiten.Image, camX, camY float64, store *sprites.Store) {
	if p.collected {
		return
	}
	img, ok := store.Get(p.Sprite)
	if !ok {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	store.Draw(screen, p.Sprite, p.Pos.X-float64(w)/2-camX, p.Pos.Y-float64(h)/2-camY)
}
