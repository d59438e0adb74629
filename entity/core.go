package entity

import (
	"math"

	"chosenoffset.com/emberfall/anim"
	"chosenoffset.com/emberfall/geom"
	"chosenoffset.com/emberfall/sprites"
	"chosenoffset.com/emberfall/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// knockbackDamping is the per-tick decay factor for knockback velocity.
const knockbackDamping = 0.75

// knockbackEpsilon is the speed below which knockback is zeroed out.
const knockbackEpsilon = 1.0

// flashBlinkInterval controls the damage-flash blink rate.
const flashBlinkInterval = 0.05

// DamageResult reports what a TakeDamage call actually did. Suppressed
// calls (dead target, active i-frames) report Applied false.
type DamageResult struct {
	Applied bool
	Died    bool
}

// Core is the shared combat-entity state machine used by both the player
// and enemies: position, facing, health, the animation-driven state, the
// damage/knockback/i-frame response, and grid-validated movement.
type Core struct {
	cfg Config

	// Pos is the center of the collision footprint, at the entity's feet.
	Pos    geom.Vec2
	Facing geom.Vec2

	HP int

	state State
	track anim.Track

	cooldown  float64 // Attack cooldown remaining
	iframes   float64 // Invulnerability remaining
	flash     float64 // Damage flash remaining
	knockback geom.Vec2

	// hitDone latches the single damage application of the current swing.
	hitDone bool

	removed bool
}

// newCore builds a core from a resolved config at the given position.
// The entity starts in Spawn when a spawn clip exists, otherwise Idle.
func newCore(cfg Config, pos geom.Vec2) (Core, error) {
	cfg, err := cfg.resolve()
	if err != nil {
		return Core{}, err
	}
	c := Core{
		cfg:    cfg,
		Pos:    pos,
		Facing: geom.Vec2{X: 0, Y: 1},
		HP:     cfg.MaxHP,
	}
	if _, ok := cfg.Clips[StateSpawn]; ok {
		c.enterState(StateSpawn)
	} else {
		c.enterState(StateIdle)
	}
	return c, nil
}

// State returns the current behavioral state.
func (c *Core) State() State {
	return c.state
}

// MaxHP returns the configured maximum health.
func (c *Core) MaxHP() int {
	return c.cfg.MaxHP
}

// Speed returns the configured movement speed in pixels per second.
func (c *Core) Speed() float64 {
	return c.cfg.Speed
}

// AttackDamage returns the damage dealt by one landed swing.
func (c *Core) AttackDamage() int {
	return c.cfg.AttackDamage
}

// CooldownRemaining returns the attack cooldown left, in seconds.
func (c *Core) CooldownRemaining() float64 {
	return c.cooldown
}

// CooldownTotal returns the configured attack cooldown duration.
func (c *Core) CooldownTotal() float64 {
	return c.cfg.AttackCooldown
}

// Invulnerable reports whether the i-frame timer is still running.
func (c *Core) Invulnerable() bool {
	return c.iframes > 0
}

// Knockback returns the current knockback velocity, in pixels per second.
func (c *Core) Knockback() geom.Vec2 {
	return c.knockback
}

// Removed reports whether the scheduler should drop this entity.
func (c *Core) Removed() bool {
	return c.removed
}

// Layer returns the entity's render layer.
func (c *Core) Layer() int {
	return c.cfg.RenderLayer
}

// Footprint returns the collision rectangle, centered on Pos.
func (c *Core) Footprint() geom.Rect {
	return geom.Rect{
		X: c.Pos.X - c.cfg.FootW/2,
		Y: c.Pos.Y - c.cfg.FootH/2,
		W: c.cfg.FootW,
		H: c.cfg.FootH,
	}
}

// SetFacing points the entity along dir. Zero vectors are ignored so an
// idle tick never clears the last facing.
func (c *Core) SetFacing(dir geom.Vec2) {
	n := dir.Normalized()
	if n.X != 0 || n.Y != 0 {
		c.Facing = n
	}
}

// enterState switches state and restarts its clip. States without a
// configured clip keep an empty track, which reports done immediately,
// so a missing hurt or die clip resolves to an instant transition.
func (c *Core) enterState(s State) {
	c.state = s
	c.track.Set(c.cfg.Clips[s])
}

// ensureState switches to s only when not already there, so looping
// animations are not restarted every tick.
func (c *Core) ensureState(s State) {
	if c.state != s {
		c.enterState(s)
	}
}

// EnterAttack starts a swing: resets the hit latch, starts the cooldown,
// and locks movement until the clip completes.
func (c *Core) EnterAttack() {
	c.hitDone = false
	c.cooldown = c.cfg.AttackCooldown
	c.enterState(StateAttack)
}

// AttackFrame returns the current frame of the attack clip, or -1 when
// not attacking.
func (c *Core) AttackFrame() int {
	if c.state != StateAttack {
		return -1
	}
	return c.track.Frame()
}

// TryHitWindow reports whether this tick is the swing's single damage
// application: the attack clip is inside its hit window and no hit has
// been latched yet. The latch is set on a true return.
func (c *Core) TryHitWindow() bool {
	if c.state != StateAttack || c.hitDone {
		return false
	}
	frame := c.track.Frame()
	if frame < c.cfg.HitWindowStart || frame > c.cfg.HitWindowEnd {
		return false
	}
	c.hitDone = true
	return true
}

// FinishAttackIfDone exits the attack state once the clip has played out.
func (c *Core) FinishAttackIfDone() {
	if c.state == StateAttack && c.track.Done() {
		c.enterState(StateIdle)
	}
}

// MeleeHits reports whether this entity's melee swing reaches the target:
// a circle offset along the facing direction against the target's
// footprint, widened by a padding term derived from both footprints so
// visually-touching swings do not whiff.
func (c *Core) MeleeHits(target *Core) bool {
	center := c.Pos.Add(c.Facing.Scale(c.cfg.AttackReach))
	pad := (c.cfg.FootW + target.cfg.FootW) / 4
	circle := geom.Circle{X: center.X, Y: center.Y, R: c.cfg.AttackRadius + pad}
	return circle.IntersectsRect(target.Footprint())
}

// TakeDamage applies damage from a source position. It is a no-op while
// dead or invulnerable. Otherwise it floors health at zero, starts the
// i-frame and flash timers, cancels any in-progress swing, and kicks the
// entity away from the source. A nil source applies no knockback.
func (c *Core) TakeDamage(amount int, source *geom.Vec2) DamageResult {
	if c.state == StateDie || c.iframes > 0 {
		return DamageResult{}
	}

	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}

	c.iframes = c.cfg.IFrames
	c.flash = c.cfg.FlashTime
	c.hitDone = true // cancel the current swing's pending hit

	if source != nil {
		dir := c.Pos.Sub(*source).Normalized()
		c.knockback = dir.Scale(c.cfg.KnockbackStrength)
	}

	if c.HP == 0 {
		c.enterState(StateDie)
		return DamageResult{Applied: true, Died: true}
	}
	c.enterState(StateHurt)
	return DamageResult{Applied: true}
}

// Heal restores health, clamped to the maximum.
func (c *Core) Heal(amount int) {
	if c.state == StateDie {
		return
	}
	c.HP += amount
	if c.HP > c.cfg.MaxHP {
		c.HP = c.cfg.MaxHP
	}
}

// BeginTick advances the animation track and timers, applies knockback
// motion, and resolves the locked states. It returns true when the
// entity is locked for the rest of this tick (spawning, hurt, dying),
// in which case the caller skips its own movement and attack logic.
func (c *Core) BeginTick(ctx *Context) bool {
	dt := ctx.DT
	c.track.Advance(dt)

	if c.cooldown > 0 {
		c.cooldown = math.Max(0, c.cooldown-dt)
	}
	if c.iframes > 0 {
		c.iframes = math.Max(0, c.iframes-dt)
	}
	if c.flash > 0 {
		c.flash = math.Max(0, c.flash-dt)
	}

	c.applyKnockback(ctx)

	switch c.state {
	case StateDie:
		// A kind without a die clip is removed immediately.
		if c.track.Done() || !c.track.Clip().Valid() {
			c.removed = true
		}
		return true
	case StateSpawn:
		if c.track.Done() || !c.track.Clip().Valid() {
			c.enterState(StateIdle)
		}
		return true
	case StateHurt:
		if c.track.Elapsed() >= c.cfg.HurtRecovery {
			c.enterState(StateIdle)
		} else {
			return true
		}
	}
	return false
}

// applyKnockback moves the entity along its decaying knockback velocity,
// validated per axis against the grid. Dead entities do not slide.
func (c *Core) applyKnockback(ctx *Context) {
	if c.state == StateDie {
		return
	}
	if c.knockback.Len() < knockbackEpsilon {
		c.knockback = geom.Vec2{}
		return
	}
	c.TryMove(ctx.Grid, c.knockback.X*ctx.DT, c.knockback.Y*ctx.DT)
	c.knockback = c.knockback.Scale(knockbackDamping)
}

// TryMove attempts a displacement one axis at a time, committing each
// axis only when the moved footprint stays clear. Resolving the axes
// independently keeps diagonal movement from sticking on wall corners.
func (c *Core) TryMove(grid *world.Grid, dx, dy float64) {
	if grid == nil {
		c.Pos.X += dx
		c.Pos.Y += dy
		return
	}
	if dx != 0 && c.canStand(grid, c.Pos.X+dx, c.Pos.Y) {
		c.Pos.X += dx
	}
	if dy != 0 && c.canStand(grid, c.Pos.X, c.Pos.Y+dy) {
		c.Pos.Y += dy
	}
}

// canStand samples the footprint's center and edge midpoints around the
// feet anchor. The multi-point sample keeps the footprint forgiving
// while still rejecting positions that poke into blocked tiles.
func (c *Core) canStand(grid *world.Grid, x, y float64) bool {
	halfW := c.cfg.FootW / 2
	halfH := c.cfg.FootH / 2
	points := [...][2]float64{
		{x, y},
		{x - halfW, y},
		{x + halfW, y},
		{x, y - halfH},
		{x, y + halfH},
	}
	for _, p := range points {
		if grid.IsBlocked(p[0], p[1]) {
			return false
		}
	}
	return true
}

// Draw renders the current animation frame through the camera offset.
// The sprite is anchored so its bottom edge sits just below the feet;
// left-facing entities are mirrored. During the damage flash the sprite
// blinks by skipping alternating intervals. Missing images are skipped
// by the sprite store.
func (c *Core) Draw(screen *ebiten.Image, camX, camY float64, store *sprites.Store) {
	clip := c.track.Clip()
	if !clip.Valid() {
		return
	}
	if c.flash > 0 && int(c.flash/flashBlinkInterval)%2 == 0 {
		return
	}
	x := c.Pos.X - float64(clip.FrameWidth)/2 - camX
	y := c.Pos.Y + c.cfg.FootH/2 - float64(clip.FrameHeight) - camY
	store.DrawFrame(screen, clip.Sprite, c.track.Frame(), clip.FrameWidth, clip.FrameHeight, x, y, c.Facing.X < 0)
}
