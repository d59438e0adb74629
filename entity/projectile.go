package entity

import (
	"chosenoffset.com/emberfall/geom"
	"chosenoffset.com/emberfall/sprites"

	"github.com/hajimehoshi/ebiten/v2"
)

// projectileHitPadding widens the projectile-vs-player distance check so
// grazing shots register.
const projectileHitPadding = 6.0

// ProjectileLayer draws projectiles above the tile and entity layers.
const ProjectileLayer = 10

// lifeEpsilon absorbs float drift from repeated delta-time subtraction
// so a lifetime that is an exact multiple of the tick expires on the
// expected tick.
const lifeEpsilon = 1e-9

// Projectile is a ballistic entity: a direction locked at spawn, a
// per-tick speed, a lifetime, and a collision radius. Exactly one of
// wall hit, target hit, or lifetime expiry removes it, and it applies
// damage at most once.
type Projectile struct {
	Pos    geom.Vec2
	Sprite string

	dir     geom.Vec2 // Unit direction, fixed for the projectile's life
	speed   float64   // Pixels per tick
	damage  int
	life    float64 // Seconds remaining
	radius  float64
	removed bool
}

// NewProjectile creates a projectile. The direction is normalized once
// here and never changes afterwards; there is no homing.
func NewProjectile(pos, dir geom.Vec2, speed float64, damage int, life, radius float64, sprite string) *Projectile {
	return &Projectile{
		Pos:    pos,
		Sprite: sprite,
		dir:    dir.Normalized(),
		speed:  speed,
		damage: damage,
		life:   life,
		radius: radius,
	}
}

// Direction returns the fixed unit direction.
func (p *Projectile) Direction() geom.Vec2 {
	return p.dir
}

// Removed reports whether the scheduler should drop this projectile.
func (p *Projectile) Removed() bool {
	return p.removed
}

// Layer returns the projectile render layer, above tiles and entities.
func (p *Projectile) Layer() int {
	return ProjectileLayer
}

// Update advances the projectile one tick: move, then expire on the
// first of lifetime, wall, or player hit.
func (p *Projectile) Update(ctx *Context) {
	if p.removed {
		return
	}

	p.Pos = p.Pos.Add(p.dir.Scale(p.speed))

	p.life -= ctx.DT
	if p.life <= lifeEpsilon {
		p.removed = true
		return
	}

	if ctx.Grid != nil && ctx.Grid.IsBlocked(p.Pos.X, p.Pos.Y) {
		p.removed = true
		return
	}

	if ctx.Player != nil && ctx.Player.State() != StateDie {
		if p.Pos.DistanceTo(ctx.Player.Pos) <= p.radius+projectileHitPadding {
			ctx.Player.TakeDamage(p.damage, &p.Pos)
			p.removed = true
		}
	}
}

// Draw renders the projectile centered on its position.
func (p *Projectile) Draw(screen *ebiten.Image, camX, camY float64, store *sprites.Store) {
	img, ok := store.Get(p.Sprite)
	if !ok {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	store.Draw(screen, p.Sprite, p.Pos.X-float64(w)/2-camX, p.Pos.Y-float64(h)/2-camY)
}
