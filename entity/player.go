package entity

import (
	"math"

	"chosenoffset.com/emberfall/anim"
	"chosenoffset.com/emberfall/geom"
	"chosenoffset.com/emberfall/input"
)

// diagonalFactor normalizes two-axis input so diagonal movement matches
// axial speed.
var diagonalFactor = 1 / math.Sqrt2

// Player is the input-driven combat entity.
type Player struct {
	Core

	// prevAttack tracks the previous tick's attack key so swings are
	// edge-triggered; holding the key does not chain attacks.
	prevAttack bool
}

// DefaultPlayerConfig returns the player's tuning record.
func DefaultPlayerConfig() Config {
	return Config{
		MaxHP:          6,
		Speed:          150,
		FootW:          18,
		FootH:          12,
		AttackDamage:   1,
		AttackReach:    22,
		AttackRadius:   14,
		AttackCooldown: 0.45,
		HitWindowStart: 2,
		HitWindowEnd:   4,
		Clips: map[State]anim.Clip{
			StateIdle:   {Sprite: "player_idle", Frames: 4, FrameWidth: 32, FrameHeight: 40, FrameTime: 0.18, Loop: true},
			StateWalk:   {Sprite: "player_walk", Frames: 6, FrameWidth: 32, FrameHeight: 40, FrameTime: 0.1, Loop: true},
			StateAttack: {Sprite: "player_attack", Frames: 6, FrameWidth: 40, FrameHeight: 40, FrameTime: 0.06},
			StateHurt:   {Sprite: "player_hurt", Frames: 3, FrameWidth: 32, FrameHeight: 40, FrameTime: 0.1},
			StateDie:    {Sprite: "player_die", Frames: 6, FrameWidth: 32, FrameHeight: 40, FrameTime: 0.12},
		},
	}
}

// NewPlayer creates the player at a spawn position. A config missing its
// required animations aborts creation.
func NewPlayer(cfg Config, pos geom.Vec2) (*Player, error) {
	core, err := newCore(cfg, pos)
	if err != nil {
		return nil, err
	}
	return &Player{Core: core}, nil
}

// Update runs one tick of the player: timers and knockback, then either
// the in-progress swing or input-driven attack entry and movement.
func (p *Player) Update(ctx *Context) {
	attackHeld := ctx.Input.IsHeld(input.KeyAttack)
	attackPressed := attackHeld && !p.prevAttack
	p.prevAttack = attackHeld

	if p.BeginTick(ctx) {
		return
	}

	if p.State() == StateAttack {
		if p.TryHitWindow() {
			for _, enemy := range ctx.Enemies {
				if enemy.Removed() || enemy.State() == StateDie {
					continue
				}
				if p.MeleeHits(&enemy.Core) {
					result := enemy.TakeDamage(p.AttackDamage(), &p.Pos)
					if result.Died && ctx.State != nil {
						ctx.State.AddCounter("slain", 1)
					}
				}
			}
		}
		p.FinishAttackIfDone()
		return
	}

	if attackPressed {
		p.EnterAttack()
		return
	}

	var dir geom.Vec2
	if ctx.Input.IsHeld(input.KeyUp) {
		dir.Y--
	}
	if ctx.Input.IsHeld(input.KeyDown) {
		dir.Y++
	}
	if ctx.Input.IsHeld(input.KeyLeft) {
		dir.X--
	}
	if ctx.Input.IsHeld(input.KeyRight) {
		dir.X++
	}

	if dir.X == 0 && dir.Y == 0 {
		p.ensureState(StateIdle)
		return
	}

	if dir.X != 0 && dir.Y != 0 {
		dir = dir.Scale(diagonalFactor)
	}
	p.SetFacing(dir)
	p.ensureState(StateWalk)
	step := p.Speed() * ctx.DT
	p.TryMove(ctx.Grid, dir.X*step, dir.Y*step)
}
