package entity

import (
	"fmt"

	"chosenoffset.com/emberfall/anim"
)

// Config is the fully-resolved tuning record a combat entity is built
// from. Every field is either required or receives a named default in
// resolve(), once, at construction; there are no per-read fallbacks.
type Config struct {
	MaxHP int
	Speed float64 // Pixels per second

	// Clips maps each behavioral state to its animation. Idle and Walk
	// are required; Attack is required for anything that fights. Spawn,
	// Hurt and Die are optional (a missing Hurt or Die resolves to an
	// instant transition).
	Clips map[State]anim.Clip

	// Collision footprint, centered on the entity position. Smaller
	// than the drawn sprite.
	FootW, FootH float64

	AttackDamage   int
	AttackRange    float64 // AI attack-entry distance
	AttackReach    float64 // Hit circle offset along facing
	AttackRadius   float64 // Hit circle radius
	AttackCooldown float64 // Seconds between attack entries
	HitWindowStart int     // First attack frame that may land damage
	HitWindowEnd   int     // Last attack frame that may land damage

	HurtRecovery      float64 // Seconds in Hurt; 0 = full hurt clip
	KnockbackStrength float64 // Pixels per second at impact
	IFrames           float64 // Invulnerability after damage, seconds
	FlashTime         float64 // Visual flash after damage, seconds

	RenderLayer int
}

// Named defaults applied by resolve.
const (
	defaultIFrames           = 0.8
	defaultFlashTime         = 0.4
	defaultKnockbackStrength = 220.0
	defaultHitWindowStart    = 2
	defaultHitWindowEnd      = 4
)

// resolve fills named defaults and validates the record. A config
// without its required animation or stat definitions is a content bug
// and aborts entity creation.
func (cfg Config) resolve() (Config, error) {
	if cfg.MaxHP <= 0 {
		return cfg, fmt.Errorf("entity config requires MaxHP > 0, got %d", cfg.MaxHP)
	}
	if cfg.FootW <= 0 || cfg.FootH <= 0 {
		return cfg, fmt.Errorf("entity config requires a collision footprint, got %vx%v", cfg.FootW, cfg.FootH)
	}
	for _, required := range []State{StateIdle, StateWalk} {
		clip, ok := cfg.Clips[required]
		if !ok || !clip.Valid() {
			return cfg, fmt.Errorf("entity config missing %s animation", required)
		}
	}
	if clip, ok := cfg.Clips[StateAttack]; ok && !clip.Valid() {
		return cfg, fmt.Errorf("entity config has invalid attack animation")
	}

	if cfg.IFrames == 0 {
		cfg.IFrames = defaultIFrames
	}
	if cfg.FlashTime == 0 {
		cfg.FlashTime = defaultFlashTime
	}
	if cfg.KnockbackStrength == 0 {
		cfg.KnockbackStrength = defaultKnockbackStrength
	}
	if cfg.HitWindowStart == 0 && cfg.HitWindowEnd == 0 {
		cfg.HitWindowStart = defaultHitWindowStart
		cfg.HitWindowEnd = defaultHitWindowEnd
	}
	if cfg.HurtRecovery == 0 {
		if clip, ok := cfg.Clips[StateHurt]; ok {
			cfg.HurtRecovery = clip.Duration()
		}
	}
	return cfg, nil
}
