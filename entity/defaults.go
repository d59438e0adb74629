package entity

import "chosenoffset.com/emberfall/anim"

// Built-in enemy kind ids.
const (
	KindWolf  KindID = "wolf"
	KindBrute KindID = "brute"
	KindShade KindID = "shade"
)

// DefaultRegistry returns the built-in enemy kinds: two melee kinds and
// one ranged kind firing shadow bolts. Level setup may override stats
// per placement with a KindPatch, or replace the registry entirely with
// a JSON kind library.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(KindDef{
		ID: KindWolf,
		Config: Config{
			MaxHP:          3,
			Speed:          95,
			FootW:          20,
			FootH:          12,
			AttackDamage:   1,
			AttackRange:    30,
			AttackReach:    18,
			AttackRadius:   12,
			AttackCooldown: 1.2,
			Clips: map[State]anim.Clip{
				StateSpawn:  {Sprite: "wolf_spawn", Frames: 4, FrameWidth: 40, FrameHeight: 32, FrameTime: 0.1},
				StateIdle:   {Sprite: "wolf_idle", Frames: 4, FrameWidth: 40, FrameHeight: 32, FrameTime: 0.2, Loop: true},
				StateWalk:   {Sprite: "wolf_walk", Frames: 6, FrameWidth: 40, FrameHeight: 32, FrameTime: 0.09, Loop: true},
				StateAttack: {Sprite: "wolf_attack", Frames: 6, FrameWidth: 48, FrameHeight: 32, FrameTime: 0.07},
				StateHurt:   {Sprite: "wolf_hurt", Frames: 3, FrameWidth: 40, FrameHeight: 32, FrameTime: 0.09},
				StateDie:    {Sprite: "wolf_die", Frames: 5, FrameWidth: 40, FrameHeight: 32, FrameTime: 0.11},
			},
		},
		StopDistance: 26,
		AggroRange:   320,
	})

	r.Register(KindDef{
		ID: KindBrute,
		Config: Config{
			MaxHP:          6,
			Speed:          60,
			FootW:          26,
			FootH:          16,
			AttackDamage:   2,
			AttackRange:    38,
			AttackReach:    24,
			AttackRadius:   16,
			AttackCooldown: 1.8,
			HurtRecovery:   0.18, // shorter than the hurt clip, recovers early
			Clips: map[State]anim.Clip{
				StateIdle:   {Sprite: "brute_idle", Frames: 4, FrameWidth: 48, FrameHeight: 48, FrameTime: 0.22, Loop: true},
				StateWalk:   {Sprite: "brute_walk", Frames: 6, FrameWidth: 48, FrameHeight: 48, FrameTime: 0.12, Loop: true},
				StateAttack: {Sprite: "brute_attack", Frames: 7, FrameWidth: 56, FrameHeight: 48, FrameTime: 0.08},
				StateHurt:   {Sprite: "brute_hurt", Frames: 3, FrameWidth: 48, FrameHeight: 48, FrameTime: 0.1},
				StateDie:    {Sprite: "brute_die", Frames: 6, FrameWidth: 48, FrameHeight: 48, FrameTime: 0.12},
			},
		},
		StopDistance: 34,
		AggroRange:   280,
	})

	shade := KindDef{
		ID: KindShade,
		Config: Config{
			MaxHP:          2,
			Speed:          70,
			FootW:          18,
			FootH:          12,
			AttackDamage:   1,
			AttackRange:    180,
			AttackCooldown: 2.2,
			Clips: map[State]anim.Clip{
				StateSpawn:  {Sprite: "shade_spawn", Frames: 5, FrameWidth: 36, FrameHeight: 44, FrameTime: 0.1},
				StateIdle:   {Sprite: "shade_idle", Frames: 4, FrameWidth: 36, FrameHeight: 44, FrameTime: 0.2, Loop: true},
				StateWalk:   {Sprite: "shade_walk", Frames: 4, FrameWidth: 36, FrameHeight: 44, FrameTime: 0.12, Loop: true},
				StateAttack: {Sprite: "shade_attack", Frames: 6, FrameWidth: 36, FrameHeight: 44, FrameTime: 0.09},
				StateHurt:   {Sprite: "shade_hurt", Frames: 3, FrameWidth: 36, FrameHeight: 44, FrameTime: 0.09},
				StateDie:    {Sprite: "shade_die", Frames: 5, FrameWidth: 36, FrameHeight: 44, FrameTime: 0.1},
			},
		},
		StopDistance: 150,
		AggroRange:   360,
		HookFrame:    3,
		AttackHook: ProjectileSpawnHook{
			Speed:  6,
			Damage: 1,
			Life:   2.4,
			Radius: 14,
			Sprite: "shade_bolt",
		},
	}
	r.Register(shade)

	return r
}
