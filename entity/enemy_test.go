package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/emberfall/geom"
)

func spawnBrute(t *testing.T, pos geom.Vec2, patch *KindPatch) *Enemy {
	t.Helper()
	e, err := DefaultRegistry().Spawn(KindBrute, pos, patch)
	require.NoError(t, err)
	return e
}

func TestEnemyWalksTowardPlayer(t *testing.T) {
	e := spawnBrute(t, geom.Vec2{X: 100, Y: 100}, nil)
	ctx := testCtx(openGrid())
	ctx.Player = newTestPlayer(t, geom.Vec2{X: 300, Y: 100})

	e.Update(ctx)

	assert.Equal(t, StateWalk, e.State())
	assert.Equal(t, 106.0, e.Pos.X, "brute walks right at 60 px/s, dt 0.1")
	assert.Equal(t, 100.0, e.Pos.Y)
}

func TestEnemyAttacksInRangeWithZeroCooldown(t *testing.T) {
	e := spawnBrute(t, geom.Vec2{X: 100, Y: 100}, nil)
	ctx := testCtx(openGrid())
	ctx.Player = newTestPlayer(t, geom.Vec2{X: 130, Y: 100})

	e.Update(ctx)
	assert.Equal(t, StateAttack, e.State())
	assert.Equal(t, e.CooldownTotal(), e.CooldownRemaining())
}

func TestEnemyIdlesBeyondAggroRange(t *testing.T) {
	e := spawnBrute(t, geom.Vec2{X: 100, Y: 100}, nil)
	ctx := testCtx(openGrid())
	ctx.Player = newTestPlayer(t, geom.Vec2{X: 100, Y: 100}.Add(geom.Vec2{X: 300, Y: 0}))

	e.Update(ctx)
	assert.Equal(t, StateIdle, e.State(), "aggro range 280 ignores a player 300 away")
	assert.Equal(t, 100.0, e.Pos.X)
}

func TestEnemyAttackCooldownGatesReentry(t *testing.T) {
	e := spawnBrute(t, geom.Vec2{X: 100, Y: 100}, nil)
	ctx := testCtx(openGrid())
	ctx.Player = newTestPlayer(t, geom.Vec2{X: 130, Y: 100})

	e.Update(ctx)
	require.Equal(t, StateAttack, e.State())

	// Play out the swing (7 frames x 0.08s)
	for i := 0; i < 8; i++ {
		e.Update(ctx)
	}
	require.NotEqual(t, StateAttack, e.State())
	require.Greater(t, e.CooldownRemaining(), 0.0)

	// Still in range, but cooldown blocks a second swing
	e.Update(ctx)
	assert.NotEqual(t, StateAttack, e.State())
}

func TestEnemySwingDamagesPlayer(t *testing.T) {
	e := spawnBrute(t, geom.Vec2{X: 100, Y: 100}, nil)
	ctx := testCtx(openGrid())
	ctx.Player = newTestPlayer(t, geom.Vec2{X: 130, Y: 100})

	for i := 0; i < 10; i++ {
		e.Update(ctx)
	}

	assert.Equal(t, ctx.Player.MaxHP()-e.AttackDamage(), ctx.Player.HP)
	assert.True(t, ctx.Player.Invulnerable())
	assert.NotZero(t, ctx.Player.Knockback().Len())
}

func TestEnemyIdlesWhenPlayerDead(t *testing.T) {
	e := spawnBrute(t, geom.Vec2{X: 100, Y: 100}, nil)
	ctx := testCtx(openGrid())
	ctx.Player = newTestPlayer(t, geom.Vec2{X: 200, Y: 100})
	ctx.Player.TakeDamage(99, nil)
	require.Equal(t, StateDie, ctx.Player.State())

	e.Update(ctx)
	assert.Equal(t, StateIdle, e.State())
	assert.Equal(t, 100.0, e.Pos.X)
}

func TestDormantEnemySkipsAIUntilWoken(t *testing.T) {
	asleep := true
	e := spawnBrute(t, geom.Vec2{X: 100, Y: 100}, &KindPatch{Asleep: &asleep})
	ctx := testCtx(openGrid())
	ctx.Player = newTestPlayer(t, geom.Vec2{X: 160, Y: 100})

	for i := 0; i < 5; i++ {
		e.Update(ctx)
	}
	assert.Equal(t, StateIdle, e.State())
	assert.Equal(t, 100.0, e.Pos.X, "dormant enemy holds position")
	assert.True(t, e.Asleep())

	e.Wake()
	e.Update(ctx)
	assert.Equal(t, StateWalk, e.State())
	assert.Greater(t, e.Pos.X, 100.0)
}

func TestDormantEnemyStillTakesDamage(t *testing.T) {
	asleep := true
	e := spawnBrute(t, geom.Vec2{X: 100, Y: 100}, &KindPatch{Asleep: &asleep})

	source := geom.Vec2{X: 80, Y: 100}
	result := e.TakeDamage(1, &source)
	assert.True(t, result.Applied, "dormant suspends AI, not damage response")
	assert.Equal(t, StateHurt, e.State())
}

func TestRangedEnemyFiresProjectileOncePerSwing(t *testing.T) {
	reg := DefaultRegistry()
	e, err := reg.Spawn(KindShade, geom.Vec2{X: 100, Y: 100}, nil)
	require.NoError(t, err)

	ctx := testCtx(openGrid())
	ctx.Player = newTestPlayer(t, geom.Vec2{X: 200, Y: 100})

	// Play out spawn (0.5s), attack entry, and the full swing
	var spawned []*Projectile
	for i := 0; i < 20; i++ {
		e.Update(ctx)
		spawned = append(spawned, ctx.DrainSpawned()...)
	}

	require.Len(t, spawned, 1, "the hook fires exactly once per swing")
	p := spawned[0]
	assert.Equal(t, geom.Vec2{X: 1, Y: 0}, p.Direction(), "bolt aimed at the player")
	assert.Equal(t, 100.0, p.Pos.Y)
}
