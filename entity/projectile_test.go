package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/emberfall/geom"
)

func TestProjectileDirectionLockedAndNormalized(t *testing.T) {
	p := NewProjectile(geom.Vec2{}, geom.Vec2{X: 3, Y: 4}, 6, 1, 1, 10, "bolt")
	dir := p.Direction()
	assert.InDelta(t, 0.6, dir.X, 1e-9)
	assert.InDelta(t, 0.8, dir.Y, 1e-9)
}

func TestProjectileLifetimeExpiry(t *testing.T) {
	// Direction (1,0), speed 6 per tick, life 2.4s, radius 14, 0.1s ticks:
	// exactly (6,0) of travel per tick, self-expiry after 24 ticks.
	grid := buildGrid(30, 8, func(col, row int) bool { return true })
	p := NewProjectile(geom.Vec2{X: 100, Y: 100}, geom.Vec2{X: 1, Y: 0}, 6, 1, 2.4, 14, "bolt")
	ctx := testCtx(grid)

	ticks := 0
	for !p.Removed() {
		prev := p.Pos
		p.Update(ctx)
		ticks++
		require.Equal(t, prev.X+6, p.Pos.X, "tick %d must advance exactly 6 in x", ticks)
		require.Equal(t, prev.Y, p.Pos.Y)
		require.LessOrEqual(t, ticks, 30, "projectile failed to expire")
	}

	assert.Equal(t, 24, ticks, "life 2.4s at 0.1s ticks expires on tick 24")
	assert.Equal(t, 244.0, p.Pos.X)
}

func TestProjectileExpiresOnWall(t *testing.T) {
	p := NewProjectile(geom.Vec2{X: 60, Y: 80}, geom.Vec2{X: 1, Y: 0}, 6, 1, 10, 14, "bolt")
	ctx := testCtx(walledGrid())

	for i := 0; i < 10 && !p.Removed(); i++ {
		p.Update(ctx)
	}

	require.True(t, p.Removed(), "projectile must expire on the wall column")
	assert.Equal(t, 96.0, p.Pos.X, "expires at the first blocked position")
}

func TestProjectileHitsPlayerExactlyOnce(t *testing.T) {
	p := NewProjectile(geom.Vec2{X: 100, Y: 100}, geom.Vec2{X: 1, Y: 0}, 6, 1, 10, 14, "bolt")
	ctx := testCtx(openGrid())
	ctx.Player = newTestPlayer(t, geom.Vec2{X: 150, Y: 100})

	for i := 0; i < 20 && !p.Removed(); i++ {
		p.Update(ctx)
	}

	require.True(t, p.Removed(), "projectile must expire on hit")
	assert.Equal(t, ctx.Player.MaxHP()-1, ctx.Player.HP)
	assert.True(t, ctx.Player.Invulnerable())

	// The projectile is gone; further updates cannot double-apply
	hp := ctx.Player.HP
	p.Update(ctx)
	assert.Equal(t, hp, ctx.Player.HP)
}

func TestProjectileIgnoresDeadPlayer(t *testing.T) {
	p := NewProjectile(geom.Vec2{X: 100, Y: 100}, geom.Vec2{X: 1, Y: 0}, 6, 1, 10, 14, "bolt")
	ctx := testCtx(openGrid())
	ctx.Player = newTestPlayer(t, geom.Vec2{X: 130, Y: 100})
	ctx.Player.TakeDamage(99, nil)

	p.Update(ctx)
	assert.False(t, p.Removed(), "dead players are not hit targets")
}
