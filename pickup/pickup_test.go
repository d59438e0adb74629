package pickup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/emberfall/entity"
	"chosenoffset.com/emberfall/gamestate"
	"chosenoffset.com/emberfall/geom"
)

func testCtx(t *testing.T, playerPos geom.Vec2) *entity.Context {
	t.Helper()
	player, err := entity.NewPlayer(entity.DefaultPlayerConfig(), playerPos)
	require.NoError(t, err)
	return &entity.Context{
		DT:     0.1,
		State:  gamestate.New(),
		Player: player,
	}
}

func TestPickupValidation(t *testing.T) {
	_, err := New(geom.Vec2{}, 0, "key", CounterEffect{Key: "keys", Amount: 1})
	assert.Error(t, err, "non-positive radius must abort creation")

	_, err = New(geom.Vec2{}, 20, "key", nil)
	assert.Error(t, err, "missing effect must abort creation")
}

func TestPickupCollectsExactlyOnce(t *testing.T) {
	// Radius 20 at (100,100), player at (100,115): distance 15 collects
	p, err := New(geom.Vec2{X: 100, Y: 100}, 20, "key", CounterEffect{Key: "keys", Amount: 1})
	require.NoError(t, err)
	ctx := testCtx(t, geom.Vec2{X: 100, Y: 115})

	p.Update(ctx)
	require.True(t, p.Collected())
	assert.True(t, p.Removed())
	assert.Equal(t, 1, ctx.State.Counter("keys"))

	// Second tick at the same distance is a no-op
	p.Update(ctx)
	assert.Equal(t, 1, ctx.State.Counter("keys"))
}

func TestPickupOutOfRangeDoesNothing(t *testing.T) {
	p, err := New(geom.Vec2{X: 100, Y: 100}, 20, "key", CounterEffect{Key: "keys", Amount: 1})
	require.NoError(t, err)
	ctx := testCtx(t, geom.Vec2{X: 100, Y: 121})

	p.Update(ctx)
	assert.False(t, p.Collected())
	assert.Zero(t, ctx.State.Counter("keys"))
}

func TestHealEffectClampsToMax(t *testing.T) {
	p, err := New(geom.Vec2{X: 100, Y: 100}, 20, "potion", HealEffect{Amount: 10})
	require.NoError(t, err)
	ctx := testCtx(t, geom.Vec2{X: 100, Y: 110})
	ctx.Player.TakeDamage(1, nil)
	require.Equal(t, ctx.Player.MaxHP()-1, ctx.Player.HP)

	p.Update(ctx)
	assert.Equal(t, ctx.Player.MaxHP(), ctx.Player.HP)
}

func TestFlagEffectSetsScrollFlag(t *testing.T) {
	p, err := New(geom.Vec2{X: 100, Y: 100}, 20, "scroll", FlagEffect{Key: "scroll_read"})
	require.NoError(t, err)
	ctx := testCtx(t, geom.Vec2{X: 100, Y: 100})

	p.Update(ctx)
	assert.True(t, ctx.State.Flag("scroll_read"))
}

func TestCombinedEffects(t *testing.T) {
	effect := Effects(CounterEffect{Key: "keys", Amount: 1}, FlagEffect{Key: "vault_open"})
	p, err := New(geom.Vec2{X: 100, Y: 100}, 20, "key", effect)
	require.NoError(t, err)
	ctx := testCtx(t, geom.Vec2{X: 100, Y: 100})

	p.Update(ctx)
	assert.Equal(t, 1, ctx.State.Counter("keys"))
	assert.True(t, ctx.State.Flag("vault_open"))
}

func TestAlertWakesLinkedEnemiesBeforeCollection(t *testing.T) {
	asleep := true
	guard, err := entity.DefaultRegistry().Spawn(entity.KindWolf, geom.Vec2{X: 300, Y: 100}, &entity.KindPatch{Asleep: &asleep})
	require.NoError(t, err)

	p, err := New(geom.Vec2{X: 100, Y: 100}, 20, "key", CounterEffect{Key: "keys", Amount: 1})
	require.NoError(t, err)
	p.LinkDormant(120, guard)

	// Inside the alert radius but outside the pickup radius: wake only
	ctx := testCtx(t, geom.Vec2{X: 100, Y: 180})
	p.Update(ctx)
	assert.True(t, p.Woken())
	assert.False(t, guard.Asleep())
	assert.False(t, p.Collected(), "alert must not collect the pickup")

	// Closing in collects as usual
	ctx.Player.Pos = geom.Vec2{X: 100, Y: 110}
	p.Update(ctx)
	assert.True(t, p.Collected())
}

func TestAlertAndCollectionInSameTick(t *testing.T) {
	asleep := true
	guard, err := entity.DefaultRegistry().Spawn(entity.KindWolf, geom.Vec2{X: 300, Y: 100}, &entity.KindPatch{Asleep: &asleep})
	require.NoError(t, err)

	p, err := New(geom.Vec2{X: 100, Y: 100}, 20, "key", CounterEffect{Key: "keys", Amount: 1})
	require.NoError(t, err)
	p.LinkDormant(120, guard)

	// Inside both radii at once: the alert fires first, then collection
	ctx := testCtx(t, geom.Vec2{X: 100, Y: 110})
	p.Update(ctx)
	assert.True(t, p.Woken())
	assert.False(t, guard.Asleep())
	assert.True(t, p.Collected())
}

func TestAlertFiresOnce(t *testing.T) {
	asleep := true
	guard, err := entity.DefaultRegistry().Spawn(entity.KindWolf, geom.Vec2{X: 300, Y: 100}, &entity.KindPatch{Asleep: &asleep})
	require.NoError(t, err)

	p, err := New(geom.Vec2{X: 100, Y: 100}, 20, "key", CounterEffect{Key: "keys", Amount: 1})
	require.NoError(t, err)
	p.LinkDormant(120, guard)

	ctx := testCtx(t, geom.Vec2{X: 100, Y: 180})
	p.Update(ctx)
	require.True(t, p.Woken())

	// The trigger stays latched on later ticks
	p.Update(ctx)
	assert.True(t, p.Woken())
	assert.False(t, guard.Asleep())
}

func TestDeadPlayerTriggersNothing(t *testing.T) {
	p, err := New(geom.Vec2{X: 100, Y: 100}, 20, "key", CounterEffect{Key: "keys", Amount: 1})
	require.NoError(t, err)
	ctx := testCtx(t, geom.Vec2{X: 100, Y: 100})
	ctx.Player.TakeDamage(99, nil)

	p.Update(ctx)
	assert.False(t, p.Collected())
	assert.Zero(t, ctx.State.Counter("keys"))
}
