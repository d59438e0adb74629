package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/emberfall/entity"
	"chosenoffset.com/emberfall/gamestate"
	"chosenoffset.com/emberfall/geom"
	"chosenoffset.com/emberfall/sprites"
)

// stubEntity records its update and draw order.
type stubEntity struct {
	id      string
	layer   int
	removed bool

	log *[]string

	// removeOnUpdate flags removal during the entity's own update.
	removeOnUpdate bool
	// spawnOnUpdate queues one projectile through the context.
	spawnOnUpdate bool
}

func (s *stubEntity) Update(ctx *entity.Context) {
	*s.log = append(*s.log, "update:"+s.id)
	if s.removeOnUpdate {
		s.removed = true
	}
	if s.spawnOnUpdate {
		s.spawnOnUpdate = false
		ctx.SpawnProjectile(entity.NewProjectile(geom.Vec2{}, geom.Vec2{X: 1}, 4, 1, 1, 8, "bolt"))
	}
}

func (s *stubEntity) Draw(screen *ebiten.Image, camX, camY float64, store *sprites.Store) {
	*s.log = append(*s.log, "draw:"+s.id)
}

func (s *stubEntity) Layer() int    { return s.layer }
func (s *stubEntity) Removed() bool { return s.removed }

func schedulerCtx() *entity.Context {
	return &entity.Context{DT: 0.1, State: gamestate.New()}
}

func TestSchedulerUpdatesInRegistrationOrder(t *testing.T) {
	var log []string
	s := NewScheduler()
	s.Register(&stubEntity{id: "a", log: &log})
	s.Register(&stubEntity{id: "b", log: &log})
	s.Register(&stubEntity{id: "c", log: &log})

	s.Update(schedulerCtx())
	assert.Equal(t, []string{"update:a", "update:b", "update:c"}, log)
}

func TestSchedulerSweepsRemovedBetweenTicks(t *testing.T) {
	var log []string
	s := NewScheduler()
	s.Register(&stubEntity{id: "a", log: &log})
	s.Register(&stubEntity{id: "b", log: &log, removeOnUpdate: true})
	s.Register(&stubEntity{id: "c", log: &log})

	// The removing entity still finishes its own tick
	s.Update(schedulerCtx())
	require.Equal(t, []string{"update:a", "update:b", "update:c"}, log)
	assert.Equal(t, 2, s.Len())

	// Next tick skips it entirely
	log = nil
	s.Update(schedulerCtx())
	assert.Equal(t, []string{"update:a", "update:c"}, log)
}

func TestSchedulerRegistersSpawnedProjectiles(t *testing.T) {
	var log []string
	s := NewScheduler()
	s.Register(&stubEntity{id: "a", log: &log, spawnOnUpdate: true})

	s.Update(schedulerCtx())
	assert.Equal(t, 2, s.Len(), "the spawned projectile joins the scheduler")

	// The projectile lives in the list and ticks down on later updates
	ctx := schedulerCtx()
	for i := 0; i < 12; i++ {
		s.Update(ctx)
	}
	assert.Equal(t, 1, s.Len(), "the projectile expires and is swept")
}

func TestSchedulerDrawsByLayerThenRegistration(t *testing.T) {
	var log []string
	s := NewScheduler()
	s.Register(&stubEntity{id: "proj", layer: 10, log: &log})
	s.Register(&stubEntity{id: "a", layer: 0, log: &log})
	s.Register(&stubEntity{id: "b", layer: 0, log: &log})

	s.Draw(nil, 0, 0, nil)
	assert.Equal(t, []string{"draw:a", "draw:b", "draw:proj"}, log,
		"higher layers draw last, same layer keeps registration order")
}
