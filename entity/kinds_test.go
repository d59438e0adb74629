package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/emberfall/geom"
)

func TestMergeIsPure(t *testing.T) {
	base, ok := DefaultRegistry().Kind(KindWolf)
	require.True(t, ok)

	hp := 10
	aggro := 500.0
	merged := Merge(base, KindPatch{MaxHP: &hp, AggroRange: &aggro})

	assert.Equal(t, 10, merged.Config.MaxHP)
	assert.Equal(t, 500.0, merged.AggroRange)
	assert.Equal(t, base.Config.Speed, merged.Config.Speed)

	fresh, _ := DefaultRegistry().Kind(KindWolf)
	assert.Equal(t, fresh.Config.MaxHP, base.Config.MaxHP, "merge must not mutate the base")
	assert.Equal(t, fresh.AggroRange, base.AggroRange)
}

func TestMergeEmptyPatchKeepsBase(t *testing.T) {
	base, _ := DefaultRegistry().Kind(KindBrute)
	merged := Merge(base, KindPatch{})
	assert.Equal(t, base.Config.MaxHP, merged.Config.MaxHP)
	assert.Equal(t, base.Config.AttackCooldown, merged.Config.AttackCooldown)
	assert.Equal(t, base.Asleep, merged.Asleep)
}

func TestSpawnUnknownKindFails(t *testing.T) {
	_, err := DefaultRegistry().Spawn(KindID("gremlin"), geom.Vec2{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gremlin")
}

func TestSpawnAppliesPatch(t *testing.T) {
	hp := 1
	speed := 200.0
	e, err := DefaultRegistry().Spawn(KindWolf, geom.Vec2{X: 50, Y: 50}, &KindPatch{MaxHP: &hp, Speed: &speed})
	require.NoError(t, err)
	assert.Equal(t, 1, e.MaxHP())
	assert.Equal(t, 1, e.HP)
	assert.Equal(t, 200.0, e.Speed())
}

const testKindLibraryJSON = `{
	"name": "crypt",
	"kinds": [
		{
			"id": "ghoul",
			"max_hp": 4,
			"speed": 80,
			"foot_w": 20,
			"foot_h": 12,
			"attack_damage": 1,
			"attack_range": 32,
			"attack_reach": 20,
			"attack_radius": 12,
			"attack_cooldown": 1.5,
			"stop_distance": 28,
			"aggro_range": 300,
			"asleep": true,
			"clips": {
				"idle": {"sprite": "ghoul_idle", "frames": 4, "frame_w": 32, "frame_h": 32, "frame_time": 0.2, "loop": true},
				"walk": {"sprite": "ghoul_walk", "frames": 6, "frame_w": 32, "frame_h": 32, "frame_time": 0.1, "loop": true},
				"attack": {"sprite": "ghoul_attack", "frames": 5, "frame_w": 40, "frame_h": 32, "frame_time": 0.08}
			}
		}
	]
}`

func writeKindLibrary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kinds.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadKindLibrary(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.LoadKindLibrary(writeKindLibrary(t, testKindLibraryJSON)))

	def, ok := r.Kind(KindID("ghoul"))
	require.True(t, ok)
	assert.Equal(t, 4, def.Config.MaxHP)
	assert.Equal(t, 300.0, def.AggroRange)
	assert.True(t, def.Asleep)
	assert.True(t, def.Config.Clips[StateWalk].Loop)

	e, err := r.Spawn(KindID("ghoul"), geom.Vec2{X: 100, Y: 100}, nil)
	require.NoError(t, err)
	assert.True(t, e.Asleep())
}

func TestLoadKindLibraryRejectsUnknownState(t *testing.T) {
	bad := `{"name": "bad", "kinds": [{
		"id": "ghoul", "max_hp": 4, "speed": 80, "foot_w": 20, "foot_h": 12,
		"attack_cooldown": 1,
		"clips": {"sprint": {"sprite": "x", "frames": 2, "frame_w": 32, "frame_h": 32, "frame_time": 0.1}}
	}]}`
	err := NewRegistry().LoadKindLibrary(writeKindLibrary(t, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sprint")
}

func TestLoadKindLibraryRejectsMissingID(t *testing.T) {
	bad := `{"name": "bad", "kinds": [{"max_hp": 4}]}`
	err := NewRegistry().LoadKindLibrary(writeKindLibrary(t, bad))
	assert.Error(t, err)
}

func TestLoadKindLibraryMissingFile(t *testing.T) {
	err := NewRegistry().LoadKindLibrary(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestAttachHooks(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.LoadKindLibrary(writeKindLibrary(t, testKindLibraryJSON)))

	hook := ProjectileSpawnHook{Speed: 5, Damage: 1, Life: 2, Radius: 10, Sprite: "bolt"}
	require.NoError(t, r.AttachHooks(KindID("ghoul"), hook, 2, nil))

	def, _ := r.Kind(KindID("ghoul"))
	assert.Equal(t, hook, def.AttackHook)
	assert.Equal(t, 2, def.HookFrame)

	assert.Error(t, r.AttachHooks(KindID("missing"), hook, 0, nil))
}
