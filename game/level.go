package game

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/emberfall/entity"
	"chosenoffset.com/emberfall/gamestate"
	"chosenoffset.com/emberfall/geom"
	"chosenoffset.com/emberfall/objective"
	"chosenoffset.com/emberfall/pickup"
	"chosenoffset.com/emberfall/world"
)

// Counter and flag keys shared between pickups, objectives, and the HUD.
const (
	CounterKeys  = "keys"
	CounterSlain = "slain"
	FlagScroll   = "scroll_read"
)

// placementAttempts caps random placement searches. Exhausted searches
// fall back to a position near the spawn; level load never blocks.
const placementAttempts = 200

// guardAlertRadius is how close the player gets to the scroll before its
// dormant guards wake.
const guardAlertRadius = 140

// LevelConfig describes one level: the world source plus what to
// populate it with.
type LevelConfig struct {
	// MapPath selects the imported world variant; empty means
	// procedural generation with Generate.
	MapPath  string
	Generate world.GenerateConfig

	// KindLibraryPath optionally loads extra enemy kinds from JSON.
	KindLibraryPath string

	Keys    int
	Enemies map[entity.KindID]int

	// Guards are dormant enemies placed around the scroll, woken by its
	// alert radius.
	GuardKind entity.KindID
	Guards    int

	Seed int64 // 0 = use current time
}

// DefaultLevelConfig returns the standard forest level.
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		Generate: world.DefaultGenerateConfig(),
		Keys:     3,
		Enemies: map[entity.KindID]int{
			entity.KindWolf:  4,
			entity.KindBrute: 2,
			entity.KindShade: 2,
		},
		GuardKind: entity.KindBrute,
		Guards:    2,
	}
}

// Level is a fully wired playfield: the grid, the live entities, the
// scheduler that runs them, and the objective tracker.
type Level struct {
	Grid    *world.Grid
	Player  *entity.Player
	Enemies []*entity.Enemy
	Pickups []*pickup.Pickup

	Scheduler *Scheduler
	Tracker   *objective.Tracker
	State     *gamestate.State

	KeysPlaced int
}

// BuildLevel loads or generates the world grid and populates it.
func BuildLevel(cfg LevelConfig) (*Level, error) {
	var grid *world.Grid
	var err error
	if cfg.MapPath != "" {
		grid, err = world.LoadMap(cfg.MapPath)
	} else {
		gen := cfg.Generate
		if gen.Seed == 0 {
			gen.Seed = cfg.Seed
		}
		grid, err = world.Generate(gen)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build world: %w", err)
	}
	return FromGrid(grid, cfg)
}

// FromGrid populates an already-built grid: the player at the spawn
// marker, enemies and pickups from map markers where present, random
// placements otherwise, and the objective chain over both.
func FromGrid(grid *world.Grid, cfg LevelConfig) (*Level, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	registry := entity.DefaultRegistry()
	if cfg.KindLibraryPath != "" {
		if err := registry.LoadKindLibrary(cfg.KindLibraryPath); err != nil {
			return nil, err
		}
	}

	spawn, ok := grid.Marker("spawn")
	if !ok {
		spawn = geom.Vec2{
			X: float64(grid.PixelWidth()) / 2,
			Y: float64(grid.PixelHeight()) / 2,
		}
	}

	player, err := entity.NewPlayer(entity.DefaultPlayerConfig(), spawn)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	lvl := &Level{
		Grid:      grid,
		Player:    player,
		Scheduler: NewScheduler(),
		State:     gamestate.New(),
	}
	lvl.Scheduler.Register(player)

	if err := lvl.populateFromMarkers(grid, registry); err != nil {
		return nil, err
	}
	if err := lvl.populateRandom(grid, cfg, registry, rng, spawn); err != nil {
		return nil, err
	}
	if err := lvl.placeScroll(grid, cfg, registry, rng, spawn); err != nil {
		return nil, err
	}

	for _, e := range lvl.Enemies {
		lvl.Scheduler.Register(e)
	}
	for _, p := range lvl.Pickups {
		lvl.Scheduler.Register(p)
	}

	lvl.Tracker = lvl.buildObjectives(cfg)

	logrus.WithFields(logrus.Fields{
		"seed":    seed,
		"keys":    lvl.KeysPlaced,
		"enemies": len(lvl.Enemies),
		"pickups": len(lvl.Pickups),
	}).Info("level ready")

	return lvl, nil
}

// populateFromMarkers reads imported-map point markers: "key_1" places a
// key pickup, "potion_2" a healing potion, and a marker whose prefix
// names a registered enemy kind ("wolf_3") spawns that kind. Marker
// names are walked in sorted order so loads are deterministic.
func (lvl *Level) populateFromMarkers(grid *world.Grid, registry *entity.Registry) error {
	names := make([]string, 0, len(grid.Markers))
	for name := range grid.Markers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pos := grid.Markers[name]
		prefix, _, _ := strings.Cut(name, "_")
		switch prefix {
		case "spawn", "scroll":
			// spawn is handled by the caller, scroll by placeScroll
		case "key":
			p, err := pickup.New(pos, 20, "key", pickup.CounterEffect{Key: CounterKeys, Amount: 1})
			if err != nil {
				return fmt.Errorf("marker %s: %w", name, err)
			}
			lvl.Pickups = append(lvl.Pickups, p)
			lvl.KeysPlaced++
		case "potion":
			p, err := pickup.New(pos, 20, "potion", pickup.HealEffect{Amount: 2})
			if err != nil {
				return fmt.Errorf("marker %s: %w", name, err)
			}
			lvl.Pickups = append(lvl.Pickups, p)
		default:
			if _, ok := registry.Kind(entity.KindID(prefix)); !ok {
				continue
			}
			e, err := registry.Spawn(entity.KindID(prefix), pos, nil)
			if err != nil {
				return fmt.Errorf("marker %s: %w", name, err)
			}
			lvl.Enemies = append(lvl.Enemies, e)
		}
	}
	return nil
}

// populateRandom fills in whatever the markers did not provide: when a
// grid carries no key markers the configured key count is scattered
// randomly, and likewise for enemies.
func (lvl *Level) populateRandom(grid *world.Grid, cfg LevelConfig, registry *entity.Registry, rng *rand.Rand, spawn geom.Vec2) error {
	if lvl.KeysPlaced == 0 {
		for i := 0; i < cfg.Keys; i++ {
			pos := randomWalkable(grid, rng, spawn, 200)
			p, err := pickup.New(pos, 20, "key", pickup.CounterEffect{Key: CounterKeys, Amount: 1})
			if err != nil {
				return err
			}
			lvl.Pickups = append(lvl.Pickups, p)
			lvl.KeysPlaced++
		}
	}

	if len(lvl.Enemies) == 0 {
		kinds := make([]entity.KindID, 0, len(cfg.Enemies))
		for kind := range cfg.Enemies {
			kinds = append(kinds, kind)
		}
		sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

		for _, kind := range kinds {
			for i := 0; i < cfg.Enemies[kind]; i++ {
				pos := randomWalkable(grid, rng, spawn, 260)
				e, err := registry.Spawn(kind, pos, nil)
				if err != nil {
					return err
				}
				lvl.Enemies = append(lvl.Enemies, e)
			}
		}
	}
	return nil
}

// placeScroll puts the scroll pickup at its marker or a random far spot,
// surrounds it with dormant guards, and links them to its alert radius.
func (lvl *Level) placeScroll(grid *world.Grid, cfg LevelConfig, registry *entity.Registry, rng *rand.Rand, spawn geom.Vec2) error {
	pos, ok := grid.Marker("scroll")
	if !ok {
		pos = randomWalkable(grid, rng, spawn, 400)
	}

	scroll, err := pickup.New(pos, 20, "scroll", pickup.FlagEffect{Key: FlagScroll})
	if err != nil {
		return err
	}

	if cfg.Guards > 0 && cfg.GuardKind != "" {
		asleep := true
		for i := 0; i < cfg.Guards; i++ {
			guardPos := randomNear(grid, rng, pos, 48, 96)
			guard, err := registry.Spawn(cfg.GuardKind, guardPos, &entity.KindPatch{Asleep: &asleep})
			if err != nil {
				return err
			}
			lvl.Enemies = append(lvl.Enemies, guard)
			scroll.LinkDormant(guardAlertRadius, guard)
		}
	}

	lvl.Pickups = append(lvl.Pickups, scroll)
	return nil
}

// buildObjectives chains the level's objectives: collect the keys, read
// the scroll, slay its guards.
func (lvl *Level) buildObjectives(cfg LevelConfig) *objective.Tracker {
	var steps []objective.Step
	if lvl.KeysPlaced > 0 {
		steps = append(steps, objective.CounterStep{
			State:  lvl.State,
			Key:    CounterKeys,
			Target: lvl.KeysPlaced,
			Label:  "Collect the keys",
		})
	}
	steps = append(steps, objective.FlagStep{
		State: lvl.State,
		Key:   FlagScroll,
		Label: "Find the scroll",
	})
	if cfg.Guards > 0 {
		steps = append(steps, objective.CounterStep{
			State:  lvl.State,
			Key:    CounterSlain,
			Target: cfg.Guards,
			Label:  "Slay the scroll's guardians",
		})
	}
	return objective.New(steps...)
}

// LiveEnemies returns the enemies still in play this tick.
func (lvl *Level) LiveEnemies() []*entity.Enemy {
	live := lvl.Enemies[:0]
	for _, e := range lvl.Enemies {
		if !e.Removed() {
			live = append(live, e)
		}
	}
	lvl.Enemies = live
	return live
}

// randomWalkable searches for an unblocked position at least minDist
// from origin. The search is bounded; exhaustion falls back to a spot
// next to the origin rather than failing the load.
func randomWalkable(grid *world.Grid, rng *rand.Rand, origin geom.Vec2, minDist float64) geom.Vec2 {
	w := float64(grid.PixelWidth())
	h := float64(grid.PixelHeight())
	for attempt := 0; attempt < placementAttempts; attempt++ {
		pos := geom.Vec2{X: rng.Float64() * w, Y: rng.Float64() * h}
		if grid.IsBlocked(pos.X, pos.Y) {
			continue
		}
		if origin.DistanceTo(pos) < minDist {
			continue
		}
		return pos
	}
	return geom.Vec2{X: origin.X + float64(grid.TileSize), Y: origin.Y}
}

// randomNear searches for an unblocked position in a ring around center.
// Exhaustion falls back to the center itself.
func randomNear(grid *world.Grid, rng *rand.Rand, center geom.Vec2, minDist, maxDist float64) geom.Vec2 {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := minDist + rng.Float64()*(maxDist-minDist)
		pos := geom.Vec2{
			X: center.X + dist*math.Cos(angle),
			Y: center.Y + dist*math.Sin(angle),
		}
		if !grid.IsBlocked(pos.X, pos.Y) {
			return pos
		}
	}
	return center
}
