package world

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"chosenoffset.com/emberfall/geom"

	"github.com/sirupsen/logrus"
)

// ScatterSpec describes one decorative object type to scatter across the
// generated world.
type ScatterSpec struct {
	Kind       string  // Sprite key and object kind ("tree", "bush", "stone")
	Count      int     // How many to place
	MinSpacing float64 // Minimum distance to another object of any kind
	Blocking   bool    // Whether the object's footprint blocks movement
	FootprintW float64 // Collision footprint width in pixels
	FootprintH float64 // Collision footprint height in pixels
	SpriteSize float64 // Drawn sprite size in pixels (square)
}

// GenerateConfig holds the knobs for procedural world generation.
type GenerateConfig struct {
	Cols     int
	Rows     int
	TileSize int

	BorderThickness int // Wall thickness around the edge, in tiles

	PatchCount     int     // Number of blocked patches to scatter
	PatchMinRadius int     // Patch radius range, in tiles
	PatchMaxRadius int
	PatchFill      float64 // Probability a tile inside a patch becomes blocked

	SpawnClearRadius float64 // No objects within this distance of the spawn, in pixels

	Objects []ScatterSpec

	GroundTile string // Sprite key for walkable tiles
	WallTile   string // Sprite key for blocked tiles

	Seed int64 // 0 = use current time
}

// placementAttemptsPerObject caps the scatter loop. Placements that cannot
// be satisfied within the cap are skipped, never a hard failure.
const placementAttemptsPerObject = 140

// DefaultGenerateConfig returns a forest level configuration sized for the
// default viewport.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Cols:             60,
		Rows:             45,
		TileSize:         32,
		BorderThickness:  2,
		PatchCount:       10,
		PatchMinRadius:   2,
		PatchMaxRadius:   4,
		PatchFill:        0.85,
		SpawnClearRadius: 160,
		GroundTile:       "grass",
		WallTile:         "wall",
		Objects: []ScatterSpec{
			{Kind: "tree", Count: 28, MinSpacing: 72, Blocking: true, FootprintW: 20, FootprintH: 14, SpriteSize: 48},
			{Kind: "bush", Count: 18, MinSpacing: 48, Blocking: false, SpriteSize: 32},
			{Kind: "stone", Count: 12, MinSpacing: 56, Blocking: true, FootprintW: 18, FootprintH: 12, SpriteSize: 32},
		},
	}
}

// Generate builds a procedural world grid: walkable ground, a border wall,
// scattered blocked patches, and decorative objects. The spawn marker is
// placed near the world center on a walkable tile.
func Generate(cfg GenerateConfig) (*Grid, error) {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: %dx%d", cfg.Cols, cfg.Rows)
	}
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size: %d", cfg.TileSize)
	}
	if cfg.PatchFill <= 0 {
		cfg.PatchFill = 0.85
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Grid{
		Cols:     cfg.Cols,
		Rows:     cfg.Rows,
		TileSize: cfg.TileSize,
		Markers:  make(map[string]geom.Vec2),
	}

	// Start all-walkable, then carve the border wall.
	g.Tiles = make([][]Tile, cfg.Rows)
	for row := 0; row < cfg.Rows; row++ {
		g.Tiles[row] = make([]Tile, cfg.Cols)
		for col := 0; col < cfg.Cols; col++ {
			g.Tiles[row][col] = Tile{Sprite: cfg.GroundTile, Walkable: true}
		}
	}
	border := cfg.BorderThickness
	if border < 1 {
		border = 1
	}
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			if row < border || row >= cfg.Rows-border || col < border || col >= cfg.Cols-border {
				g.Tiles[row][col] = Tile{Sprite: cfg.WallTile, Walkable: false}
			}
		}
	}

	carvePatches(g, cfg, rng)

	spawn := findSpawn(g, rng)
	g.Markers["spawn"] = spawn

	placed, skipped := scatterObjects(g, cfg, spawn, rng)

	logrus.WithFields(logrus.Fields{
		"seed":    seed,
		"size":    fmt.Sprintf("%dx%d", cfg.Cols, cfg.Rows),
		"patches": cfg.PatchCount,
		"objects": placed,
		"skipped": skipped,
	}).Info("generated world")

	return g, nil
}

// carvePatches scatters roughly-circular blocked areas across the interior.
func carvePatches(g *Grid, cfg GenerateConfig, rng *rand.Rand) {
	minR := cfg.PatchMinRadius
	maxR := cfg.PatchMaxRadius
	if minR < 1 {
		minR = 1
	}
	if maxR < minR {
		maxR = minR
	}

	for i := 0; i < cfg.PatchCount; i++ {
		centerCol := rng.Intn(cfg.Cols)
		centerRow := rng.Intn(cfg.Rows)
		radius := minR + rng.Intn(maxR-minR+1)

		for row := centerRow - radius; row <= centerRow+radius; row++ {
			for col := centerCol - radius; col <= centerCol+radius; col++ {
				if row < 0 || row >= cfg.Rows || col < 0 || col >= cfg.Cols {
					continue
				}
				dx := float64(col - centerCol)
				dy := float64(row - centerRow)
				if math.Hypot(dx, dy) > float64(radius) {
					continue
				}
				if rng.Float64() < cfg.PatchFill {
					g.Tiles[row][col] = Tile{Sprite: cfg.WallTile, Walkable: false}
				}
			}
		}
	}
}

// findSpawn looks for a walkable tile near the world center. The search is
// a bounded random walk outward; if nothing opens up, the exact center is
// used as a fallback so level load never blocks.
func findSpawn(g *Grid, rng *rand.Rand) geom.Vec2 {
	half := float64(g.TileSize) / 2
	centerCol := g.Cols / 2
	centerRow := g.Rows / 2

	for attempt := 0; attempt < 200; attempt++ {
		spread := 1 + attempt/20
		col := centerCol + rng.Intn(2*spread+1) - spread
		row := centerRow + rng.Intn(2*spread+1) - spread
		if tile, ok := g.TileAt(col, row); ok && tile.Walkable {
			return geom.Vec2{X: float64(col*g.TileSize) + half, Y: float64(row*g.TileSize) + half}
		}
	}

	return geom.Vec2{X: float64(centerCol*g.TileSize) + half, Y: float64(centerRow*g.TileSize) + half}
}

// scatterObjects places decorative objects, rejecting positions on blocked
// tiles, too close to the spawn, or too close to an already-placed object.
// The spacing check only searches the local neighborhood; total attempts
// are capped, leftover placements are skipped.
func scatterObjects(g *Grid, cfg GenerateConfig, spawn geom.Vec2, rng *rand.Rand) (placed, skipped int) {
	for _, spec := range cfg.Objects {
		attempts := spec.Count * placementAttemptsPerObject
		remaining := spec.Count

		for attempts > 0 && remaining > 0 {
			attempts--

			x := rng.Float64() * float64(g.PixelWidth())
			y := rng.Float64() * float64(g.PixelHeight())

			col := int(x) / g.TileSize
			row := int(y) / g.TileSize
			if tile, ok := g.TileAt(col, row); !ok || !tile.Walkable {
				continue
			}
			if spawn.DistanceTo(geom.Vec2{X: x, Y: y}) < cfg.SpawnClearRadius {
				continue
			}
			if tooCloseToObject(g, x, y, spec.MinSpacing) {
				continue
			}

			size := spec.SpriteSize
			if size <= 0 {
				size = float64(g.TileSize)
			}
			obj := Object{
				Kind:     spec.Kind,
				Pos:      geom.Vec2{X: x - size/2, Y: y - size},
				Blocking: spec.Blocking,
			}
			if spec.Blocking {
				obj.Footprint = geom.Rect{
					X: x - spec.FootprintW/2,
					Y: y - spec.FootprintH,
					W: spec.FootprintW,
					H: spec.FootprintH,
				}
			}
			g.Objects = append(g.Objects, obj)
			remaining--
			placed++
		}

		skipped += remaining
	}
	return placed, skipped
}

// tooCloseToObject reports whether any existing object's base position is
// within minSpacing of (x, y). The search is bounded to a neighborhood of
// twice the spacing so dense worlds stay cheap to generate.
func tooCloseToObject(g *Grid, x, y, minSpacing float64) bool {
	if minSpacing <= 0 {
		return false
	}
	searchRadius := minSpacing * 2
	for _, obj := range g.Objects {
		base := geom.Vec2{X: obj.Pos.X, Y: obj.Pos.Y}
		dx := math.Abs(base.X - x)
		dy := math.Abs(base.Y - y)
		if dx > searchRadius || dy > searchRadius {
			continue
		}
		if math.Hypot(dx, dy) < minSpacing {
			return true
		}
	}
	return false
}
