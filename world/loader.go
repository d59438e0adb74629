package world

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/emberfall/geom"

	"github.com/sirupsen/logrus"
)

// TilesetData resolves numeric tile references to drawable sprites. Two
// variants exist: a spritesheet (one image, fixed cell size, columns
// derived from the image width) or a per-tile lookup (one image key per
// local id).
type TilesetData struct {
	Name    string `json:"name"`
	FirstID int    `json:"first_id"` // Global id of the tileset's first tile

	// Spritesheet variant
	Image      string `json:"image,omitempty"`       // Sprite key of the sheet
	ImageWidth int    `json:"image_width,omitempty"` // Sheet width in pixels
	CellSize   int    `json:"cell_size,omitempty"`   // Square cell size in pixels

	// Per-tile variant
	TileImages map[string]string `json:"tile_images,omitempty"` // Local id -> sprite key

	// Local ids of tiles that block movement
	Blocked []int `json:"blocked,omitempty"`
}

// Columns returns how many cells fit across the spritesheet.
func (ts *TilesetData) Columns() int {
	if ts.CellSize <= 0 {
		return 0
	}
	return ts.ImageWidth / ts.CellSize
}

// TileLayerData is a named grid of global tile references.
type TileLayerData struct {
	Name string  `json:"name"`
	Grid [][]int `json:"grid"` // [row][col], 0 = empty
}

// RectObjectData is a rectangle in an object layer. Type "solid" rects
// become collision rectangles.
type RectObjectData struct {
	Name string  `json:"name,omitempty"`
	Type string  `json:"type,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

// PointObjectData is a named point marker (spawn, key positions, scroll).
type PointObjectData struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// ObjectLayerData groups rectangles and point markers under a layer name.
type ObjectLayerData struct {
	Name   string            `json:"name"`
	Rects  []RectObjectData  `json:"rects,omitempty"`
	Points []PointObjectData `json:"points,omitempty"`
}

// MapData is the on-disk map description.
type MapData struct {
	Name         string            `json:"name"`
	Width        int               `json:"width"`  // In tiles
	Height       int               `json:"height"` // In tiles
	TileSize     int               `json:"tile_size"`
	BaseLayer    string            `json:"base_layer"` // Which tile layer is the walkable base
	Tilesets     []TilesetData     `json:"tilesets"`
	TileLayers   []TileLayerData   `json:"tile_layers"`
	ObjectLayers []ObjectLayerData `json:"object_layers,omitempty"`
}

// LoadMap reads a map description file and builds a world grid from it.
// The resulting grid answers the same collision contract as a generated
// one; nothing downstream depends on which variant produced it.
func LoadMap(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}

	grid, err := BuildGrid(&mapData)
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"map":     mapData.Name,
		"size":    fmt.Sprintf("%dx%d", mapData.Width, mapData.Height),
		"layers":  len(mapData.TileLayers),
		"markers": len(grid.Markers),
	}).Info("loaded map")

	return grid, nil
}

// BuildGrid validates a map description and resolves it into a Grid.
func BuildGrid(data *MapData) (*Grid, error) {
	if err := validateMapData(data); err != nil {
		return nil, err
	}

	base := findTileLayer(data, data.BaseLayer)

	g := &Grid{
		Cols:     data.Width,
		Rows:     data.Height,
		TileSize: data.TileSize,
		Markers:  make(map[string]geom.Vec2),
	}

	g.Tiles = make([][]Tile, data.Height)
	for row := 0; row < data.Height; row++ {
		g.Tiles[row] = make([]Tile, data.Width)
		for col := 0; col < data.Width; col++ {
			tile, err := resolveTile(data, base.Grid[row][col])
			if err != nil {
				return nil, fmt.Errorf("layer %s (%d,%d): %w", base.Name, col, row, err)
			}
			g.Tiles[row][col] = tile
		}
	}

	for _, layer := range data.ObjectLayers {
		for _, r := range layer.Rects {
			g.Colliders = append(g.Colliders, Collider{
				Rect: geom.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H},
				Kind: r.Type,
			})
		}
		for _, p := range layer.Points {
			g.Markers[p.Name] = geom.Vec2{X: p.X, Y: p.Y}
		}
	}

	return g, nil
}

func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}
	if data.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", data.TileSize)
	}
	if len(data.Tilesets) == 0 {
		return fmt.Errorf("at least one tileset is required")
	}
	if len(data.TileLayers) == 0 {
		return fmt.Errorf("at least one tile layer is required")
	}
	if data.BaseLayer == "" {
		data.BaseLayer = data.TileLayers[0].Name
	}
	if findTileLayer(data, data.BaseLayer) == nil {
		return fmt.Errorf("base layer %q not found", data.BaseLayer)
	}

	for _, layer := range data.TileLayers {
		if len(layer.Grid) != data.Height {
			return fmt.Errorf("layer %s height mismatch: expected %d, got %d", layer.Name, data.Height, len(layer.Grid))
		}
		for row, cells := range layer.Grid {
			if len(cells) != data.Width {
				return fmt.Errorf("layer %s width mismatch at row %d: expected %d, got %d", layer.Name, row, data.Width, len(cells))
			}
		}
	}

	for _, ts := range data.Tilesets {
		sheet := ts.Image != ""
		perTile := len(ts.TileImages) > 0
		if sheet == perTile {
			return fmt.Errorf("tileset %s must be either a spritesheet or a per-tile lookup", ts.Name)
		}
		if sheet && (ts.CellSize <= 0 || ts.ImageWidth < ts.CellSize) {
			return fmt.Errorf("tileset %s has invalid sheet geometry: width %d, cell %d", ts.Name, ts.ImageWidth, ts.CellSize)
		}
	}

	return nil
}

func findTileLayer(data *MapData, name string) *TileLayerData {
	for i := range data.TileLayers {
		if data.TileLayers[i].Name == name {
			return &data.TileLayers[i]
		}
	}
	return nil
}

// resolveTile maps a global tile reference to a drawable, walkability-
// tagged Tile through the owning tileset. Reference 0 is an empty cell,
// rendered as nothing and treated as walkable.
func resolveTile(data *MapData, ref int) (Tile, error) {
	if ref == 0 {
		return Tile{Walkable: true}, nil
	}

	ts := tilesetFor(data, ref)
	if ts == nil {
		return Tile{}, fmt.Errorf("tile reference %d matches no tileset", ref)
	}
	local := ref - ts.FirstID

	walkable := true
	for _, blocked := range ts.Blocked {
		if blocked == local {
			walkable = false
			break
		}
	}

	if ts.Image != "" {
		cols := ts.Columns()
		if cols <= 0 {
			return Tile{}, fmt.Errorf("tileset %s has no columns", ts.Name)
		}
		return Tile{
			Sprite:   ts.Image,
			SrcX:     (local % cols) * ts.CellSize,
			SrcY:     (local / cols) * ts.CellSize,
			SrcW:     ts.CellSize,
			SrcH:     ts.CellSize,
			Walkable: walkable,
		}, nil
	}

	key, ok := ts.TileImages[fmt.Sprintf("%d", local)]
	if !ok {
		return Tile{}, fmt.Errorf("tileset %s has no image for local id %d", ts.Name, local)
	}
	return Tile{Sprite: key, Walkable: walkable}, nil
}

// tilesetFor picks the tileset owning a global reference: the one with
// the largest FirstID that is still <= ref.
func tilesetFor(data *MapData, ref int) *TilesetData {
	var best *TilesetData
	for i := range data.Tilesets {
		ts := &data.Tilesets[i]
		if ts.FirstID <= ref && (best == nil || ts.FirstID > best.FirstID) {
			best = ts
		}
	}
	return best
}
