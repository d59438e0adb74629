// Package world provides the tile grid the game is played on and answers
// the single collision question the rest of the runtime depends on: is
// this world position blocked. Grids are built once at level load, either
// procedurally or from a map file, and are immutable during play.
package world

import (
	"chosenoffset.com/emberfall/geom"
	"chosenoffset.com/emberfall/sprites"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tile is one cell of the base layer. Sprite names the image used to draw
// the cell; for spritesheet tilesets SrcX/SrcY/SrcW/SrcH select the
// sub-rectangle, a SrcW of 0 means the whole image.
type Tile struct {
	Sprite     string
	SrcX, SrcY int
	SrcW, SrcH int
	Walkable   bool
}

// Collider is a static axis-aligned collision rectangle. Only colliders
// of kind "solid" block movement; other kinds are available to gameplay
// systems (triggers, markers) without affecting collision.
type Collider struct {
	Rect geom.Rect
	Kind string
}

// KindSolid marks a collider that blocks movement.
const KindSolid = "solid"

// Object is a placed decoration (tree, bush, stone). Blocking objects
// contribute their footprint to collision; the footprint is smaller than
// the drawn sprite.
type Object struct {
	Kind      string
	Pos       geom.Vec2 // Top-left of the drawn sprite in world pixels
	Blocking  bool
	Footprint geom.Rect // World-space collision rect, used when Blocking
}

// Grid is the tile world. It owns the base tile layer, the static
// collider list, placed objects, and named point markers (spawn, pickup
// positions) resolved at load time.
type Grid struct {
	Cols     int
	Rows     int
	TileSize int

	Tiles     [][]Tile // [row][col]
	Colliders []Collider
	Objects   []Object
	Markers   map[string]geom.Vec2
}

// PixelWidth returns the world width in pixels.
func (g *Grid) PixelWidth() int {
	return g.Cols * g.TileSize
}

// PixelHeight returns the world height in pixels.
func (g *Grid) PixelHeight() int {
	return g.Rows * g.TileSize
}

// TileAt returns the tile at grid coordinates (col, row).
func (g *Grid) TileAt(col, row int) (Tile, bool) {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return Tile{}, false
	}
	return g.Tiles[row][col], true
}

// Marker returns the named point marker in world pixels.
func (g *Grid) Marker(name string) (geom.Vec2, bool) {
	p, ok := g.Markers[name]
	return p, ok
}

// IsBlocked reports whether the world position (x, y) cannot be stood on.
// Anything outside the world bounds is always blocked; inside, a position
// is blocked by a non-walkable base tile, a blocking object's footprint,
// or a solid collider rectangle.
func (g *Grid) IsBlocked(x, y float64) bool {
	if x < 0 || y < 0 || x >= float64(g.PixelWidth()) || y >= float64(g.PixelHeight()) {
		return true
	}

	col := int(x) / g.TileSize
	row := int(y) / g.TileSize
	if !g.Tiles[row][col].Walkable {
		return true
	}

	for _, obj := range g.Objects {
		if obj.Blocking && obj.Footprint.Contains(x, y) {
			return true
		}
	}

	for _, c := range g.Colliders {
		if c.Kind == KindSolid && c.Rect.Contains(x, y) {
			return true
		}
	}

	return false
}

// Draw renders the visible tile span and all objects through the camera's
// render offset. Tiles or objects without a loaded sprite are skipped.
func (g *Grid) Draw(screen *ebiten.Image, camX, camY float64, store *sprites.Store) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	firstCol := int(camX) / g.TileSize
	firstRow := int(camY) / g.TileSize
	lastCol := (int(camX)+w)/g.TileSize + 1
	lastRow := (int(camY)+h)/g.TileSize + 1
	if firstCol < 0 {
		firstCol = 0
	}
	if firstRow < 0 {
		firstRow = 0
	}
	if lastCol > g.Cols {
		lastCol = g.Cols
	}
	if lastRow > g.Rows {
		lastRow = g.Rows
	}

	for row := firstRow; row < lastRow; row++ {
		for col := firstCol; col < lastCol; col++ {
			tile := g.Tiles[row][col]
			x := float64(col*g.TileSize) - camX
			y := float64(row*g.TileSize) - camY
			if tile.SrcW > 0 {
				store.DrawSub(screen, tile.Sprite, tile.SrcX, tile.SrcY, tile.SrcW, tile.SrcH, x, y)
			} else {
				store.Draw(screen, tile.Sprite, x, y)
			}
		}
	}

	for _, obj := range g.Objects {
		store.Draw(screen, obj.Kind, obj.Pos.X-camX, obj.Pos.Y-camY)
	}
}
