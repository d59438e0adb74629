// Package camera tracks the viewport position for scrolling large levels.
package camera

import "math"

// Camera holds the viewport's top-left corner in world coordinates. The
// position snaps to the followed target every tick; there is no smoothing
// by design, the hard snap keeps the player pixel-stable at the center.
type Camera struct {
	X, Y float64

	ViewportWidth  int
	ViewportHeight int
	WorldWidth     int
	WorldHeight    int
}

// New creates a camera for the given viewport and world dimensions.
func New(viewportWidth, viewportHeight, worldWidth, worldHeight int) *Camera {
	return &Camera{
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		WorldWidth:     worldWidth,
		WorldHeight:    worldHeight,
	}
}

// Follow centers the viewport on the target, clamping each axis to the
// world bounds independently. When the world is smaller than the viewport
// the clamp collapses to 0.
func (c *Camera) Follow(targetX, targetY float64) {
	c.X = targetX - float64(c.ViewportWidth)/2
	c.Y = targetY - float64(c.ViewportHeight)/2

	maxX := float64(c.WorldWidth - c.ViewportWidth)
	maxY := float64(c.WorldHeight - c.ViewportHeight)
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}

	if c.X < 0 {
		c.X = 0
	}
	if c.X > maxX {
		c.X = maxX
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.Y > maxY {
		c.Y = maxY
	}
}

// RenderPosition returns the floored camera position. All draw-phase
// world-to-screen conversions go through this to avoid sub-pixel seams
// between tiles.
func (c *Camera) RenderPosition() (x, y float64) {
	return math.Floor(c.X), math.Floor(c.Y)
}
