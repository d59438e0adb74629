// Package sprites holds decoded images keyed by name and draws tiles and
// animation frames out of them. Asset decoding happens at load time; during
// play a draw call that references a missing image is skipped for that
// frame rather than treated as fatal, so the game tolerates partially
// loaded content.
package sprites

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Store is a string-keyed collection of decoded images.
type Store struct {
	images map[string]*ebiten.Image
}

// NewStore creates an empty sprite store.
func NewStore() *Store {
	return &Store{images: make(map[string]*ebiten.Image)}
}

// Add registers an already-decoded image under a key.
func (s *Store) Add(key string, img *ebiten.Image) {
	s.images[key] = img
}

// LoadFile decodes an image file and registers it under a key.
func (s *Store) LoadFile(key, path string) error {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to load sprite %s from %s: %w", key, path, err)
	}
	s.images[key] = img
	return nil
}

// Get returns the image registered under key.
func (s *Store) Get(key string) (*ebiten.Image, bool) {
	img, ok := s.images[key]
	return img, ok
}

// Draw draws the whole image at the given screen coordinates. Missing
// images are skipped.
func (s *Store) Draw(dst *ebiten.Image, key string, x, y float64) {
	img, ok := s.images[key]
	if !ok {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x, y)
	dst.DrawImage(img, opts)
}

// DrawSub draws the sub-rectangle (sx, sy, w, h) of the keyed image at the
// given screen coordinates. Missing images and out-of-bounds rectangles
// are skipped.
func (s *Store) DrawSub(dst *ebiten.Image, key string, sx, sy, w, h int, x, y float64) {
	img, ok := s.images[key]
	if !ok {
		return
	}
	rect := image.Rect(sx, sy, sx+w, sy+h)
	if !rect.In(img.Bounds()) {
		return
	}
	sub := img.SubImage(rect).(*ebiten.Image)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x, y)
	dst.DrawImage(sub, opts)
}

// DrawFrame draws frame index n out of a horizontal animation strip. The
// strip is assumed to run left to right at a fixed frame size. When
// mirrored is true the frame is flipped horizontally around its own
// center, which is how left-facing entities are drawn.
func (s *Store) DrawFrame(dst *ebiten.Image, key string, frame, frameW, frameH int, x, y float64, mirrored bool) {
	img, ok := s.images[key]
	if !ok {
		return
	}
	rect := image.Rect(frame*frameW, 0, (frame+1)*frameW, frameH)
	if !rect.In(img.Bounds()) {
		return
	}
	sub := img.SubImage(rect).(*ebiten.Image)
	opts := &ebiten.DrawImageOptions{}
	if mirrored {
		opts.GeoM.Scale(-1, 1)
		opts.GeoM.Translate(float64(frameW), 0)
	}
	opts.GeoM.Translate(x, y)
	dst.DrawImage(sub, opts)
}
