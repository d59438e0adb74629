// Package placeholders generates flat-color stand-in art so the game is
// playable without real assets: ground and wall tiles, scatter objects,
// pickups, and one horizontal animation strip per entity clip. Frame
// brightness ramps across each strip so animation state is visible.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/emberfall/anim"
	"chosenoffset.com/emberfall/entity"
)

// TileSize is the standard size for placeholder tiles.
const TileSize = 32

// ColorPalette defines colors per sprite family.
var ColorPalette = struct {
	Grass color.RGBA
	Wall  color.RGBA

	Tree  color.RGBA
	Bush  color.RGBA
	Stone color.RGBA

	Player color.RGBA
	Wolf   color.RGBA
	Brute  color.RGBA
	Shade  color.RGBA
	Bolt   color.RGBA

	Key    color.RGBA
	Potion color.RGBA
	Scroll color.RGBA
}{
	Grass: color.RGBA{58, 92, 48, 255},
	Wall:  color.RGBA{90, 84, 72, 255},

	Tree:  color.RGBA{36, 70, 34, 255},
	Bush:  color.RGBA{70, 110, 52, 255},
	Stone: color.RGBA{120, 118, 110, 255},

	Player: color.RGBA{70, 180, 110, 255},
	Wolf:   color.RGBA{150, 150, 160, 255},
	Brute:  color.RGBA{190, 70, 50, 255},
	Shade:  color.RGBA{120, 70, 180, 255},
	Bolt:   color.RGBA{200, 120, 255, 255},

	Key:    color.RGBA{255, 215, 0, 255},
	Potion: color.RGBA{220, 60, 90, 255},
	Scroll: color.RGBA{230, 220, 180, 255},
}

// CreateSolidTile creates a solid-colored tile.
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a one-pixel border.
func CreateBorderedTile(fillColor, borderColor color.RGBA) *image.RGBA {
	img := CreateSolidTile(fillColor)
	for x := 0; x < TileSize; x++ {
		img.Set(x, 0, borderColor)
		img.Set(x, TileSize-1, borderColor)
	}
	for y := 0; y < TileSize; y++ {
		img.Set(0, y, borderColor)
		img.Set(TileSize-1, y, borderColor)
	}
	return img
}

// CreateSprite creates a single rounded sprite of the given size: an
// ellipse filling the bounds, outlined one shade darker.
func CreateSprite(w, h int, fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	outline := Darken(fill, 0.6)

	cx := float64(w) / 2
	cy := float64(h) / 2
	rx := cx - 1
	ry := cy - 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			d := dx*dx + dy*dy
			switch {
			case d <= 0.8:
				img.Set(x, y, fill)
			case d <= 1.0:
				img.Set(x, y, outline)
			}
		}
	}
	return img
}

// CreateStrip lays frame variants of a sprite out in a horizontal strip.
// Each frame is brightened progressively so playback reads on screen.
func CreateStrip(frames, frameW, frameH int, fill color.RGBA) *image.RGBA {
	strip := image.NewRGBA(image.Rect(0, 0, frames*frameW, frameH))
	for i := 0; i < frames; i++ {
		factor := 0.7 + 0.3*float64(i)/float64(max(frames-1, 1))
		frame := CreateSprite(frameW, frameH, Darken(fill, factor))
		dst := image.Rect(i*frameW, 0, (i+1)*frameW, frameH)
		draw.Draw(strip, dst, frame, image.Point{}, draw.Over)
	}
	return strip
}

// Darken scales a color's channels toward black. A factor of 1 keeps the
// color, 0 is black.
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// stateTint adjusts an entity's base color per animation state so the
// states are tellable apart.
func stateTint(base color.RGBA, state entity.State) color.RGBA {
	switch state {
	case entity.StateAttack:
		return color.RGBA{255, 200, 80, base.A}
	case entity.StateHurt:
		return color.RGBA{240, 240, 240, base.A}
	case entity.StateDie:
		return Darken(base, 0.4)
	default:
		return base
	}
}

// entityClips collects every clip the default content references, keyed
// by sprite name, so the generated strips always match the tuning.
func entityClips() map[string]anim.Clip {
	clips := make(map[string]anim.Clip)

	collect := func(m map[entity.State]anim.Clip) {
		for _, clip := range m {
			clips[clip.Sprite] = clip
		}
	}
	collect(entity.DefaultPlayerConfig().Clips)

	registry := entity.DefaultRegistry()
	for _, id := range []entity.KindID{entity.KindWolf, entity.KindBrute, entity.KindShade} {
		if def, ok := registry.Kind(id); ok {
			collect(def.Config.Clips)
		}
	}
	return clips
}

// baseColorFor picks the entity family color from a sprite name prefix.
func baseColorFor(sprite string) color.RGBA {
	switch {
	case strings.HasPrefix(sprite, "player"):
		return ColorPalette.Player
	case strings.HasPrefix(sprite, "wolf"):
		return ColorPalette.Wolf
	case strings.HasPrefix(sprite, "brute"):
		return ColorPalette.Brute
	case strings.HasPrefix(sprite, "shade"):
		return ColorPalette.Shade
	default:
		return ColorPalette.Wolf
	}
}

// stateFor recovers the state suffix of a clip sprite name for tinting.
func stateFor(sprite string) entity.State {
	for _, s := range []entity.State{
		entity.StateSpawn, entity.StateIdle, entity.StateWalk,
		entity.StateAttack, entity.StateHurt, entity.StateDie,
	} {
		if strings.HasSuffix(sprite, "_"+s.String()) {
			return s
		}
	}
	return entity.StateIdle
}

// GenerateAll builds every placeholder image keyed by sprite name.
func GenerateAll() map[string]image.Image {
	out := map[string]image.Image{
		"grass": CreateSolidTile(ColorPalette.Grass),
		"wall":  CreateBorderedTile(ColorPalette.Wall, Darken(ColorPalette.Wall, 0.6)),

		"tree":  CreateSprite(48, 48, ColorPalette.Tree),
		"bush":  CreateSprite(32, 32, ColorPalette.Bush),
		"stone": CreateSprite(32, 32, ColorPalette.Stone),

		"key":    CreateSprite(16, 16, ColorPalette.Key),
		"potion": CreateSprite(16, 16, ColorPalette.Potion),
		"scroll": CreateSprite(16, 16, ColorPalette.Scroll),

		"shade_bolt": CreateSprite(12, 12, ColorPalette.Bolt),
	}

	for sprite, clip := range entityClips() {
		fill := stateTint(baseColorFor(sprite), stateFor(sprite))
		out[sprite] = CreateStrip(clip.Frames, clip.FrameWidth, clip.FrameHeight, fill)
	}
	return out
}

// GenerateAndSave writes every placeholder as a PNG under dir, one file
// per sprite key.
func GenerateAndSave(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create asset directory: %w", err)
	}
	for name, img := range GenerateAll() {
		path := filepath.Join(dir, name+".png")
		if err := savePNG(path, img); err != nil {
			return err
		}
	}
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
