package placeholders

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/emberfall/entity"
)

func TestStripMatchesClipGeometry(t *testing.T) {
	clip := entity.DefaultPlayerConfig().Clips[entity.StateWalk]
	strip := CreateStrip(clip.Frames, clip.FrameWidth, clip.FrameHeight, ColorPalette.Player)

	b := strip.Bounds()
	if b.Dx() != clip.Frames*clip.FrameWidth {
		t.Errorf("Expected strip width %d, got %d", clip.Frames*clip.FrameWidth, b.Dx())
	}
	if b.Dy() != clip.FrameHeight {
		t.Errorf("Expected strip height %d, got %d", clip.FrameHeight, b.Dy())
	}
}

func TestGenerateAllCoversDefaultContent(t *testing.T) {
	images := GenerateAll()

	required := []string{"grass", "wall", "tree", "bush", "stone", "key", "potion", "scroll", "shade_bolt"}
	for _, clip := range entityClips() {
		required = append(required, clip.Sprite)
	}
	for _, name := range required {
		if _, ok := images[name]; !ok {
			t.Errorf("Expected a generated image for %q", name)
		}
	}
}

func TestGenerateAndSaveWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	if err := GenerateAndSave(dir); err != nil {
		t.Fatalf("GenerateAndSave failed: %v", err)
	}

	for _, name := range []string{"grass.png", "player_idle.png", "wolf_attack.png", "key.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to exist, got %v", name, err)
		}
	}
}

func TestDarken(t *testing.T) {
	c := color.RGBA{100, 200, 50, 255}
	d := Darken(c, 0.5)
	if d.R != 50 || d.G != 100 || d.B != 25 {
		t.Errorf("Expected (50, 100, 25), got (%d, %d, %d)", d.R, d.G, d.B)
	}
	if d.A != 255 {
		t.Errorf("Expected alpha preserved, got %d", d.A)
	}
}
