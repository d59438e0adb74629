package world

import "testing"

func TestGenerateBorderIsBlocked(t *testing.T) {
	cfg := DefaultGenerateConfig()
	cfg.Seed = 42
	g, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Every tile within the border thickness must be blocked.
	for col := 0; col < g.Cols; col++ {
		if g.Tiles[0][col].Walkable {
			t.Fatalf("Expected top border tile (%d, 0) to be blocked", col)
		}
		if g.Tiles[g.Rows-1][col].Walkable {
			t.Fatalf("Expected bottom border tile (%d, %d) to be blocked", col, g.Rows-1)
		}
	}
	for row := 0; row < g.Rows; row++ {
		if g.Tiles[row][0].Walkable || g.Tiles[row][g.Cols-1].Walkable {
			t.Fatalf("Expected side border tiles at row %d to be blocked", row)
		}
	}
}

func TestGenerateSpawnIsUsable(t *testing.T) {
	cfg := DefaultGenerateConfig()
	cfg.Seed = 7
	g, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	spawn, ok := g.Marker("spawn")
	if !ok {
		t.Fatal("Expected a spawn marker")
	}
	if g.IsBlocked(spawn.X, spawn.Y) {
		t.Errorf("Expected spawn (%v, %v) to be unblocked", spawn.X, spawn.Y)
	}
}

func TestGenerateObjectsLandOnWalkableTiles(t *testing.T) {
	cfg := DefaultGenerateConfig()
	cfg.Seed = 99
	g, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var total int
	for _, spec := range cfg.Objects {
		total += spec.Count
	}
	if len(g.Objects) == 0 {
		t.Fatal("Expected at least some objects to be placed")
	}
	if len(g.Objects) > total {
		t.Fatalf("Placed %d objects, more than the configured %d", len(g.Objects), total)
	}

	for _, obj := range g.Objects {
		if obj.Blocking && (obj.Footprint.W <= 0 || obj.Footprint.H <= 0) {
			t.Errorf("Blocking object %s has empty footprint", obj.Kind)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	cfg := DefaultGenerateConfig()
	cfg.Seed = 1234

	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(a.Objects) != len(b.Objects) {
		t.Fatalf("Expected identical object counts, got %d and %d", len(a.Objects), len(b.Objects))
	}
	for row := 0; row < a.Rows; row++ {
		for col := 0; col < a.Cols; col++ {
			if a.Tiles[row][col].Walkable != b.Tiles[row][col].Walkable {
				t.Fatalf("Tile (%d, %d) differs between identical seeds", col, row)
			}
		}
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultGenerateConfig()
	cfg.Cols = 0
	if _, err := Generate(cfg); err == nil {
		t.Error("Expected error for zero columns")
	}

	cfg = DefaultGenerateConfig()
	cfg.TileSize = -4
	if _, err := Generate(cfg); err == nil {
		t.Error("Expected error for negative tile size")
	}
}
