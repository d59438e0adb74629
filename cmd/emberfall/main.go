package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/emberfall/game"
	"chosenoffset.com/emberfall/sprites"
)

func main() {
	mapPath := flag.String("map", "", "map file to load; empty generates a world")
	kindsPath := flag.String("kinds", "", "optional enemy kind library (JSON)")
	assetsDir := flag.String("assets", "assets", "directory of sprite PNGs")
	seed := flag.Int64("seed", 0, "world seed; 0 uses the current time")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg := game.DefaultLevelConfig()
	cfg.MapPath = *mapPath
	cfg.KindLibraryPath = *kindsPath
	cfg.Seed = *seed

	level, err := game.BuildLevel(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to build level")
	}

	store := sprites.NewStore()
	if err := loadAssets(store, *assetsDir); err != nil {
		logrus.WithError(err).Warn("asset loading incomplete, missing sprites are skipped")
	}

	screenWidth, screenHeight := 960, 540
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Emberfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logrus.Info("starting game")
	if err := ebiten.RunGame(game.New(level, store, screenWidth, screenHeight)); err != nil {
		logrus.WithError(err).Fatal("game loop failed")
	}
}

// loadAssets registers every PNG in dir under its base name. A missing
// directory is not fatal: draws of missing sprites are skipped, so the
// game still runs, just invisibly. Run cmd/genplaceholders to fill the
// directory with stand-in art.
func loadAssets(store *sprites.Store, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	loaded := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".png") {
			continue
		}
		key := strings.TrimSuffix(e.Name(), ".png")
		if err := store.LoadFile(key, filepath.Join(dir, e.Name())); err != nil {
			return err
		}
		loaded++
	}

	logrus.WithFields(logrus.Fields{"dir": dir, "sprites": loaded}).Info("assets loaded")
	return nil
}
