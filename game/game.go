package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"chosenoffset.com/emberfall/camera"
	"chosenoffset.com/emberfall/entity"
	"chosenoffset.com/emberfall/hud"
	"chosenoffset.com/emberfall/input"
	"chosenoffset.com/emberfall/sprites"
)

// Game drives one level through the ebiten run loop: capture input,
// tick the scheduler, follow the camera, feed the HUD, draw.
type Game struct {
	level *Level
	cam   *camera.Camera
	store *sprites.Store
	hud   *hud.HUD

	screenWidth  int
	screenHeight int

	paused    bool
	prevPause bool

	// Previous-tick values for event messages.
	lastKeys      int
	lastScroll    bool
	lastObjective int
	announcedEnd  bool
}

// New wires a built level to the renderer and HUD.
func New(level *Level, store *sprites.Store, screenWidth, screenHeight int) *Game {
	g := &Game{
		level:        level,
		cam:          camera.New(screenWidth, screenHeight, level.Grid.PixelWidth(), level.Grid.PixelHeight()),
		store:        store,
		hud:          hud.New(nil, screenWidth, screenHeight),
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
	g.cam.Follow(level.Player.Pos.X, level.Player.Pos.Y)
	g.hud.ShowMessage(level.Tracker.Text())
	g.lastObjective = level.Tracker.Index()
	return g
}

// Update implements ebiten.Game with a fixed tick length.
func (g *Game) Update() error {
	g.step(input.Capture(), 1.0/float64(ebiten.TPS()))
	return nil
}

// step advances one tick. It is separated from Update so tests can feed
// fabricated input and delta time.
func (g *Game) step(in input.State, dt float64) {
	pauseHeld := in.IsHeld(input.KeyPause)
	if pauseHeld && !g.prevPause {
		g.paused = !g.paused
	}
	g.prevPause = pauseHeld

	g.hud.Update(dt)

	// Paused: gameplay freezes, the camera holds its last position.
	if g.paused {
		return
	}

	lvl := g.level
	ctx := &entity.Context{
		DT:      dt,
		Input:   in,
		Grid:    lvl.Grid,
		State:   lvl.State,
		Player:  lvl.Player,
		Enemies: lvl.LiveEnemies(),
	}
	lvl.Scheduler.Update(ctx)
	lvl.Tracker.Advance()

	g.announceEvents()

	g.cam.Follow(lvl.Player.Pos.X, lvl.Player.Pos.Y)
	g.hud.SetSnapshot(g.snapshot())
}

// announceEvents surfaces pickup and objective changes as HUD messages.
func (g *Game) announceEvents() {
	lvl := g.level

	keys := lvl.State.Counter(CounterKeys)
	if keys > g.lastKeys {
		if lvl.KeysPlaced > 0 && keys >= lvl.KeysPlaced {
			g.hud.ShowMessage("All keys collected")
		} else {
			g.hud.ShowMessage("Picked up a key")
		}
	}
	g.lastKeys = keys

	if lvl.State.Flag(FlagScroll) && !g.lastScroll {
		g.hud.ShowMessage("The scroll crumbles as you read it")
	}
	g.lastScroll = lvl.State.Flag(FlagScroll)

	if idx := lvl.Tracker.Index(); idx != g.lastObjective {
		g.hud.ShowMessage(lvl.Tracker.Text())
		g.lastObjective = idx
	}

	if !g.announcedEnd {
		switch {
		case lvl.Tracker.Complete():
			g.hud.ShowMessage("The emberfall is quiet. You have won.")
			g.announcedEnd = true
		case lvl.Player.Removed():
			g.hud.ShowMessage("You have fallen")
			g.announcedEnd = true
		}
	}
}

// snapshot polls the combat core's read-only fields for the HUD.
func (g *Game) snapshot() hud.Snapshot {
	lvl := g.level
	return hud.Snapshot{
		HP:                lvl.Player.HP,
		MaxHP:             lvl.Player.MaxHP(),
		CooldownRemaining: lvl.Player.CooldownRemaining(),
		CooldownTotal:     lvl.Player.CooldownTotal(),
		Counters: map[string]int{
			CounterKeys:  lvl.State.Counter(CounterKeys),
			CounterSlain: lvl.State.Counter(CounterSlain),
		},
		Objective: lvl.Tracker.Text(),
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 28, 24, 255})

	camX, camY := g.cam.RenderPosition()
	g.level.Grid.Draw(screen, camX, camY, g.store)
	g.level.Scheduler.Draw(screen, camX, camY, g.store)
	g.hud.Draw(screen)

	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", g.screenWidth/2-20, g.screenHeight/2)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}
