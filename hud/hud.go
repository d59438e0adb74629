// Package hud provides the in-game heads-up display: player health,
// attack cooldown, collected counters, the current objective, and
// fading on-screen messages. It only reads snapshot data handed to it
// once per tick; gameplay code never depends on the HUD's existence.
package hud

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// messageDuration is how long an on-screen message stays up.
const messageDuration = 3.0

// CounterLine names a run counter shown on the HUD panel.
type CounterLine struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Config defines what the HUD panel displays.
type Config struct {
	ShowHP        bool          `json:"show_hp"`
	ShowCooldown  bool          `json:"show_cooldown"`
	ShowObjective bool          `json:"show_objective"`
	Counters      []CounterLine `json:"counters"`
	Position      string        `json:"position"` // "top-left", "top-right"
	Opacity       float64       `json:"opacity"`  // Background opacity (0-1)
}

// DefaultConfig returns the standard HUD layout.
func DefaultConfig() *Config {
	return &Config{
		ShowHP:        true,
		ShowCooldown:  true,
		ShowObjective: true,
		Counters: []CounterLine{
			{Key: "keys", Label: "Keys"},
			{Key: "slain", Label: "Slain"},
		},
		Position: "top-left",
		Opacity:  0.7,
	}
}

// Snapshot is the read-only gameplay data the HUD renders each frame.
// The game layer polls it from the combat core once per tick.
type Snapshot struct {
	HP    int
	MaxHP int

	CooldownRemaining float64
	CooldownTotal     float64

	Counters map[string]int

	Objective string
}

// Message is an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64
	MaxTime  float64
}

// HUD manages the heads-up display.
type HUD struct {
	config       *Config
	screenWidth  int
	screenHeight int

	snapshot Snapshot
	messages []Message

	panelWidth int
}

// New creates a HUD with the given configuration.
func New(config *Config, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   170,
	}
}

// SetSnapshot stores this tick's gameplay snapshot.
func (h *HUD) SetSnapshot(s Snapshot) {
	h.snapshot = s
}

// SetScreenSize updates the screen dimensions.
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// ShowMessage queues an on-screen message.
func (h *HUD) ShowMessage(text string) {
	h.messages = append(h.messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})
}

// Messages returns the currently active messages.
func (h *HUD) Messages() []Message {
	return h.messages
}

// Update advances message timers and drops expired messages.
func (h *HUD) Update(dt float64) {
	var active []Message
	for _, msg := range h.messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	h.messages = active
}

// Draw renders the HUD panel and messages to the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	x, y := h.panelPosition()
	h.drawPanel(screen, x, y)

	currentY := y + 8

	if h.config.ShowHP {
		currentY = h.drawBar(screen, x+8, currentY,
			float64(h.snapshot.HP), float64(h.snapshot.MaxHP), hpFillColor(h.snapshot),
			fmt.Sprintf("%d/%d", h.snapshot.HP, h.snapshot.MaxHP))
		currentY += 6
	}

	if h.config.ShowCooldown {
		ready := h.snapshot.CooldownTotal - h.snapshot.CooldownRemaining
		currentY = h.drawBar(screen, x+8, currentY,
			ready, h.snapshot.CooldownTotal, color.RGBA{80, 120, 200, 255}, "")
		currentY += 6
	}

	for _, line := range h.config.Counters {
		text := fmt.Sprintf("%s: %d", line.Label, h.snapshot.Counters[line.Key])
		h.drawText(screen, text, x+8, currentY)
		currentY += 16
	}

	if h.config.ShowObjective && h.snapshot.Objective != "" {
		h.drawText(screen, h.snapshot.Objective, x+8, currentY)
	}

	h.drawMessages(screen)
}

// panelPosition returns the top-left corner of the HUD panel.
func (h *HUD) panelPosition() (int, int) {
	padding := 10
	if h.config.Position == "top-right" {
		return h.screenWidth - h.panelWidth - padding, padding
	}
	return padding, padding
}

// panelHeight calculates the height needed for all HUD elements.
func (h *HUD) panelHeight() int {
	height := 16
	if h.config.ShowHP {
		height += 18
	}
	if h.config.ShowCooldown {
		height += 18
	}
	height += len(h.config.Counters) * 16
	if h.config.ShowObjective && h.snapshot.Objective != "" {
		height += 16
	}
	return height
}

// drawPanel draws the semi-transparent background panel.
func (h *HUD) drawPanel(screen *ebiten.Image, x, y int) {
	height := h.panelHeight()
	alpha := uint8(h.config.Opacity * 255)

	panel := ebiten.NewImage(h.panelWidth, height)
	panel.Fill(color.RGBA{20, 20, 30, alpha})

	borderColor := color.RGBA{60, 60, 80, alpha}
	for i := 0; i < h.panelWidth; i++ {
		panel.Set(i, 0, borderColor)
		panel.Set(i, height-1, borderColor)
	}
	for i := 0; i < height; i++ {
		panel.Set(0, i, borderColor)
		panel.Set(h.panelWidth-1, i, borderColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(panel, op)
}

// drawBar draws a filled progress bar with optional centered text.
func (h *HUD) drawBar(screen *ebiten.Image, x, y int, value, max float64, fillColor color.RGBA, text string) int {
	barWidth := h.panelWidth - 24
	barHeight := 12

	bg := ebiten.NewImage(barWidth, barHeight)
	bg.Fill(color.RGBA{40, 40, 50, 255})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(bg, op)

	if max > 0 && value > 0 {
		pct := value / max
		if pct > 1 {
			pct = 1
		}
		fillWidth := int(float64(barWidth) * pct)
		if fillWidth < 1 {
			fillWidth = 1
		}
		fill := ebiten.NewImage(fillWidth, barHeight-2)
		fill.Fill(fillColor)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x+1), float64(y+1))
		screen.DrawImage(fill, op)
	}

	if text != "" {
		h.drawText(screen, text, x+barWidth/2-len(text)*3, y-1)
	}

	return y + barHeight + 4
}

// drawMessages draws active messages below the panel, oldest first. The
// debug font cannot fade per glyph, so expiring messages blink out in
// their final half second instead.
func (h *HUD) drawMessages(screen *ebiten.Image) {
	_, panelY := h.panelPosition()
	y := float64(panelY + h.panelHeight() + 16)
	for _, msg := range h.messages {
		if msg.TimeLeft < 0.5 && int(msg.TimeLeft/0.1)%2 == 0 {
			y += 18
			continue
		}
		h.drawText(screen, msg.Text, 20, int(y))
		y += 18
	}
}

// drawText draws text with a one-pixel shadow for readability.
func (h *HUD) drawText(screen *ebiten.Image, text string, x, y int) {
	ebitenutil.DebugPrintAt(screen, text, x+1, y+1)
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

// hpFillColor picks the HP bar color from the health percentage.
func hpFillColor(s Snapshot) color.RGBA {
	if s.MaxHP <= 0 {
		return color.RGBA{200, 50, 50, 255}
	}
	pct := float64(s.HP) / float64(s.MaxHP)
	switch {
	case pct > 0.6:
		return color.RGBA{50, 180, 50, 255}
	case pct > 0.3:
		return color.RGBA{200, 180, 50, 255}
	default:
		return color.RGBA{200, 50, 50, 255}
	}
}
