// Package anim drives timer-based sprite animation. Each behavioral state
// of an entity maps to a Clip describing a strip of frames; a Track
// accumulates elapsed time and converts it into a frame index.
package anim

// Clip describes one animation strip within a sprite sheet.
type Clip struct {
	Sprite      string  // Image key in the sprite store
	Frames      int     // Number of frames in the strip
	FrameWidth  int     // Frame width in pixels
	FrameHeight int     // Frame height in pixels
	FrameTime   float64 // Seconds per frame
	Loop        bool    // Looping (idle/walk) vs one-shot (attack/hurt/die)
}

// Duration returns the total length of the clip in seconds.
func (c Clip) Duration() float64 {
	return float64(c.Frames) * c.FrameTime
}

// Valid reports whether the clip can be played at all.
func (c Clip) Valid() bool {
	return c.Frames > 0 && c.FrameTime > 0
}

// Track plays a single Clip. Switching clips resets the elapsed timer.
type Track struct {
	clip    Clip
	elapsed float64
}

// Set switches the track to a new clip and restarts it from frame zero.
func (t *Track) Set(clip Clip) {
	t.clip = clip
	t.elapsed = 0
}

// Clip returns the clip currently playing.
func (t *Track) Clip() Clip {
	return t.clip
}

// Advance moves the track forward by dt seconds.
func (t *Track) Advance(dt float64) {
	t.elapsed += dt
}

// Elapsed returns the time played into the current clip.
func (t *Track) Elapsed() float64 {
	return t.elapsed
}

// Frame returns the current frame index. Looping clips wrap modulo the
// frame count; one-shot clips clamp to the last frame once finished.
func (t *Track) Frame() int {
	if !t.clip.Valid() {
		return 0
	}
	idx := int(t.elapsed / t.clip.FrameTime)
	if t.clip.Loop {
		return idx % t.clip.Frames
	}
	if idx >= t.clip.Frames {
		return t.clip.Frames - 1
	}
	return idx
}

// Done reports whether a one-shot clip has played through. Looping clips
// never finish.
func (t *Track) Done() bool {
	if t.clip.Loop || !t.clip.Valid() {
		return false
	}
	return t.elapsed >= t.clip.Duration()
}
